package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Load loads the console configuration, applies environment overrides and
// validates the result.
// Search order: customPath -> ~/.ledarcade/config.yaml -> ./configs/ledarcade.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// loadFile returns the first configuration found in the search order.
func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := Default()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, ok := parseOver(data); ok {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "ledarcade.yaml")); err == nil {
		if loaded, ok := parseOver(data); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if loaded, ok := parseOver(defaultYAML); ok {
		return loaded, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// parseOver decodes data on top of the defaults.
func parseOver(data []byte) (Config, bool) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// UserPath returns a path inside ~/.ledarcade, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ledarcade", filename)
}
