package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, ok := parseOver(defaultYAML)
	if !ok {
		t.Fatal("embedded defaults do not parse")
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, Default())
	}
}

func TestLoadCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("tick_rate: 30\npalette:\n  player_one: [255, 0, 0]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Palette.PlayerOne != (Color{255, 0, 0}) {
		t.Errorf("PlayerOne = %v, expected [255 0 0]", cfg.Palette.PlayerOne)
	}
	if cfg.Palette.PlayerTwo != Default().Palette.PlayerTwo {
		t.Errorf("PlayerTwo = %v, expected the default", cfg.Palette.PlayerTwo)
	}
	if cfg.TickInterval() != time.Second/30 {
		t.Errorf("TickInterval() = %v", cfg.TickInterval())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad color length", "palette:\n  player_one: [1, 2]\n", false},
		{"color out of range", "palette:\n  error_glow: [300, 0, 0]\n", false},
		{"not yaml", "tick_rate: [\n", false},
		{"zero tick rate", "tick_rate: 0\n", true},
		{"unknown driver", "display:\n  driver: hdmi\n", true},
		{"stream without device", "display:\n  driver: stream\n", true},
		{"bad log level", "log_level: loud\n", true},
		{"brightness above one", "display:\n  brightness: 1.5\n", true},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() succeeded, expected an error")
			}
			if got := errors.Is(err, ErrInvalid); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestLoadFallsBackToLocalThenEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() without files = %+v, expected defaults", cfg)
	}

	// Local file wins over embedded
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "ledarcade.yaml"), []byte("variant: simple\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Variant != "simple" {
		t.Errorf("Variant = %q, expected simple from ./configs", cfg.Variant)
	}

	// User file wins over local
	home, _ := os.UserHomeDir()
	if err := os.MkdirAll(filepath.Join(home, ".ledarcade"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".ledarcade", "config.yaml"), []byte("tick_rate: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 24 || cfg.Variant != "ultimate" {
		t.Errorf("user config not preferred: tick_rate=%d variant=%q", cfg.TickRate, cfg.Variant)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("variant: simple\ntick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LEDARCADE_TICK_RATE", "120")
	t.Setenv("LEDARCADE_DISPLAY_DRIVER", "none")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 120 {
		t.Errorf("TickRate = %d, expected 120 from the environment", cfg.TickRate)
	}
	if cfg.Display.Driver != "none" {
		t.Errorf("Display.Driver = %q, expected none from the environment", cfg.Display.Driver)
	}
	if cfg.Variant != "simple" {
		t.Errorf("Variant = %q, expected simple from the file", cfg.Variant)
	}
	if cfg.Palette != Default().Palette {
		t.Error("palette changed without an override")
	}
}

func TestLoadEnvironmentErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("variant: simple\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LEDARCADE_TICK_RATE", "fast")
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a non-numeric tick rate")
	}

	t.Setenv("LEDARCADE_TICK_RATE", "0")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, expected ErrInvalid for tick rate 0", err)
	}
}
