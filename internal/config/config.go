// Package config provides YAML-based configuration loading for the console.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete console configuration.
// Fields with an env tag can be overridden from the environment.
type Config struct {
	TickRate  int             `yaml:"tick_rate" env:"LEDARCADE_TICK_RATE"` // Render ticks per second
	Variant   string          `yaml:"variant" env:"LEDARCADE_VARIANT"`     // Default game variant for play
	LogLevel  string          `yaml:"log_level" env:"LEDARCADE_LOG_LEVEL"` // debug, info, warn, error
	Display   DisplayConfig   `yaml:"display"`
	Palette   PaletteConfig   `yaml:"palette"`
	Animation AnimationConfig `yaml:"animation"`
}

// DisplayConfig selects the output driver.
type DisplayConfig struct {
	Driver     string  `yaml:"driver" env:"LEDARCADE_DISPLAY_DRIVER"`         // terminal, stream or none
	Device     string  `yaml:"device" env:"LEDARCADE_DISPLAY_DEVICE"`         // Path written by the stream driver
	Brightness float64 `yaml:"brightness" env:"LEDARCADE_DISPLAY_BRIGHTNESS"` // 0.0 - 1.0, applied by the stream driver
}

// PaletteConfig defines the LED colors.
type PaletteConfig struct {
	PlayerOne     Color `yaml:"player_one"`
	PlayerTwo     Color `yaml:"player_two"`
	DrawGlow      Color `yaml:"draw_glow"`
	DrawBorder    Color `yaml:"draw_border"`
	SelectionGlow Color `yaml:"selection_glow"`
	ErrorGlow     Color `yaml:"error_glow"`
}

// AnimationConfig defines pulse timing.
type AnimationConfig struct {
	SelectionPulseHz float64 `yaml:"selection_pulse_hz"`
	IllegalPulseHz   float64 `yaml:"illegal_pulse_hz"`
	FinishedGlow     uint8   `yaml:"finished_glow"` // Out of 255
}

// Color is an RGB triple written as [r, g, b] in YAML.
type Color [3]uint8

// UnmarshalYAML decodes a three-element sequence of 0-255 integers.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var vals []int
	if err := value.Decode(&vals); err != nil {
		return fmt.Errorf("line %d: color must be [r, g, b]: %w", value.Line, err)
	}
	if len(vals) != 3 {
		return fmt.Errorf("line %d: color must have 3 components, got %d", value.Line, len(vals))
	}
	for i, v := range vals {
		if v < 0 || v > 255 {
			return fmt.Errorf("line %d: color component %d out of range", value.Line, v)
		}
		c[i] = uint8(v)
	}
	return nil
}

// MarshalYAML encodes the color as a flow sequence.
func (c Color) MarshalYAML() (interface{}, error) {
	return []int{int(c[0]), int(c[1]), int(c[2])}, nil
}

// Drivers accepted in display.driver.
var Drivers = []string{"terminal", "stream", "none"}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 1000 {
		return fmt.Errorf("%w: tick_rate %d must be between 1 and 1000", ErrInvalid, c.TickRate)
	}
	if !contains(Drivers, c.Display.Driver) {
		return fmt.Errorf("%w: display.driver %q must be one of %v", ErrInvalid, c.Display.Driver, Drivers)
	}
	if c.Display.Driver == "stream" && c.Display.Device == "" {
		return fmt.Errorf("%w: display.device is required for the stream driver", ErrInvalid)
	}
	if c.Display.Brightness < 0 || c.Display.Brightness > 1 {
		return fmt.Errorf("%w: display.brightness %.2f must be between 0 and 1", ErrInvalid, c.Display.Brightness)
	}
	if c.Animation.SelectionPulseHz <= 0 || c.Animation.IllegalPulseHz <= 0 {
		return fmt.Errorf("%w: pulse frequencies must be positive", ErrInvalid)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q must be debug, info, warn or error", ErrInvalid, c.LogLevel)
	}
	return nil
}

// TickInterval returns the render period.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
