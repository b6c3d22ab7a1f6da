package config

import (
	_ "embed"
)

//go:embed defaults/ledarcade.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Variant:  "ultimate",
		LogLevel: "info",
		Display: DisplayConfig{
			Driver:     "terminal",
			Brightness: 1.0,
		},
		Palette: PaletteConfig{
			PlayerOne:     Color{0, 100, 0},
			PlayerTwo:     Color{0, 0, 100},
			DrawGlow:      Color{255, 255, 255},
			DrawBorder:    Color{50, 50, 50},
			SelectionGlow: Color{5, 0, 5},
			ErrorGlow:     Color{10, 0, 0},
		},
		Animation: AnimationConfig{
			SelectionPulseHz: 1.0,
			IllegalPulseHz:   2.0,
			FinishedGlow:     10,
		},
	}
}
