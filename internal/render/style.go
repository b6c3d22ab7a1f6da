// Package render turns game snapshots and wall-clock time into LED frames.
//
// Compose is a pure function of (stage, elapsed, style). Renderer drives it
// on a fixed tick and shows an idle animation until the first snapshot.
package render

import (
	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
)

// Style holds the palette and animation parameters used by Compose.
type Style struct {
	PlayerOne     core.RGB
	PlayerTwo     core.RGB
	DrawGlow      core.RGB // Finished-subgrid tint for a drawn subgrid, before dimming
	DrawBorder    core.RGB
	SelectionGlow core.RGB
	ErrorGlow     core.RGB

	SelectionPulseHz float64
	IllegalPulseHz   float64
	FinishedGlow     uint8 // Brightness of finished-subgrid tint, out of 255
}

// DefaultStyle returns the console's stock look.
func DefaultStyle() Style {
	return Style{
		PlayerOne:     core.P(0, 100, 0),
		PlayerTwo:     core.P(0, 0, 100),
		DrawGlow:      core.White,
		DrawBorder:    core.P(50, 50, 50),
		SelectionGlow: core.P(5, 0, 5),
		ErrorGlow:     core.P(10, 0, 0),

		SelectionPulseHz: 1,
		IllegalPulseHz:   2,
		FinishedGlow:     10,
	}
}

// StyleFromConfig builds a Style from the loaded configuration.
func StyleFromConfig(cfg config.Config) Style {
	return Style{
		PlayerOne:     toRGB(cfg.Palette.PlayerOne),
		PlayerTwo:     toRGB(cfg.Palette.PlayerTwo),
		DrawGlow:      toRGB(cfg.Palette.DrawGlow),
		DrawBorder:    toRGB(cfg.Palette.DrawBorder),
		SelectionGlow: toRGB(cfg.Palette.SelectionGlow),
		ErrorGlow:     toRGB(cfg.Palette.ErrorGlow),

		SelectionPulseHz: cfg.Animation.SelectionPulseHz,
		IllegalPulseHz:   cfg.Animation.IllegalPulseHz,
		FinishedGlow:     cfg.Animation.FinishedGlow,
	}
}

func toRGB(c config.Color) core.RGB {
	return core.P(c[0], c[1], c[2])
}

// PlayerColor returns the mark color of p.
func (s Style) PlayerColor(p game.Player) core.RGB {
	if p == game.PlayerTwo {
		return s.PlayerTwo
	}
	return s.PlayerOne
}

// OutcomeColor returns the undimmed tint of a finished subgrid.
func (s Style) OutcomeColor(o game.Outcome) core.RGB {
	if p, ok := o.Player(); ok {
		return s.PlayerColor(p)
	}
	return s.DrawGlow
}
