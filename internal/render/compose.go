package render

import (
	"time"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
)

// Compose renders one frame of st. elapsed is the time since st was first
// observed and drives the pulse animations.
//
// Layers, each drawn over the previous ones:
//  1. marks of both players
//  2. tint and ring of finished subgrids
//  3. selection pulse on empty cells that accept the next input
//  4. error pulse on the attempted cell of an illegal move
//  5. status border
func Compose(st game.Stage, elapsed time.Duration, s Style) *core.Frame {
	f := core.NewMatrixFrame()
	b := st.Snapshot()

	drawMarks(f, b, s)
	if ub, ok := b.(game.UltimateBoard); ok {
		drawFinished(f, ub, s)
	}
	if sel, ok := game.SelectionOf(st); ok {
		drawSelection(f, b, sel, s.SelectionGlow.Scale(Envelope(s.SelectionPulseHz, elapsed)))
	}
	if ill, ok := st.(game.IllegalMove); ok {
		env := Envelope(s.IllegalPulseHz, elapsed)
		fillRect(f, Footprint(b, ill.Attempt), func(c core.RGB) core.RGB {
			return c.Mix(s.ErrorGlow, env)
		})
	}
	drawStatus(f, st, s)

	return f
}

func drawMarks(f *core.Frame, b game.Board, s Style) {
	switch b := b.(type) {
	case game.SimpleBoard:
		for pos := uint8(1); pos <= 9; pos++ {
			p, ok := b.At(pos).Owner()
			if !ok {
				continue
			}
			r := Footprint(b, game.Move{Grid: 1, Cell: pos})
			for _, o := range Glyph(p) {
				f.Set(r.X+o[0], r.Y+o[1], s.PlayerColor(p))
			}
		}
	case game.UltimateBoard:
		forEachCell(b, func(m game.Move, c game.Cell) {
			if p, ok := c.Owner(); ok {
				r := Footprint(b, m)
				f.Set(r.X, r.Y, s.PlayerColor(p))
			}
		})
	}
}

func drawFinished(f *core.Frame, b game.UltimateBoard, s Style) {
	for grid := uint8(1); grid <= 9; grid++ {
		o := b.Outcome(grid)
		if !o.Decided() {
			continue
		}
		glow := s.OutcomeColor(o).Dim(s.FinishedGlow)

		for cell := uint8(1); cell <= 9; cell++ {
			if b.At(grid, cell).IsEmpty() {
				r := Footprint(b, game.Move{Grid: grid, Cell: cell})
				f.Set(r.X, r.Y, glow)
			}
		}
		f.DrawBox(SubgridRect(grid).Grow(1), glow)
	}
}

func drawSelection(f *core.Frame, b game.Board, sel game.Selection, glow core.RGB) {
	switch b := b.(type) {
	case game.SimpleBoard:
		for pos := uint8(1); pos <= 9; pos++ {
			if b.At(pos).IsEmpty() {
				addRect(f, Footprint(b, game.Move{Grid: 1, Cell: pos}), glow)
			}
		}
	case game.UltimateBoard:
		forEachCell(b, func(m game.Move, c game.Cell) {
			if !c.IsEmpty() || !eligible(b, sel, m.Grid) {
				return
			}
			addRect(f, Footprint(b, m), glow)
		})
	}
}

// eligible reports whether grid accepts the next input under sel.
func eligible(b game.UltimateBoard, sel game.Selection, grid uint8) bool {
	if sel.Kind == game.SelectingGrid {
		return !b.Outcome(grid).Decided()
	}
	return sel.Grid == grid
}

func drawStatus(f *core.Frame, st game.Stage, s Style) {
	w, h := f.Width(), f.Height()
	full := core.NewRect(0, 0, w, h)

	switch st := st.(type) {
	case game.Won:
		f.DrawBox(full, s.PlayerColor(st.Winner))
	case game.Draw:
		f.DrawBox(full, s.DrawBorder)
	default:
		if st.Snapshot().Turn() == game.PlayerOne {
			f.DrawHLine(0, 0, w, s.PlayerOne)
		} else {
			f.DrawHLine(0, h-1, w, s.PlayerTwo)
		}
	}
}

func forEachCell(b game.UltimateBoard, fn func(m game.Move, c game.Cell)) {
	for grid := uint8(1); grid <= 9; grid++ {
		for cell := uint8(1); cell <= 9; cell++ {
			fn(game.Move{Grid: grid, Cell: cell}, b.At(grid, cell))
		}
	}
}
