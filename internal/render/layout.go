package render

import (
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
)

// Boards are tiled in 3-pixel blocks with a 5-pixel stride and a 1-pixel
// lead-in, leaving 2-pixel gutters between blocks and 1-pixel edges.
const (
	lead   = 1
	stride = 5
	block  = 3
)

// blockOrigin returns the top-left pixel of block 0..8 (row-major).
func blockOrigin(i int) (x, y int) {
	return lead + (i%3)*stride, lead + (i/3)*stride
}

// SubgridRect returns the 3x3 pixel area of nested subgrid 1..9.
func SubgridRect(grid uint8) core.Rect {
	x, y := blockOrigin(int(grid) - 1)
	return core.NewRect(x, y, block, block)
}

// Footprint returns the pixels occupied by one cell of b.
// A simple-board cell covers a whole 3x3 block; a nested-board cell is a
// single pixel inside its subgrid's block. Marks, glows and pulses all go
// through this mapping so they always line up.
func Footprint(b game.Board, m game.Move) core.Rect {
	if _, ok := b.(game.SimpleBoard); ok {
		x, y := blockOrigin(int(m.Cell) - 1)
		return core.NewRect(x, y, block, block)
	}
	x, y := blockOrigin(int(m.Grid) - 1)
	c := int(m.Cell) - 1
	return core.NewRect(x+c%3, y+c/3, 1, 1)
}

// glyph pixel offsets within a 3x3 block.
var (
	glyphX = [][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 2}, {2, 0}}
	glyphO = [][2]int{{1, 0}, {0, 1}, {2, 1}, {1, 2}}
)

// Glyph returns the block offsets drawn for p's mark on the simple board:
// an X for player one, an O for player two.
func Glyph(p game.Player) [][2]int {
	if p == game.PlayerTwo {
		return glyphO
	}
	return glyphX
}

// addRect saturating-adds c onto every pixel of r.
func addRect(f *core.Frame, r core.Rect, c core.RGB) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			f.Add(x, y, c)
		}
	}
}

// fillRect applies fn to every pixel of r.
func fillRect(f *core.Frame, r core.Rect, fn func(core.RGB) core.RGB) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			f.Set(x, y, fn(f.Get(x, y)))
		}
	}
}
