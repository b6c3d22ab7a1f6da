// Package core provides fundamental types and utilities for the LED console.
// It contains no external dependencies to keep game and render logic pure
// and testable.
package core

// Matrix dimensions of the LED panel.
const (
	MatrixWidth  = 16
	MatrixHeight = 16
	MatrixLength = MatrixWidth * MatrixHeight
)

// Rect represents an axis-aligned box on the matrix.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grow returns the rectangle extended by n pixels on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Serpentine converts logical (x, y) on a w*h matrix into the linear index
// along a zig-zag wired LED strip. The strip starts at the top-left corner
// and runs down even columns and up odd columns.
func Serpentine(x, y, w, h int) int {
	if x%2 == 0 {
		return x*h + y
	}
	return x*h + (h - 1 - y)
}

// Unserpentine is the inverse of Serpentine.
func Unserpentine(index, w, h int) (x, y int) {
	x = index / h
	off := index % h
	if x%2 == 0 {
		return x, off
	}
	return x, h - 1 - off
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
