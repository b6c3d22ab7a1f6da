package core

// Frame is a pixel buffer for the LED matrix.
// Pixels are stored in strip order so the buffer can be handed to a driver
// unchanged; Set and Get address them by logical (x, y) through the
// serpentine mapping.
type Frame struct {
	width  int
	height int
	pixels []RGB
}

// NewFrame creates a black frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pixels: make([]RGB, width*height),
	}
}

// NewMatrixFrame creates a black frame sized for the console's panel.
func NewMatrixFrame() *Frame {
	return NewFrame(MatrixWidth, MatrixHeight)
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Len returns the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Bounds returns the rectangle covering the whole frame.
func (f *Frame) Bounds() Rect {
	return NewRect(0, 0, f.width, f.height)
}

func (f *Frame) inBounds(x, y int) bool {
	return f.Bounds().Contains(x, y)
}

// Set colors the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c RGB) {
	if !f.inBounds(x, y) {
		return
	}
	f.pixels[Serpentine(x, y, f.width, f.height)] = c
}

// Get returns the pixel at (x, y).
// Returns black for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) RGB {
	if !f.inBounds(x, y) {
		return Black
	}
	return f.pixels[Serpentine(x, y, f.width, f.height)]
}

// Add saturating-adds c onto the pixel at (x, y).
func (f *Frame) Add(x, y int, c RGB) {
	f.Set(x, y, f.Get(x, y).Add(c))
}

// SetIndex colors the pixel at a linear strip index.
func (f *Frame) SetIndex(i int, c RGB) {
	if i < 0 || i >= len(f.pixels) {
		return
	}
	f.pixels[i] = c
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (f *Frame) DrawHLine(x, y, length int, c RGB) {
	for i := 0; i < length; i++ {
		f.Set(x+i, y, c)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (f *Frame) DrawVLine(x, y, length int, c RGB) {
	for i := 0; i < length; i++ {
		f.Set(x, y+i, c)
	}
}

// DrawBox draws the one-pixel outline of r.
func (f *Frame) DrawBox(r Rect, c RGB) {
	f.DrawHLine(r.X, r.Y, r.W, c)
	f.DrawHLine(r.X, r.Bottom()-1, r.W, c)
	f.DrawVLine(r.X, r.Y, r.H, c)
	f.DrawVLine(r.Right()-1, r.Y, r.H, c)
}

// Pixels returns a copy of the buffer in strip order.
func (f *Frame) Pixels() []RGB {
	out := make([]RGB, len(f.pixels))
	copy(out, f.pixels)
	return out
}

// Clone creates a deep copy of this frame.
func (f *Frame) Clone() *Frame {
	return &Frame{
		width:  f.width,
		height: f.height,
		pixels: f.Pixels(),
	}
}
