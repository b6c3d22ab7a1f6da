package output

import (
	"fmt"
	"io"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// StreamDriver writes frames as raw GRB byte triples, the wire order of
// WS2812 strips, to w. Point it at an SPI or serial bridge device node, or
// at a FIFO read by another process.
type StreamDriver struct {
	w          io.Writer
	brightness float64
	buf        []byte
}

// NewStreamDriver creates a driver scaling every channel by brightness (0..1).
func NewStreamDriver(w io.Writer, brightness float64) *StreamDriver {
	return &StreamDriver{
		w:          w,
		brightness: core.ClampF(brightness, 0, 1),
	}
}

// Write encodes and writes one frame.
func (d *StreamDriver) Write(pixels []core.RGB) error {
	n := len(pixels) * 3
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	}
	buf := d.buf[:n]

	for i, p := range pixels {
		if d.brightness < 1 {
			p = p.Scale(d.brightness)
		}
		buf[i*3] = p.G
		buf[i*3+1] = p.R
		buf[i*3+2] = p.B
	}

	if _, err := d.w.Write(buf); err != nil {
		return fmt.Errorf("stream write: %w", err)
	}
	return nil
}
