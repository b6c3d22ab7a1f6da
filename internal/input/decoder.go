package input

import (
	"sync/atomic"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/mailbox"
)

// Decoder bridges a raw key code source into the engine's input mailbox.
// Feed is cheap and never blocks, so it may be called from any goroutine
// that receives key events.
type Decoder struct {
	out     *mailbox.Mailbox[core.KeyboardInput]
	ignored atomic.Uint64
}

// NewDecoder creates a decoder publishing to out.
func NewDecoder(out *mailbox.Mailbox[core.KeyboardInput]) *Decoder {
	return &Decoder{out: out}
}

// Feed decodes code and publishes the result.
// Unrecognised codes are counted and dropped.
func (d *Decoder) Feed(code KeyCode) bool {
	in, ok := Decode(code)
	if !ok {
		d.ignored.Add(1)
		return false
	}
	d.out.Write(in)
	return true
}

// Ignored returns how many codes were dropped as unrecognised.
func (d *Decoder) Ignored() uint64 {
	return d.ignored.Load()
}
