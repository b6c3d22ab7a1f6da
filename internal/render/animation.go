package render

import (
	"math"
	"time"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// Envelope is a cosine breathing curve in [0, 1]: 1 at t=0, 0 half a
// period later.
func Envelope(hz float64, elapsed time.Duration) float64 {
	return (1 + math.Cos(2*math.Pi*hz*elapsed.Seconds())) / 2
}

// Idle renders the attract animation shown before any game snapshot:
// three sine waves 120 degrees apart sweeping along the strip.
func Idle(tick int) *core.Frame {
	f := core.NewMatrixFrame()
	n := f.Len()
	offset := float64(tick) * 0.1

	for i := 0; i < n; i++ {
		phase := float64(i)/float64(n)*2*math.Pi + offset
		f.SetIndex(i, core.RGB{
			R: wave(phase),
			G: wave(phase + 4*math.Pi/3),
			B: wave(phase + 2*math.Pi/3),
		})
	}
	return f
}

// wave maps a sine to a channel, clipping the negative half.
func wave(phase float64) uint8 {
	return uint8(core.ClampF(math.Sin(phase)*255, 0, 255))
}
