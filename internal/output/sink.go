// Package output forwards rendered frames to a display driver.
package output

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/mailbox"
)

// Driver transmits one frame of pixels, in strip order, to a display.
type Driver interface {
	Write(pixels []core.RGB) error
}

// DriverFunc adapts a function to Driver.
type DriverFunc func(pixels []core.RGB) error

// Write calls f.
func (f DriverFunc) Write(pixels []core.RGB) error { return f(pixels) }

// Discard is a driver that accepts and drops every frame.
var Discard Driver = DriverFunc(func([]core.RGB) error { return nil })

// Sink hands the latest frame to a driver. Display errors are logged and
// never stop the sink.
type Sink struct {
	driver Driver
	logger *log.Logger

	written atomic.Uint64
	failed  atomic.Uint64
}

// NewSink creates a sink writing to d.
func NewSink(d Driver, logger *log.Logger) *Sink {
	return &Sink{driver: d, logger: logger}
}

// Run forwards frames until ctx is cancelled.
func (s *Sink) Run(ctx context.Context, in *mailbox.Mailbox[*core.Frame]) error {
	for {
		f, err := in.Wait(ctx)
		if err != nil {
			return nil
		}
		s.Write(f)
	}
}

// Write sends one frame to the driver.
func (s *Sink) Write(f *core.Frame) {
	if err := s.driver.Write(f.Pixels()); err != nil {
		n := s.failed.Add(1)
		s.logger.Warn("display write failed", "error", err, "failures", n)
		return
	}
	s.written.Add(1)
}

// Written returns the number of frames the driver accepted.
func (s *Sink) Written() uint64 { return s.written.Load() }

// Failed returns the number of frames the driver rejected.
func (s *Sink) Failed() uint64 { return s.failed.Load() }
