package render

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
	"github.com/vovakirdan/led-arcade/internal/mailbox"
)

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock replaces the wall clock used for animation timing.
func WithClock(c Clock) Option {
	return func(r *Renderer) { r.clock = c }
}

// Renderer publishes one frame per tick: the idle animation until the
// first snapshot arrives, then the latest snapshot composed at the current
// time. It never waits for the game.
type Renderer struct {
	style    Style
	interval time.Duration
	clock    Clock
	logger   *log.Logger

	stage     game.Stage
	changedAt time.Time
	idleTick  int
}

// New creates a renderer ticking at cfg.TickRate.
func New(cfg core.RuntimeConfig, style Style, logger *log.Logger, opts ...Option) *Renderer {
	r := &Renderer{
		style:    style,
		interval: cfg.TickInterval(),
		clock:    systemClock{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run ticks until ctx is cancelled.
func (r *Renderer) Run(ctx context.Context, in *mailbox.Mailbox[game.Stage], out *mailbox.Mailbox[*core.Frame]) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Debug("renderer started", "interval", r.interval)

	for {
		r.Tick(in, out)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Tick renders and publishes a single frame.
func (r *Renderer) Tick(in *mailbox.Mailbox[game.Stage], out *mailbox.Mailbox[*core.Frame]) {
	if st, ok := in.TryTake(); ok {
		if r.stage == nil {
			r.logger.Debug("first snapshot received", "after_ticks", r.idleTick)
		}
		r.stage = st
		r.changedAt = r.clock.Now()
	}

	if r.stage == nil {
		out.Write(Idle(r.idleTick))
		r.idleTick++
		return
	}

	out.Write(Compose(r.stage, r.clock.Now().Sub(r.changedAt), r.style))
}

// Stage returns the snapshot currently on display, or nil while idle.
func (r *Renderer) Stage() game.Stage {
	return r.stage
}
