// Package pipeline wires the console's tasks together:
//
//	key codes -> Decoder -> keys -> engine -> stages -> renderer -> frames -> sink -> driver
//
// Each arrow between tasks is a single-slot mailbox, so no task ever blocks
// a producer and every consumer sees the freshest value.
package pipeline

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
	"github.com/vovakirdan/led-arcade/internal/input"
	"github.com/vovakirdan/led-arcade/internal/mailbox"
	"github.com/vovakirdan/led-arcade/internal/output"
	"github.com/vovakirdan/led-arcade/internal/render"
)

// Pipeline owns the mailboxes and the three tasks of a running console.
type Pipeline struct {
	engine   game.Engine
	renderer *render.Renderer
	sink     *output.Sink
	decoder  *input.Decoder
	logger   *log.Logger
	gameOpts []game.RunOption

	keys   *mailbox.Mailbox[core.KeyboardInput]
	stages *mailbox.Mailbox[game.Stage]
	frames *mailbox.Mailbox[*core.Frame]
}

// New assembles a pipeline around engine, drawing with style and writing to driver.
func New(engine game.Engine, rt core.RuntimeConfig, style render.Style, driver output.Driver, logger *log.Logger, opts ...render.Option) *Pipeline {
	keys := mailbox.New[core.KeyboardInput]()
	return &Pipeline{
		engine:   engine,
		renderer: render.New(rt, style, logger.WithPrefix("render"), opts...),
		sink:     output.NewSink(driver, logger.WithPrefix("output")),
		decoder:  input.NewDecoder(keys),
		logger:   logger,
		keys:     keys,
		stages:   mailbox.New[game.Stage](),
		frames:   mailbox.New[*core.Frame](),
	}
}

// Decoder returns the entry point for raw key codes.
func (p *Pipeline) Decoder() *input.Decoder {
	return p.decoder
}

// KeyPending reports whether a decoded key is still waiting for the engine.
func (p *Pipeline) KeyPending() bool {
	return p.keys.HasValue()
}

// OnRoundEnd registers fn to receive every finished round. Call it before Run.
func (p *Pipeline) OnRoundEnd(fn func(game.RoundResult)) {
	p.gameOpts = append(p.gameOpts, game.OnRoundEnd(fn))
}

// Run starts the engine, renderer and sink and blocks until ctx is cancelled
// and all three have stopped.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "variant", p.engine.ID())

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	start := func(name string, task func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := task(ctx); err != nil {
				p.logger.Error("task stopped", "task", name, "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	start("engine", func(ctx context.Context) error {
		return game.Run(ctx, p.engine, p.keys, p.stages, p.logger.WithPrefix("game"), p.gameOpts...)
	})
	start("renderer", func(ctx context.Context) error {
		return p.renderer.Run(ctx, p.stages, p.frames)
	})
	start("sink", func(ctx context.Context) error {
		return p.sink.Run(ctx, p.frames)
	})

	wg.Wait()

	p.logger.Info("pipeline stopped", p.Stats().keyvals()...)
	return firstErr
}

// Stats summarises traffic through the pipeline.
type Stats struct {
	Keys          mailbox.Stats
	Stages        mailbox.Stats
	Frames        mailbox.Stats
	IgnoredKeys   uint64
	FramesWritten uint64
	FramesFailed  uint64
}

// Stats returns current counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Keys:          p.keys.Stats(),
		Stages:        p.stages.Stats(),
		Frames:        p.frames.Stats(),
		IgnoredKeys:   p.decoder.Ignored(),
		FramesWritten: p.sink.Written(),
		FramesFailed:  p.sink.Failed(),
	}
}

func (s Stats) keyvals() []interface{} {
	return []interface{}{
		"keys", s.Keys.Writes,
		"keys_ignored", s.IgnoredKeys,
		"stages", s.Stages.Writes,
		"frames", s.Frames.Writes,
		"frames_dropped", s.Frames.Dropped,
		"frames_written", s.FramesWritten,
		"frames_failed", s.FramesFailed,
	}
}
