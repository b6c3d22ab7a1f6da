package game

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/mailbox"
)

// Engine is a game state machine driven one keyboard input at a time.
// Engines contain pure logic; timing, rendering and transport live elsewhere.
type Engine interface {
	// ID returns the variant identifier used on the command line.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a fresh game.
	Reset()

	// Stage returns the current snapshot.
	Stage() Stage

	// Handle feeds one input. It returns the new stage and true when the
	// input caused a transition that must be published; ignored inputs
	// return the unchanged stage and false.
	Handle(in core.KeyboardInput) (Stage, bool)
}

// RoundResult describes a finished round.
type RoundResult struct {
	Round   uuid.UUID
	Variant string
	Outcome Outcome
	Started time.Time
	Ended   time.Time
}

// Duration returns how long the round took.
func (r RoundResult) Duration() time.Duration {
	return r.Ended.Sub(r.Started)
}

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	onRoundEnd func(RoundResult)
}

// OnRoundEnd registers fn to be called from the engine task each time a
// round reaches Won or Draw.
func OnRoundEnd(fn func(RoundResult)) RunOption {
	return func(o *runOptions) { o.onRoundEnd = fn }
}

// Run publishes the engine's current stage, then consumes inputs until ctx
// is cancelled, publishing one stage per accepted input.
func Run(ctx context.Context, e Engine, in *mailbox.Mailbox[core.KeyboardInput], out *mailbox.Mailbox[Stage], logger *log.Logger, opts ...RunOption) error {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	logger = logger.With("variant", e.ID())
	round := uuid.New()
	started := time.Now()
	logger.Info("round started", "round", round)

	out.Write(e.Stage())

	for {
		key, err := in.Wait(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		wasFinished := Finished(e.Stage())
		stage, ok := e.Handle(key)
		if !ok {
			logger.Debug("input ignored", "input", key, "stage", StageName(stage))
			continue
		}
		out.Write(stage)

		switch st := stage.(type) {
		case IllegalMove:
			logger.Debug("illegal move", "round", round, "grid", st.Attempt.Grid, "cell", st.Attempt.Cell)
		case Won:
			logger.Info("round won", "round", round, "winner", st.Winner)
			o.finish(RoundResult{Round: round, Variant: e.ID(), Outcome: Winner(st.Winner), Started: started, Ended: time.Now()})
		case Draw:
			logger.Info("round drawn", "round", round)
			o.finish(RoundResult{Round: round, Variant: e.ID(), Outcome: OutcomeDraw, Started: started, Ended: time.Now()})
		case InProgress:
			if wasFinished {
				round = uuid.New()
				started = time.Now()
				logger.Info("round started", "round", round)
			}
		}
	}
}

func (o runOptions) finish(r RoundResult) {
	if o.onRoundEnd != nil {
		o.onRoundEnd(r)
	}
}
