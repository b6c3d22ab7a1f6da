// Package simple implements the plain 3x3 tic-tac-toe engine.
package simple

import (
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/rules"
)

const (
	gameID    = "simple"
	gameTitle = "Tic-Tac-Toe"
)

// board is the grid the single board reports as selected.
const board uint8 = 1

func init() {
	registry.Register(gameID, func() game.Engine {
		return New(rules.Simple{})
	})
}

// Game is the simple variant's state machine.
type Game struct {
	oracle game.SimpleOracle
	stage  game.Stage
}

// New creates a game using oracle for move decisions.
func New(oracle game.SimpleOracle) *Game {
	g := &Game{oracle: oracle}
	g.Reset()
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string { return gameID }

// Title returns the display name.
func (g *Game) Title() string { return gameTitle }

// Reset starts a new game with player one to move.
func (g *Game) Reset() {
	g.stage = game.InProgress{
		Board:     game.NewSimpleBoard(),
		Selection: game.SelectCell(board),
	}
}

// Stage returns the current snapshot.
func (g *Game) Stage() game.Stage { return g.stage }

// Handle applies one input.
func (g *Game) Handle(in core.KeyboardInput) (game.Stage, bool) {
	if game.Finished(g.stage) {
		if in.Kind != core.InputEnter {
			return g.stage, false
		}
		g.Reset()
		return g.stage, true
	}

	pos, ok := in.Position()
	if !ok {
		return g.stage, false
	}

	current := g.stage.Snapshot().(game.SimpleBoard)
	move := game.Move{Grid: board, Cell: pos}
	res := g.oracle.EvaluateSimple(current, move)

	switch {
	case !res.Legal:
		g.stage = game.IllegalMove{Board: res.Board, Selection: game.SelectCell(board), Attempt: move}
	case res.Winner.Decided() && res.Winner != game.OutcomeDraw:
		winner, _ := res.Winner.Player()
		g.stage = game.Won{Winner: winner, Board: res.Board}
	case res.Board.Full():
		g.stage = game.Draw{Board: res.Board}
	default:
		g.stage = game.InProgress{Board: res.Board, Selection: game.SelectCell(board)}
	}
	return g.stage, true
}
