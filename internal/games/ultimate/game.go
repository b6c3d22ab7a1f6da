// Package ultimate implements nested ("ultimate") tic-tac-toe: nine
// subgrids, where the cell just played decides the opponent's subgrid.
package ultimate

import (
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/rules"
)

const (
	gameID    = "ultimate"
	gameTitle = "Ultimate Tic-Tac-Toe"
)

func init() {
	registry.Register(gameID, func() game.Engine {
		return New(rules.Ultimate{})
	})
}

// Game is the nested variant's state machine.
// Numeric inputs pick a subgrid or a cell depending on the current selection.
type Game struct {
	oracle game.UltimateOracle
	stage  game.Stage
}

// New creates a game using oracle for move decisions.
func New(oracle game.UltimateOracle) *Game {
	g := &Game{oracle: oracle}
	g.Reset()
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string { return gameID }

// Title returns the display name.
func (g *Game) Title() string { return gameTitle }

// Reset starts a new game. Player one opens in the top-left subgrid.
func (g *Game) Reset() {
	g.stage = game.InProgress{
		Board:     game.NewUltimateBoard(),
		Selection: game.SelectCell(1),
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

	current := g.stage.Snapshot().(game.UltimateBoard)
	sel, _ := game.SelectionOf(g.stage)

	if sel.Kind == game.SelectingGrid {
		g.stage = game.InProgress{Board: current, Selection: game.SelectCell(pos)}
		return g.stage, true
	}

	move := game.Move{Grid: sel.Grid, Cell: pos}
	res := g.oracle.EvaluateUltimate(current, move)
	next := nextSelection(res.NextGrid)

	switch {
	case !res.Legal:
		g.stage = game.IllegalMove{Board: res.Board, Selection: next, Attempt: move}
	case res.Winner.Decided() && res.Winner != game.OutcomeDraw:
		winner, _ := res.Winner.Player()
		g.stage = game.Won{Winner: winner, Board: res.Board}
	case res.Board.Full():
		g.stage = game.Draw{Board: res.Board}
	default:
		g.stage = game.InProgress{Board: res.Board, Selection: next}
	}
	return g.stage, true
}

func nextSelection(grid uint8) game.Selection {
	if grid == 0 {
		return game.SelectGrid()
	}
	return game.SelectCell(grid)
}
