// Package game holds the model shared by the tic-tac-toe engines and the
// renderer: players, boards, stages and the engine contract.
package game

import "fmt"

// Player identifies a side. The numeric values are used at the rules boundary.
type Player uint8

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Other returns the opponent.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

// Outcome is the result recorded for a finished subgrid: a player or a draw.
type Outcome uint8

const (
	OutcomeNone      Outcome = 0
	OutcomePlayerOne Outcome = 1
	OutcomePlayerTwo Outcome = 2
	OutcomeDraw      Outcome = 3
)

// Winner returns the outcome for a won board.
func Winner(p Player) Outcome {
	return Outcome(p)
}

// Decided reports whether the subgrid is closed.
func (o Outcome) Decided() bool {
	return o != OutcomeNone
}

// Player returns the winning player, if any.
func (o Outcome) Player() (Player, bool) {
	switch o {
	case OutcomePlayerOne:
		return PlayerOne, true
	case OutcomePlayerTwo:
		return PlayerTwo, true
	}
	return 0, false
}

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeDraw:
		return "draw"
	}
	if p, ok := o.Player(); ok {
		return p.String()
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}
