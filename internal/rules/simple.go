package rules

import "github.com/vovakirdan/led-arcade/internal/game"

// SimpleInput is a move request on a plain 3x3 board.
type SimpleInput struct {
	Board  [9]uint8
	Player uint8
	Cell   uint8 // 1..9
}

// SimpleOutput is the verdict for a SimpleInput.
type SimpleOutput struct {
	Legal      bool
	Board      [9]uint8
	NextPlayer uint8
	Winner     uint8 // 0 while nobody has a line
}

// EvaluateSimple applies a move if the cell is on the board and empty.
// Illegal moves return the board unchanged with the same player to move.
func EvaluateSimple(in SimpleInput) SimpleOutput {
	out := SimpleOutput{
		Board:      in.Board,
		NextPlayer: in.Player,
		Winner:     lineWinner(in.Board),
	}
	if in.Cell < 1 || in.Cell > 9 || in.Board[in.Cell-1] != none {
		return out
	}

	out.Legal = true
	out.Board[in.Cell-1] = in.Player
	out.NextPlayer = other(in.Player)
	out.Winner = lineWinner(out.Board)
	return out
}

// Simple adapts EvaluateSimple to game.SimpleOracle.
type Simple struct{}

var _ game.SimpleOracle = Simple{}

// EvaluateSimple implements game.SimpleOracle.
func (Simple) EvaluateSimple(b game.SimpleBoard, m game.Move) game.SimpleResult {
	in := SimpleInput{Player: uint8(b.Current), Cell: m.Cell}
	for i, c := range b.Cells {
		in.Board[i] = uint8(c)
	}

	out := EvaluateSimple(in)

	res := game.SimpleResult{
		Legal:  out.Legal,
		Winner: game.Outcome(out.Winner),
	}
	res.Board.Current = game.Player(out.NextPlayer)
	for i, v := range out.Board {
		res.Board.Cells[i] = game.Cell(v)
	}
	return res
}
