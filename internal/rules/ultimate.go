package rules

import "github.com/vovakirdan/led-arcade/internal/game"

// UltimateInput is a move request on the nested board.
// Board is indexed [grid][cell], both 0-based row-major.
type UltimateInput struct {
	Board    [9][9]uint8
	Finished [9]uint8 // Per-subgrid outcome: 0 open, 1/2 won, 3 drawn
	Player   uint8
	Grid     uint8 // 1..9
	Cell     uint8 // 1..9
}

// UltimateOutput is the verdict for an UltimateInput.
type UltimateOutput struct {
	Legal      bool
	Board      [9][9]uint8
	Finished   [9]uint8
	NextPlayer uint8
	Winner     uint8
	NextGrid   uint8 // 0 means the next player picks any open subgrid
}

// EvaluateUltimate applies a move into an open subgrid's empty cell.
//
// An illegal move leaves Board and Finished unchanged and keeps the same
// player. NextGrid then points back at the attempted subgrid while it is
// still open, so the player retries there, or is 0 when it is closed.
func EvaluateUltimate(in UltimateInput) UltimateOutput {
	out := UltimateOutput{
		Board:      in.Board,
		Finished:   in.Finished,
		NextPlayer: in.Player,
		Winner:     lineWinner(in.Finished),
	}

	if in.Grid < 1 || in.Grid > 9 || in.Cell < 1 || in.Cell > 9 {
		return out
	}
	g, c := in.Grid-1, in.Cell-1

	if in.Finished[g] != none {
		return out
	}
	out.NextGrid = in.Grid
	if in.Board[g][c] != none {
		return out
	}

	out.Legal = true
	out.Board[g][c] = in.Player

	switch w := lineWinner(out.Board[g]); {
	case w != none:
		out.Finished[g] = w
	case full(out.Board[g]):
		out.Finished[g] = drawn
	}

	out.Winner = lineWinner(out.Finished)
	out.NextPlayer = other(in.Player)

	// The cell just played names the subgrid the opponent is sent to.
	if out.Finished[c] == none {
		out.NextGrid = in.Cell
	} else {
		out.NextGrid = 0
	}
	return out
}

// Ultimate adapts EvaluateUltimate to game.UltimateOracle.
type Ultimate struct{}

var _ game.UltimateOracle = Ultimate{}

// EvaluateUltimate implements game.UltimateOracle.
func (Ultimate) EvaluateUltimate(b game.UltimateBoard, m game.Move) game.UltimateResult {
	in := UltimateInput{Player: uint8(b.Current), Grid: m.Grid, Cell: m.Cell}
	for g := range b.Cells {
		for c, v := range b.Cells[g] {
			in.Board[g][c] = uint8(v)
		}
		in.Finished[g] = uint8(b.Finished[g])
	}

	out := EvaluateUltimate(in)

	res := game.UltimateResult{
		Legal:    out.Legal,
		Winner:   game.Outcome(out.Winner),
		NextGrid: out.NextGrid,
	}
	res.Board.Current = game.Player(out.NextPlayer)
	for g := range out.Board {
		for c, v := range out.Board[g] {
			res.Board.Cells[g][c] = game.Cell(v)
		}
		res.Board.Finished[g] = game.Outcome(out.Finished[g])
	}
	return res
}
