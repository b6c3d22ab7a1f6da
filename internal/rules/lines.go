// Package rules decides legality and outcome of tic-tac-toe moves.
//
// The evaluators work on plain numeric boards (0 empty, 1 and 2 players,
// 3 a drawn subgrid) so they can be checked independently of the engines.
// Simple and Ultimate adapt them to the typed model in package game.
package rules

// WinCombos lists the eight lines of a 3x3 board, row-major, 0-based.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome codes shared with the subgrid result array.
const (
	none    uint8 = 0
	player1 uint8 = 1
	player2 uint8 = 2
	drawn   uint8 = 3
)

// lineWinner returns the player owning a complete line, or 0.
// Draw codes never form a line.
func lineWinner(cells [9]uint8) uint8 {
	for _, c := range WinCombos {
		v := cells[c[0]]
		if (v == player1 || v == player2) && v == cells[c[1]] && v == cells[c[2]] {
			return v
		}
	}
	return none
}

func full(cells [9]uint8) bool {
	for _, v := range cells {
		if v == none {
			return false
		}
	}
	return true
}

func other(p uint8) uint8 {
	if p == player1 {
		return player2
	}
	return player1
}
