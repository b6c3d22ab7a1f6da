package game

// Cell is the content of one board position: Empty or a player's mark.
type Cell uint8

// Empty is an unoccupied cell.
const Empty Cell = 0

// Mark returns the cell occupied by p.
func Mark(p Player) Cell {
	return Cell(p)
}

// Owner returns the player occupying the cell.
func (c Cell) Owner() (Player, bool) {
	switch Player(c) {
	case PlayerOne, PlayerTwo:
		return Player(c), true
	}
	return 0, false
}

// IsEmpty reports whether nobody has played the cell.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Board is a snapshot of either variant's board.
type Board interface {
	// Turn returns the player to move.
	Turn() Player
	// Full reports whether every cell is occupied.
	Full() bool

	board()
}

// SimpleBoard is the plain 3x3 board. Cells are row-major, index 0 is top-left.
type SimpleBoard struct {
	Cells   [9]Cell
	Current Player
}

// NewSimpleBoard returns an empty board with player one to move.
func NewSimpleBoard() SimpleBoard {
	return SimpleBoard{Current: PlayerOne}
}

func (b SimpleBoard) Turn() Player { return b.Current }

func (b SimpleBoard) Full() bool {
	for _, c := range b.Cells {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// At returns the cell at position 1..9.
func (b SimpleBoard) At(pos uint8) Cell {
	if pos < 1 || pos > 9 {
		return Empty
	}
	return b.Cells[pos-1]
}

func (SimpleBoard) board() {}

// UltimateBoard is the nested board: nine subgrids of nine cells.
// Cells is indexed [grid][cell], both row-major and 0-based.
// Finished holds each subgrid's outcome.
type UltimateBoard struct {
	Cells    [9][9]Cell
	Finished [9]Outcome
	Current  Player
}

// NewUltimateBoard returns an empty board with player one to move.
func NewUltimateBoard() UltimateBoard {
	return UltimateBoard{Current: PlayerOne}
}

func (b UltimateBoard) Turn() Player { return b.Current }

// Full reports whether all 81 cells are occupied.
func (b UltimateBoard) Full() bool {
	for g := range b.Cells {
		for _, c := range b.Cells[g] {
			if c.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// At returns the cell at grid 1..9, cell 1..9.
func (b UltimateBoard) At(grid, cell uint8) Cell {
	if grid < 1 || grid > 9 || cell < 1 || cell > 9 {
		return Empty
	}
	return b.Cells[grid-1][cell-1]
}

// Outcome returns the recorded outcome of subgrid 1..9.
func (b UltimateBoard) Outcome(grid uint8) Outcome {
	if grid < 1 || grid > 9 {
		return OutcomeNone
	}
	return b.Finished[grid-1]
}

func (UltimateBoard) board() {}

// Move addresses a cell. Both fields are 1..9; the simple variant uses Grid 1.
type Move struct {
	Grid uint8
	Cell uint8
}

// SelectionKind tells how the next numeric input is interpreted.
type SelectionKind uint8

const (
	SelectingGrid SelectionKind = iota
	SelectingCell
)

// Selection is the nested variant's input addressing mode.
type Selection struct {
	Kind SelectionKind
	Grid uint8 // Target subgrid when Kind is SelectingCell
}

// SelectGrid means the next input picks a subgrid.
func SelectGrid() Selection {
	return Selection{Kind: SelectingGrid}
}

// SelectCell means the next input picks a cell of subgrid g.
func SelectCell(g uint8) Selection {
	return Selection{Kind: SelectingCell, Grid: g}
}
