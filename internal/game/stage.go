package game

// Stage is an immutable snapshot of a game, the only value passed from an
// engine to the renderer. It is one of InProgress, IllegalMove, Won or Draw.
type Stage interface {
	// Snapshot returns the board carried by the stage.
	Snapshot() Board

	stage()
}

// InProgress is a game waiting for the next input.
type InProgress struct {
	Board     Board
	Selection Selection
}

// IllegalMove is a game whose last attempted move was rejected.
type IllegalMove struct {
	Board     Board
	Selection Selection
	Attempt   Move
}

// Won is a finished game with a winner.
type Won struct {
	Winner Player
	Board  Board
}

// Draw is a finished game without a winner.
type Draw struct {
	Board Board
}

func (s InProgress) Snapshot() Board  { return s.Board }
func (s IllegalMove) Snapshot() Board { return s.Board }
func (s Won) Snapshot() Board         { return s.Board }
func (s Draw) Snapshot() Board        { return s.Board }

func (InProgress) stage()  {}
func (IllegalMove) stage() {}
func (Won) stage()         {}
func (Draw) stage()        {}

// SelectionOf returns the selection of a stage still accepting moves.
func SelectionOf(s Stage) (Selection, bool) {
	switch st := s.(type) {
	case InProgress:
		return st.Selection, true
	case IllegalMove:
		return st.Selection, true
	}
	return Selection{}, false
}

// Finished reports whether the stage is Won or Draw.
func Finished(s Stage) bool {
	switch s.(type) {
	case Won, Draw:
		return true
	}
	return false
}

// StageName returns a short label for logs.
func StageName(s Stage) string {
	switch s.(type) {
	case InProgress:
		return "in_progress"
	case IllegalMove:
		return "illegal_move"
	case Won:
		return "won"
	case Draw:
		return "draw"
	}
	return "unknown"
}
