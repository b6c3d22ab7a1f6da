package ultimate

import (
	"testing"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
	"github.com/vovakirdan/led-arcade/internal/rules"
)

func newGame() *Game {
	return New(rules.Ultimate{})
}

// feed sends number-row digits and returns the final stage.
func feed(t *testing.T, g *Game, digits ...uint8) game.Stage {
	t.Helper()
	var st game.Stage
	for _, d := range digits {
		var ok bool
		st, ok = g.Handle(core.Number(d))
		if !ok {
			t.Fatalf("input %d was not accepted", d)
		}
	}
	return st
}

func selection(t *testing.T, st game.Stage) game.Selection {
	t.Helper()
	sel, ok := game.SelectionOf(st)
	if !ok {
		t.Fatalf("stage %T has no selection", st)
	}
	return sel
}

func TestInitialStage(t *testing.T) {
	g := newGame()

	if sel := selection(t, g.Stage()); sel != game.SelectCell(1) {
		t.Errorf("initial selection = %+v, expected SelectCell(1)", sel)
	}
	if g.Stage().Snapshot().(game.UltimateBoard) != game.NewUltimateBoard() {
		t.Error("initial board is not empty")
	}
}

func TestMoveSendsOpponentToSubgrid(t *testing.T) {
	g := newGame()

	st := feed(t, g, 5)

	b := st.Snapshot().(game.UltimateBoard)
	if b.At(1, 5) != game.Mark(game.PlayerOne) {
		t.Errorf("grid 1 cell 5 = %v, expected player one", b.At(1, 5))
	}
	if sel := selection(t, st); sel != game.SelectCell(5) {
		t.Errorf("selection = %+v, expected SelectCell(5)", sel)
	}
	if b.Current != game.PlayerTwo {
		t.Errorf("player %v to move, expected two", b.Current)
	}
}

func TestIllegalMoveOnOccupiedCell(t *testing.T) {
	g := newGame()

	// One plays 1/1 which sends Two to subgrid 1; Two tries the same cell.
	feed(t, g, 1)
	st := feed(t, g, 1)

	ill, ok := st.(game.IllegalMove)
	if !ok {
		t.Fatalf("stage = %T, expected IllegalMove", st)
	}
	if ill.Attempt != (game.Move{Grid: 1, Cell: 1}) {
		t.Errorf("attempt = %+v, expected {1 1}", ill.Attempt)
	}
	if ill.Selection != game.SelectCell(1) {
		t.Errorf("selection = %+v, expected SelectCell(1) unchanged", ill.Selection)
	}
	if ill.Board.Turn() != game.PlayerTwo {
		t.Error("turn passed on an illegal move")
	}
}

func TestSelectGridDoesNotMove(t *testing.T) {
	g := New(newStub(game.UltimateResult{Legal: true, Board: game.NewUltimateBoard(), NextGrid: 0}))

	st := feed(t, g, 4)
	if sel := selection(t, st); sel != game.SelectGrid() {
		t.Fatalf("selection = %+v, expected SelectGrid", sel)
	}

	calls := g.oracle.(stubOracle).calls
	before := *calls

	st = feed(t, g, 7)
	if sel := selection(t, st); sel != game.SelectCell(7) {
		t.Errorf("selection = %+v, expected SelectCell(7)", sel)
	}
	if *calls != before {
		t.Error("picking a subgrid consulted the oracle")
	}

	feed(t, g, 2)
	if *calls != before+1 {
		t.Error("picking a cell did not consult the oracle")
	}
}

func TestWinningSubgridThree(t *testing.T) {
	g := newGame()

	// One holds cells 1 and 2 of subgrid 3 and is sent there.
	b := game.NewUltimateBoard()
	b.Cells[2] = [9]game.Cell{1, 1, 0, 2, 2, 0, 0, 0, 0}
	b.Cells[0][0] = game.Mark(game.PlayerTwo)
	g.stage = game.InProgress{Board: b, Selection: game.SelectCell(3)}

	st := feed(t, g, 3)

	after := st.Snapshot().(game.UltimateBoard)
	if after.Outcome(3) != game.OutcomePlayerOne {
		t.Errorf("subgrid 3 outcome = %v, expected one", after.Outcome(3))
	}
	for grid := uint8(1); grid <= 9; grid++ {
		if grid != 3 && after.Outcome(grid) != game.OutcomeNone {
			t.Errorf("subgrid %d outcome = %v, expected none", grid, after.Outcome(grid))
		}
	}
	if after.Cells[0] != b.Cells[0] {
		t.Error("subgrid 1 was modified")
	}

	// Cell 3 points at the closed subgrid 3, so Two chooses freely.
	if sel := selection(t, st); sel != game.SelectGrid() {
		t.Errorf("selection = %+v, expected SelectGrid", sel)
	}

	// The closed subgrid rejects further moves, even into its empty cells.
	feed(t, g, 3)
	st = feed(t, g, 9)
	if _, ok := st.(game.IllegalMove); !ok {
		t.Errorf("move into closed subgrid: stage = %T, expected IllegalMove", st)
	}
	if sel := selection(t, st); sel != game.SelectGrid() {
		t.Errorf("selection after rejected move = %+v, expected SelectGrid", sel)
	}
}

func TestGameWonAndReset(t *testing.T) {
	g := newGame()

	b := game.NewUltimateBoard()
	b.Finished[0] = game.OutcomePlayerOne
	b.Finished[4] = game.OutcomePlayerOne
	b.Cells[8] = [9]game.Cell{1, 0, 0, 0, 1, 0, 0, 0, 0}
	g.stage = game.InProgress{Board: b, Selection: game.SelectCell(9)}

	st := feed(t, g, 9)

	won, ok := st.(game.Won)
	if !ok {
		t.Fatalf("stage = %T, expected Won", st)
	}
	if won.Winner != game.PlayerOne {
		t.Errorf("winner = %v, expected one", won.Winner)
	}

	if _, ok := g.Handle(core.Numpad(5)); ok {
		t.Error("digit accepted after the game was won")
	}
	st, ok = g.Handle(core.Enter)
	if !ok {
		t.Fatal("Enter not accepted after the game was won")
	}
	if st.Snapshot() != game.Board(game.NewUltimateBoard()) {
		t.Error("board not reset")
	}
}

func TestFullBoardIsDraw(t *testing.T) {
	g := New(newStub(game.UltimateResult{Legal: true, Board: fullBoard()}))

	st := feed(t, g, 1)

	if _, ok := st.(game.Draw); !ok {
		t.Fatalf("stage = %T, expected Draw", st)
	}
}

func TestNonDigitInputsIgnored(t *testing.T) {
	for _, in := range []core.KeyboardInput{core.ArrowLeft, core.ArrowRight, core.Enter, core.Number(0)} {
		g := newGame()
		if _, ok := g.Handle(in); ok {
			t.Errorf("Handle(%v) accepted", in)
		}
	}
}

func fullBoard() game.UltimateBoard {
	b := game.NewUltimateBoard()
	for g := range b.Cells {
		for c := range b.Cells[g] {
			b.Cells[g][c] = game.Mark(game.Player(1 + (g+c)%2))
		}
		b.Finished[g] = game.OutcomeDraw
	}
	return b
}

type stubOracle struct {
	res   game.UltimateResult
	calls *int
}

func newStub(res game.UltimateResult) stubOracle {
	return stubOracle{res: res, calls: new(int)}
}

func (s stubOracle) EvaluateUltimate(game.UltimateBoard, game.Move) game.UltimateResult {
	*s.calls++
	return s.res
}
