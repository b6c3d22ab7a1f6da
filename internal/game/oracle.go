package game

// SimpleResult is the rules verdict for a simple-board move.
type SimpleResult struct {
	Legal  bool
	Board  SimpleBoard // Current is already the next player
	Winner Outcome     // OutcomeNone while the game goes on
}

// UltimateResult is the rules verdict for a nested-board move.
type UltimateResult struct {
	Legal    bool
	Board    UltimateBoard // Finished and Current already updated
	Winner   Outcome
	NextGrid uint8 // 0 means free choice
}

// SimpleOracle decides legality and outcome of simple-board moves.
// Implementations must be pure and total.
type SimpleOracle interface {
	EvaluateSimple(b SimpleBoard, m Move) SimpleResult
}

// UltimateOracle decides legality and outcome of nested-board moves.
// Implementations must be pure and total.
type UltimateOracle interface {
	EvaluateUltimate(b UltimateBoard, m Move) UltimateResult
}
