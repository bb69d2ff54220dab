package equity

import "github.com/domino14/checkers/board"

// EquityCalculator scores pieces and positions.
type EquityCalculator interface {
	// PieceValue is the worth of a single piece standing on the given row.
	PieceValue(p board.Piece, row int) int
	// Score is the net score of the position from side's point of view.
	Score(b *board.Board, side board.Side) int
}

// MaterialCalculator implements EquityCalculator with the material and
// advancement values used throughout the engine.
type MaterialCalculator struct{}

func (MaterialCalculator) PieceValue(p board.Piece, row int) int {
	return PieceValue(p, row)
}

func (MaterialCalculator) Score(b *board.Board, side board.Side) int {
	return Score(b, side)
}
