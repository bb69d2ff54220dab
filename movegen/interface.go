package movegen

import (
	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/move"
)

// MoveGenerator is a generic interface for generating moves.
type MoveGenerator interface {
	GenAll(b *board.Board, side board.Side) []*move.Move
}
