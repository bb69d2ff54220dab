package game

import (
	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/move"
)

// ApplyPath moves a piece along an already-validated path, mutating b, and
// returns the captured pieces in order. A piece landing on row 0 or 7 is
// crowned right away, so it moves as a king for any remaining legs.
// ApplyPath does not change the side to move.
func ApplyPath(path move.Path, b *board.Board) []board.Piece {
	captures := make([]board.Piece, 0, len(path)-1)
	prev := path[0]
	for _, to := range path[1:] {
		piece := b.Get(prev)
		if to.IsFarRow() {
			piece = piece.Promoted()
		}
		b.Set(to, piece)
		b.Set(prev, board.Empty)
		if abs(to.Row-prev.Row) == 2 {
			mid := board.Midpoint(prev, to)
			captures = append(captures, b.Get(mid))
			b.Set(mid, board.Empty)
		}
		prev = to
	}
	return captures
}

// Turn is a committed move in the game history.
type Turn struct {
	Side     board.Side
	Path     move.Path
	Piece    board.Piece
	Captures []board.Piece
}

func (t Turn) String() string {
	return t.Path.String()
}
