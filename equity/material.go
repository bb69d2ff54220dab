package equity

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/checkers/board"
)

const KingValue = 3

// PieceValue values a king at 3 and a man by how close it is to being
// crowned: 3 on its promotion row, 2 one row before, 1 anywhere else.
// An unknown piece means the board is corrupt, and panics.
func PieceValue(p board.Piece, row int) int {
	switch p {
	case board.Empty:
		return 0
	case board.WhiteKing, board.BlackKing:
		return KingValue
	case board.WhiteMan:
		switch row {
		case 7:
			return 3
		case 6:
			return 2
		}
		return 1
	case board.BlackMan:
		switch row {
		case 0:
			return 3
		case 1:
			return 2
		}
		return 1
	}
	panic(fmt.Sprintf("unknown piece %d", p))
}

// SideScore sums the value of every piece belonging to side.
func SideScore(b *board.Board, side board.Side) int {
	rows := lo.Range(board.Dim)
	return lo.SumBy(rows, func(r int) int {
		sum := 0
		for c := 0; c < board.Dim; c++ {
			p := b.Get(board.Coord{Row: r, Col: c})
			if p.IsEmpty() {
				continue
			}
			// Value every piece, so a corrupt square panics no matter
			// which side is being scored.
			v := PieceValue(p, r)
			if p.BelongsTo(side) {
				sum += v
			}
		}
		return sum
	})
}

// Score is the net position score for side: its own total minus the
// opponent's.
func Score(b *board.Board, side board.Side) int {
	return SideScore(b, side) - SideScore(b, side.Opponent())
}
