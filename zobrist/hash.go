package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/move"
)

const bignum = 1<<63 - 2

// numPieces covers every non-empty piece value.
const numPieces = int(board.BlackKing) + 1

// generate a zobrist hash for a checkers position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	blackTurn uint64
	posTable  [board.Dim * board.Dim][numPieces]uint64
}

func (z *Zobrist) Initialize() {
	for i := range z.posTable {
		// Empty squares don't contribute to the key.
		for j := 1; j < numPieces; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.blackTurn = frand.Uint64n(bignum) + 1
}

func idx(c board.Coord) int {
	return c.Row*board.Dim + c.Col
}

func (z *Zobrist) Hash(b *board.Board, onturn board.Side) uint64 {
	key := uint64(0)
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			sq := board.Coord{Row: r, Col: c}
			p := b.Get(sq)
			if p.IsEmpty() {
				continue
			}
			key ^= z.posTable[idx(sq)][p]
		}
	}
	if onturn == board.Black {
		key ^= z.blackTurn
	}
	return key
}

// AddMove updates key for a move of piece along path that captured the
// given pieces, and passes the turn. It gives the same result as hashing
// the position after the move from scratch.
func (z *Zobrist) AddMove(key uint64, path move.Path, piece board.Piece,
	captures []board.Piece) uint64 {

	key ^= z.posTable[idx(path.Start())][piece]
	final := piece
	ci := 0
	prev := path.Start()
	for _, to := range path[1:] {
		if to.IsFarRow() {
			final = final.Promoted()
		}
		if abs(to.Row-prev.Row) == 2 && ci < len(captures) {
			key ^= z.posTable[idx(board.Midpoint(prev, to))][captures[ci]]
			ci++
		}
		prev = to
	}
	key ^= z.posTable[idx(path.Last())][final]
	key ^= z.blackTurn
	return key
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
