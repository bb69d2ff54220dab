package negamax

import (
	"sync/atomic"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/game"
	"github.com/domino14/checkers/move"
	"github.com/domino14/checkers/movegen"
)

// tieBreaker keeps the best move seen so far. When several moves share
// the best score each of them ends up the winner with equal probability,
// without ever collecting them (reservoir sampling).
type tieBreaker struct {
	bestScore int
	winner    *move.Move
	tieCount  int
}

func (t *tieBreaker) offer(rng RandSource, m *move.Move, score int) {
	switch {
	case t.winner == nil || score > t.bestScore:
		t.bestScore = score
		t.winner = m
		t.tieCount = 1
	case score == t.bestScore:
		t.tieCount++
		if rng.Intn(t.tieCount) == 0 {
			t.winner = m
		}
	}
}

// searcher owns one live game for the duration of a search.
type searcher struct {
	g     *game.Game
	gen   movegen.MoveGenerator
	rng   RandSource
	nodes *atomic.Uint64
	// saves[d-1] is the position every sibling at depth d is tried from.
	saves []game.State
}

// negamax returns side's best move at this depth and its value: the
// move's own score minus the value of the opponent's best reply. A side
// with no moves returns a nil move worth 0.
func (sr *searcher) negamax(side board.Side, depth int) (*move.Move, int) {
	plays := sr.gen.GenAll(sr.g.Board(), side)
	tb := tieBreaker{}
	if depth == 0 {
		for _, p := range plays {
			tb.offer(sr.rng, p, p.Score())
		}
		return tb.winner, tb.bestScore
	}

	snapshot := &sr.saves[depth-1]
	sr.g.CopyStateTo(snapshot)
	for _, p := range plays {
		sr.nodes.Add(1)
		game.ApplyPath(p.Path(), sr.g.Board())
		_, reply := sr.negamax(side.Opponent(), depth-1)
		sr.g.Restore(snapshot)
		tb.offer(sr.rng, p, p.Score()-reply)
	}
	return tb.winner, tb.bestScore
}
