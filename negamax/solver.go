// Package negamax picks a move for the side to move with a depth-limited
// negamax search. There is no pruning: every candidate at every level is
// tried, so ties are broken fairly between all equally good moves.
package negamax

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/game"
	"github.com/domino14/checkers/move"
	"github.com/domino14/checkers/movegen"
)

var (
	ErrNoLegalMoves = errors.New("no legal moves for the side to move")
	ErrInvalidDepth = errors.New("search depth cannot be negative")
)

// RandSource draws a uniform integer in [0, n). *frand.RNG and
// *math/rand.Rand both satisfy it.
type RandSource interface {
	Intn(n int) int
}

type Solver struct {
	movegen movegen.MoveGenerator
	game    *game.Game
	threads int
	nodes   atomic.Uint64
}

// Init initializes the solver. The generator must be safe for concurrent
// use if more than one thread is set.
func (s *Solver) Init(m movegen.MoveGenerator, g *game.Game) error {
	s.movegen = m
	s.game = g
	s.threads = 1
	return nil
}

// SetThreads sets how many root moves are searched at once.
func (s *Solver) SetThreads(threads int) {
	if threads < 2 {
		s.threads = 1
		return
	}
	s.threads = threads
}

func (s *Solver) Game() *game.Game {
	return s.game
}

// Nodes is the number of positions visited by the last search.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// BestMove searches maxDepth replies deep and returns the best move for
// the side to move along with its negamax value. At depth 0 the value is
// just the move's own score. The game's board and side to move are the
// same after the search as before it.
//
// Each tie is settled with exactly one draw from rng, so a fixed seed and
// thread count always give the same move.
func (s *Solver) BestMove(rng RandSource, maxDepth int) (*move.Move, int, error) {
	if maxDepth < 0 {
		return nil, 0, ErrInvalidDepth
	}
	tstart := time.Now()
	s.nodes.Store(0)
	side := s.game.PlayerOnTurn()

	var best *move.Move
	var value int
	if s.threads > 1 && maxDepth > 0 {
		best, value = s.searchRootParallel(rng, side, maxDepth)
	} else {
		sr := &searcher{
			g:     s.game,
			gen:   s.movegen,
			rng:   rng,
			saves: game.MakeStateStack(maxDepth),
			nodes: &s.nodes,
		}
		best, value = sr.negamax(side, maxDepth)
	}
	if best == nil {
		return nil, 0, ErrNoLegalMoves
	}
	log.Debug().
		Int("depth", maxDepth).
		Int("threads", s.threads).
		Uint64("nodes", s.nodes.Load()).
		Str("best", best.ShortDescription()).
		Int("value", value).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("best-move")
	return best, value, nil
}

// searchRootParallel evaluates each root move on its own copy of the game.
// Seeds for the branches are drawn from rng in generation order before
// anything starts, and the final tie-break runs in that same order.
func (s *Solver) searchRootParallel(rng RandSource, side board.Side, depth int) (*move.Move, int) {
	plays := s.movegen.GenAll(s.game.Board(), side)
	if len(plays) == 0 {
		return nil, 0
	}
	seeds := make([][]byte, len(plays))
	for i := range plays {
		seeds[i] = drawSeed(rng)
	}
	values := make([]int, len(plays))

	eg := errgroup.Group{}
	eg.SetLimit(s.threads)
	for i, p := range plays {
		eg.Go(func() error {
			g := s.game.Copy()
			s.nodes.Add(1)
			game.ApplyPath(p.Path(), g.Board())
			sr := &searcher{
				g:     g,
				gen:   s.movegen,
				rng:   frand.NewCustom(seeds[i], 1024, 12),
				saves: game.MakeStateStack(depth),
				nodes: &s.nodes,
			}
			_, reply := sr.negamax(side.Opponent(), depth-1)
			values[i] = p.Score() - reply
			return nil
		})
	}
	// Branches don't fail; Wait is only a barrier here.
	_ = eg.Wait()

	tb := tieBreaker{}
	for i, p := range plays {
		tb.offer(rng, p, values[i])
	}
	return tb.winner, tb.bestScore
}

func drawSeed(rng RandSource) []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(rng.Intn(256))
	}
	return seed
}
