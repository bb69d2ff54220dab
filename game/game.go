// Package game encapsulates the mechanics of a game of checkers: the
// rules for validating a move, applying it to the board, and keeping
// track of the side to move and the history of the game.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/equity"
	"github.com/domino14/checkers/move"
	"github.com/domino14/checkers/zobrist"
)

var ErrNothingToUndo = errors.New("there are no moves to undo")

// Game is the actual internal game structure. It holds the live board,
// the side to move, and the history of committed turns.
// Note: a Game doesn't care how it is played. Engines and human players
// pick moves outside of the scope of this package.
type Game struct {
	board   *board.Board
	onturn  board.Side
	turnnum int

	zobrist *zobrist.Zobrist
	// keys[i] is the position key before turn i; the last element is the
	// current position.
	keys    []uint64
	history []Turn
	// backups[i] is the state before turn i was played. It is used to
	// undo turns.
	backups []State
}

// NewGame creates a game in the standard starting position, white to move.
func NewGame() *Game {
	z := &zobrist.Zobrist{}
	z.Initialize()
	g := &Game{
		board:   board.NewStandardBoard(),
		onturn:  board.White,
		zobrist: z,
	}
	g.keys = []uint64{z.Hash(g.board, g.onturn)}
	return g
}

// SetPosition replaces the current position and clears the history.
func (g *Game) SetPosition(b *board.Board, onturn board.Side) {
	g.board.CopyFrom(b)
	g.onturn = onturn
	g.turnnum = 0
	g.history = nil
	g.backups = nil
	g.keys = []uint64{g.zobrist.Hash(g.board, g.onturn)}
	log.Debug().Str("layout", g.board.Layout()).Str("onturn", onturn.String()).Msg("set-position")
}

// Copy returns a copy of the position that can be searched independently.
// The history is not copied.
func (g *Game) Copy() *Game {
	cp := &Game{
		board:   g.board.Copy(),
		onturn:  g.onturn,
		turnnum: g.turnnum,
		zobrist: g.zobrist,
	}
	cp.keys = []uint64{g.Key()}
	return cp
}

// ValidateMove checks a path against the rules for the side to move.
func (g *Game) ValidateMove(path move.Path) error {
	return ValidatePath(path, g.board, g.onturn)
}

// PlayMove validates and commits a path for the side to move, then
// passes the turn. An illegal path returns an error and leaves the game
// untouched.
func (g *Game) PlayMove(path move.Path) ([]board.Piece, error) {
	err := g.ValidateMove(path)
	if err != nil {
		return nil, fmt.Errorf("illegal move %s: %w", path, err)
	}
	g.backups = append(g.backups, g.State())
	piece := g.board.Get(path.Start())
	captures := ApplyPath(path, g.board)
	g.history = append(g.history, Turn{
		Side:     g.onturn,
		Path:     path,
		Piece:    piece,
		Captures: captures,
	})
	g.keys = append(g.keys, g.zobrist.AddMove(g.Key(), path, piece, captures))
	g.onturn = g.onturn.Opponent()
	g.turnnum++
	log.Debug().Str("move", path.String()).Int("captures", len(captures)).
		Int("turn", g.turnnum).Msg("played-move")
	return captures, nil
}

// UnplayLastMove takes back the last committed turn.
func (g *Game) UnplayLastMove() error {
	n := len(g.backups)
	if n == 0 {
		return ErrNothingToUndo
	}
	g.Restore(&g.backups[n-1])
	g.backups = g.backups[:n-1]
	g.history = g.history[:n-1]
	g.keys = g.keys[:len(g.keys)-1]
	g.turnnum--
	return nil
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() board.Side {
	return g.onturn
}

func (g *Game) SetPlayerOnTurn(s board.Side) {
	g.onturn = s
	g.keys[len(g.keys)-1] = g.zobrist.Hash(g.board, g.onturn)
}

// Turn is the number of turns played so far.
func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) History() []Turn {
	return g.history
}

// LastTurn returns the last committed turn, if any.
func (g *Game) LastTurn() (Turn, bool) {
	if len(g.history) == 0 {
		return Turn{}, false
	}
	return g.history[len(g.history)-1], true
}

// Key is the zobrist key of the current position.
func (g *Game) Key() uint64 {
	return g.keys[len(g.keys)-1]
}

// RepetitionCount is how many times the current position has occurred
// in this game, including now.
func (g *Game) RepetitionCount() int {
	cur := g.Key()
	n := 0
	for _, k := range g.keys {
		if k == cur {
			n++
		}
	}
	return n
}

// Score is the net material score from the point of view of the side
// to move.
func (g *Game) Score() int {
	return equity.Score(g.board, g.onturn)
}
