package game_test

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/game"
	"github.com/domino14/checkers/movegen"
)

// Trying a move with ApplyPath and restoring the snapshot must always
// get back to the exact same position, whatever was played.
func TestSnapshotRoundTrip(t *testing.T) {
	is := is.New(t)
	gen := movegen.NewGenerator()
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)

	for i := 0; i < 20; i++ {
		g := game.NewGame()
		st := game.MakeStateStack(1)
		for ply := 0; ply < 60; ply++ {
			plays := gen.GenAll(g.Board(), g.PlayerOnTurn())
			if len(plays) == 0 {
				break
			}
			before := g.Board().Copy()
			side := g.PlayerOnTurn()
			key := g.Key()

			g.CopyStateTo(&st[0])
			for _, m := range plays {
				game.ApplyPath(m.Path(), g.Board())
				g.SetPlayerOnTurn(side.Opponent())
				g.Restore(&st[0])
				// Rehash what was restored.
				g.SetPlayerOnTurn(g.PlayerOnTurn())
				is.True(g.Board().Equals(before))
				is.Equal(g.PlayerOnTurn(), side)
				is.Equal(g.Key(), key)
			}

			m := plays[rng.Intn(len(plays))]
			_, err := g.PlayMove(m.Path())
			is.NoErr(err)
		}
	}
}

func TestUndoRoundTrip(t *testing.T) {
	is := is.New(t)
	gen := movegen.NewGenerator()
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)

	g := game.NewGame()
	var boards []*board.Board
	var keys []uint64
	for ply := 0; ply < 40; ply++ {
		plays := gen.GenAll(g.Board(), g.PlayerOnTurn())
		if len(plays) == 0 {
			break
		}
		boards = append(boards, g.Board().Copy())
		keys = append(keys, g.Key())
		_, err := g.PlayMove(plays[rng.Intn(len(plays))].Path())
		is.NoErr(err)
	}
	for i := len(boards) - 1; i >= 0; i-- {
		is.NoErr(g.UnplayLastMove())
		is.True(g.Board().Equals(boards[i]))
		is.Equal(g.Key(), keys[i])
	}
	is.Equal(g.PlayerOnTurn(), board.White)
}
