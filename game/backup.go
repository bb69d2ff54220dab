package game

import "github.com/domino14/checkers/board"

// State is everything needed to restore a position: all 64 squares and
// the side to move. It is a plain value, so copying a State takes a
// snapshot.
type State struct {
	Board  board.Board
	OnTurn board.Side
}

// State returns a snapshot of the current position.
func (g *Game) State() State {
	return State{Board: *g.board, OnTurn: g.onturn}
}

// CopyStateTo overwrites st with the current position without allocating.
func (g *Game) CopyStateTo(st *State) {
	st.Board.CopyFrom(g.board)
	st.OnTurn = g.onturn
}

// Restore puts the position back to a snapshot. History is not touched;
// this is meant for searches that try moves with ApplyPath and undo them.
func (g *Game) Restore(st *State) {
	g.board.CopyFrom(&st.Board)
	g.onturn = st.OnTurn
}

// MakeStateStack allocates n snapshots, one per search depth.
func MakeStateStack(n int) []State {
	return make([]State, n)
}
