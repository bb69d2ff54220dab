package game

import (
	"errors"

	"github.com/samber/lo"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/move"
)

// These are the reasons a path can be rejected. None of them is fatal;
// the board is never touched while validating.
var (
	ErrPathTooShort   = errors.New("path needs at least two squares")
	ErrOutOfBounds    = errors.New("square is off the board")
	ErrNoPiece        = errors.New("no piece on the start square")
	ErrWrongSide      = errors.New("piece belongs to the other side")
	ErrRepeatedSquare = errors.New("path visits a square twice")
	ErrOccupied       = errors.New("landing square is occupied")
	ErrNotDiagonal    = errors.New("move is not diagonal")
	ErrTooFar         = errors.New("move is longer than a jump")
	ErrWrongDirection = errors.New("men can only move forward")
	ErrBadJump        = errors.New("jump must be over an opposing piece")
	ErrStepInChain    = errors.New("every leg of a multi-leg move must be a jump")
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ValidatePath decides whether path is a legal move for side on b. It
// returns nil if it is, or the first rule the path breaks.
//
// A path with more than two squares must capture on every leg. A man that
// reaches a far row partway through the path moves as a king for the rest
// of it. Whether a capture is mandatory for the turn is not checked here.
func ValidatePath(path move.Path, b *board.Board, side board.Side) error {
	if len(path) < 2 {
		return ErrPathTooShort
	}
	from := path[0]
	if !from.InBounds() {
		return ErrOutOfBounds
	}
	piece := b.Get(from)
	if piece.IsEmpty() {
		return ErrNoPiece
	}
	if piece.Color() != side {
		return ErrWrongSide
	}
	if len(lo.Uniq(path)) != len(path) {
		return ErrRepeatedSquare
	}

	mustCapture := len(path) > 2
	king := piece.IsKing()
	prev := from
	for _, to := range path[1:] {
		if !to.InBounds() {
			return ErrOutOfBounds
		}
		if !b.Get(to).IsEmpty() {
			return ErrOccupied
		}
		dr, dc := to.Row-prev.Row, to.Col-prev.Col
		if dr == 0 || abs(dr) != abs(dc) {
			return ErrNotDiagonal
		}
		if abs(dr) > 2 {
			return ErrTooFar
		}
		if !king && (dr > 0) != (side.Forward() > 0) {
			return ErrWrongDirection
		}
		if abs(dr) == 1 {
			if mustCapture {
				return ErrStepInChain
			}
		} else {
			mid := board.Midpoint(prev, to)
			captured := b.Get(mid)
			if captured.IsEmpty() || captured.Color() == side {
				return ErrBadJump
			}
		}
		if to.IsFarRow() {
			king = true
		}
		prev = to
	}
	return nil
}

// IsLegal is true if ValidatePath accepts the path.
func IsLegal(path move.Path, b *board.Board, side board.Side) bool {
	return ValidatePath(path, b, side) == nil
}
