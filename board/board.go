package board

import (
	"errors"
	"strings"
)

var (
	ErrUnknownPiece = errors.New("unknown piece")
	ErrBadNotation  = errors.New("bad square notation")
	ErrBadLayout    = errors.New("layout must have exactly 64 squares")
)

// StandardLayout is the starting position, row-major, one character per
// square. White occupies the top three rows and black the bottom three.
//
//	abcdefghabcdefghabcdefghabcdefghabcdefghabcdefghabcdefghabcdefgh
const StandardLayout = ".o.o.o.oo.o.o.o..o.o.o.o................x.x.x.x..x.x.x.xx.x.x.x."

// Board is an 8x8 grid of pieces. It is a value type; assigning a Board
// copies all 64 squares.
type Board struct {
	squares [Dim][Dim]Piece
}

// NewStandardBoard returns a board set up for the start of a game.
func NewStandardBoard() *Board {
	b, err := FromLayout(StandardLayout)
	if err != nil {
		panic(err)
	}
	return b
}

// FromLayout builds a board from 64 piece characters. Whitespace is
// ignored, so the output of Dump is accepted as well.
func FromLayout(layout string) (*Board, error) {
	b := &Board{}
	err := b.SetFromLayout(layout)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// SetFromLayout overwrites every square from a layout string.
func (b *Board) SetFromLayout(layout string) error {
	layout = strings.Join(strings.Fields(layout), "")
	if len(layout) != Dim*Dim {
		return ErrBadLayout
	}
	var sq [Dim][Dim]Piece
	for i, r := range layout {
		p, err := PieceFromRune(r)
		if err != nil {
			return err
		}
		sq[i/Dim][i%Dim] = p
	}
	b.squares = sq
	return nil
}

func (b *Board) Get(c Coord) Piece {
	return b.squares[c.Row][c.Col]
}

func (b *Board) Set(c Coord, p Piece) {
	b.squares[c.Row][c.Col] = p
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// CopyFrom overwrites this board with the contents of another. It does
// not allocate.
func (b *Board) CopyFrom(other *Board) {
	b.squares = other.squares
}

func (b *Board) Equals(other *Board) bool {
	return b.squares == other.squares
}

// Clear empties every square.
func (b *Board) Clear() {
	b.squares = [Dim][Dim]Piece{}
}

// PieceCount counts the pieces belonging to a side.
func (b *Board) PieceCount(s Side) int {
	n := 0
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.squares[r][c].BelongsTo(s) {
				n++
			}
		}
	}
	return n
}

// Dump returns the board row-major, one character per square and one
// line per row.
func (b *Board) Dump() string {
	var sb strings.Builder
	sb.Grow(Dim*Dim + Dim)
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			sb.WriteRune(b.squares[r][c].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Layout is Dump without the line breaks.
func (b *Board) Layout() string {
	return strings.ReplaceAll(b.Dump(), "\n", "")
}
