package board

import "fmt"

// Dim is the number of rows and columns on a checkers board.
const Dim = 8

// A Piece is the content of a single square.
type Piece uint8

const (
	Empty Piece = iota
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing
)

// These are the display characters for each piece. Capital letters are kings.
const (
	EmptyRune     = '.'
	WhiteManRune  = 'o'
	WhiteKingRune = 'O'
	BlackManRune  = 'x'
	BlackKingRune = 'X'
)

func (p Piece) IsEmpty() bool {
	return p == Empty
}

func (p Piece) IsWhite() bool {
	return p == WhiteMan || p == WhiteKing
}

func (p Piece) IsBlack() bool {
	return p == BlackMan || p == BlackKing
}

func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

// Color returns the side the piece belongs to. It must not be called on
// an empty square.
func (p Piece) Color() Side {
	if p.IsWhite() {
		return White
	}
	return Black
}

// BelongsTo is true if the square holds a piece of the given side.
func (p Piece) BelongsTo(s Side) bool {
	if p.IsEmpty() {
		return false
	}
	return p.Color() == s
}

// Promoted returns the king version of a man. Kings and empty squares
// are returned unchanged.
func (p Piece) Promoted() Piece {
	switch p {
	case WhiteMan:
		return WhiteKing
	case BlackMan:
		return BlackKing
	}
	return p
}

// Rune returns the display character for the piece.
func (p Piece) Rune() rune {
	switch p {
	case Empty:
		return EmptyRune
	case WhiteMan:
		return WhiteManRune
	case WhiteKing:
		return WhiteKingRune
	case BlackMan:
		return BlackManRune
	case BlackKing:
		return BlackKingRune
	}
	return '?'
}

func (p Piece) String() string {
	return string(p.Rune())
}

// PieceFromRune is the inverse of Rune.
func PieceFromRune(r rune) (Piece, error) {
	switch r {
	case EmptyRune:
		return Empty, nil
	case WhiteManRune:
		return WhiteMan, nil
	case WhiteKingRune:
		return WhiteKing, nil
	case BlackManRune:
		return BlackMan, nil
	case BlackKingRune:
		return BlackKing, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownPiece, r)
}

// Side is a player color. White moves first.
type Side bool

const (
	White Side = true
	Black Side = false
)

func (s Side) Opponent() Side {
	return !s
}

// Forward is the row delta of a man of this color. White men move towards
// increasing rows; black men towards decreasing rows.
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// PromotionRow is the far row for this color's men.
func (s Side) PromotionRow() int {
	if s == White {
		return Dim - 1
	}
	return 0
}

func (s Side) String() string {
	if s == White {
		return "white (o)"
	}
	return "black (x)"
}

// Coord is a (row, col) pair. Row 0 is rank 8 and col 0 is file a.
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Dim && c.Col >= 0 && c.Col < Dim
}

// IsFarRow is true if the coordinate is on either color's promotion row.
func (c Coord) IsFarRow() bool {
	return c.Row == 0 || c.Row == Dim-1
}

// Add offsets the coordinate; the result may be out of bounds.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Midpoint is the square jumped over between two coordinates two
// diagonal steps apart.
func Midpoint(a, b Coord) Coord {
	return Coord{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

// String gives the user-visible notation of the square, e.g. c3.
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%c", 'a'+c.Col, '8'-c.Row)
}

// ParseCoord parses notation like "c3" into a coordinate. It does not
// check that the coordinate is on the board.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'z' || rank < '0' || rank > '9' {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	return Coord{Row: int('8') - int(rank), Col: int(file) - int('a')}, nil
}
