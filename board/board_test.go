package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestStandardBoard(t *testing.T) {
	is := is.New(t)
	b := NewStandardBoard()
	is.Equal(b.PieceCount(White), 12)
	is.Equal(b.PieceCount(Black), 12)
	is.Equal(b.Layout(), StandardLayout)

	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			p := b.Get(Coord{r, c})
			if !p.IsEmpty() {
				is.True(IsDarkSquare(Coord{r, c}))
			}
			switch {
			case r < 3 && IsDarkSquare(Coord{r, c}):
				is.Equal(p, WhiteMan)
			case r > 4 && IsDarkSquare(Coord{r, c}):
				is.Equal(p, BlackMan)
			default:
				is.Equal(p, Empty)
			}
		}
	}
}

func TestDump(t *testing.T) {
	is := is.New(t)
	b := NewStandardBoard()
	lines := strings.Split(strings.TrimSuffix(b.Dump(), "\n"), "\n")
	is.Equal(len(lines), Dim)
	is.Equal(lines[0], ".o.o.o.o")
	is.Equal(lines[7], "x.x.x.x.")

	// Dump output loads back into the same board.
	b2, err := FromLayout(b.Dump())
	is.NoErr(err)
	is.True(b.Equals(b2))
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	b := NewStandardBoard()
	c := b.Copy()
	c.Set(Coord{0, 1}, Empty)
	is.Equal(b.Get(Coord{0, 1}), WhiteMan)
	is.Equal(c.Get(Coord{0, 1}), Empty)

	b.CopyFrom(c)
	is.True(b.Equals(c))
}

func TestBadLayouts(t *testing.T) {
	is := is.New(t)
	_, err := FromLayout("....")
	is.True(errors.Is(err, ErrBadLayout))

	_, err = FromLayout(strings.Repeat("q", 64))
	is.True(errors.Is(err, ErrUnknownPiece))
}

func TestPiecePredicates(t *testing.T) {
	is := is.New(t)
	is.True(WhiteMan.IsWhite())
	is.True(!WhiteMan.IsKing())
	is.True(WhiteKing.IsKing())
	is.True(BlackKing.IsBlack())
	is.Equal(WhiteMan.Promoted(), WhiteKing)
	is.Equal(BlackMan.Promoted(), BlackKing)
	is.Equal(BlackKing.Promoted(), BlackKing)
	is.True(!Empty.BelongsTo(White))
	is.True(!Empty.BelongsTo(Black))
	is.True(BlackMan.BelongsTo(Black))
	is.Equal(White.Forward(), 1)
	is.Equal(Black.Forward(), -1)
	is.Equal(White.PromotionRow(), 7)
	is.Equal(Black.PromotionRow(), 0)
}

func TestCoordNotation(t *testing.T) {
	is := is.New(t)
	is.Equal(Coord{0, 0}.String(), "a8")
	is.Equal(Coord{7, 7}.String(), "h1")
	is.Equal(Coord{5, 2}.String(), "c3")

	c, err := ParseCoord("c3")
	is.NoErr(err)
	is.Equal(c, Coord{5, 2})

	c, err = ParseCoord("H1")
	is.NoErr(err)
	is.Equal(c, Coord{7, 7})

	_, err = ParseCoord("c")
	is.True(errors.Is(err, ErrBadNotation))
	_, err = ParseCoord("3c")
	is.True(errors.Is(err, ErrBadNotation))
}

func TestTestPositions(t *testing.T) {
	is := is.New(t)
	b := &Board{}
	for _, p := range []TestPosition{SingleJump, DoubleJump, PromotionChain, BlackStuck} {
		b.SetToTestPosition(p)
		is.True(b.PieceCount(White) > 0)
	}
	is.True(strings.Contains(b.ToDisplayText(), "8 |"))
}
