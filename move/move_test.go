package move

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/checkers/board"
)

func TestParsePath(t *testing.T) {
	type testcase struct {
		in   string
		want Path
	}
	for _, tc := range []testcase{
		{"c3-d4", Path{{Row: 5, Col: 2}, {Row: 4, Col: 3}}},
		{"c3-e5-g7", Path{{Row: 5, Col: 2}, {Row: 3, Col: 4}, {Row: 1, Col: 6}}},
		{" a1-b2 ", Path{{Row: 7, Col: 0}, {Row: 6, Col: 1}}},
	} {
		p, err := ParsePath(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, p)
	}
}

func TestParsePathErrors(t *testing.T) {
	_, err := ParsePath("c3")
	assert.ErrorIs(t, err, ErrPathTooShort)

	_, err = ParsePath("c3-zz9x")
	assert.ErrorIs(t, err, board.ErrBadNotation)

	_, err = ParsePath("c3-")
	assert.ErrorIs(t, err, board.ErrBadNotation)
}

func TestPathRoundTrip(t *testing.T) {
	for _, s := range []string{"c3-d4", "c3-e5-g7", "h2-g1", "b6-d8-f6-h8"} {
		p, err := ParsePath(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
}

func TestExtendDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = board.Coord{Row: 2, Col: 1}
	a := base.Extend(board.Coord{Row: 3, Col: 0})
	b := base.Extend(board.Coord{Row: 3, Col: 2})
	assert.Equal(t, "a5", a.Last().String())
	assert.Equal(t, "c5", b.Last().String())
	assert.Len(t, base, 1)
}

func TestMoveAccessors(t *testing.T) {
	p, err := ParsePath("c5-e3")
	require.NoError(t, err)
	m := NewMove(p, board.WhiteMan, []board.Piece{board.BlackMan}, 1)
	assert.True(t, m.IsCapture())
	assert.Equal(t, "c5-e3", m.ShortDescription())
	assert.Equal(t, 1, m.Score())
	assert.Equal(t, board.WhiteMan, m.Piece())

	step := NewMove(Path{{Row: 2, Col: 1}, {Row: 3, Col: 0}}, board.WhiteMan, nil, 0)
	assert.False(t, step.IsCapture())
}
