package move

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/checkers/board"
)

var ErrPathTooShort = errors.New("a move needs a start square and at least one landing square")

// Path is a start square followed by one or more landing squares.
type Path []board.Coord

// String renders the path in notation, e.g. c3-e5-g7.
func (p Path) String() string {
	return strings.Join(lo.Map(p, func(c board.Coord, _ int) string {
		return c.String()
	}), "-")
}

func (p Path) Start() board.Coord {
	return p[0]
}

func (p Path) Last() board.Coord {
	return p[len(p)-1]
}

// Extend returns a new path with c appended. The receiver is never
// modified, so sibling branches can extend the same prefix.
func (p Path) Extend(c board.Coord) Path {
	np := make(Path, len(p), len(p)+1)
	copy(np, p)
	return append(np, c)
}

// ParsePath parses notation like c3-d4 or c3-e5-g7.
func ParsePath(s string) (Path, error) {
	fields := strings.Split(strings.TrimSpace(s), "-")
	if len(fields) < 2 {
		return nil, ErrPathTooShort
	}
	p := make(Path, 0, len(fields))
	for _, f := range fields {
		c, err := board.ParseCoord(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// Move is a candidate move: a path, the piece that moves, the pieces it
// captures (one per jump, in order), and a heuristic score for making it.
type Move struct {
	path     Path
	piece    board.Piece
	captures []board.Piece
	score    int
}

func NewMove(path Path, piece board.Piece, captures []board.Piece, score int) *Move {
	return &Move{path: path, piece: piece, captures: captures, score: score}
}

func (m *Move) Path() Path {
	return m.path
}

func (m *Move) Piece() board.Piece {
	return m.piece
}

func (m *Move) Captures() []board.Piece {
	return m.captures
}

func (m *Move) IsCapture() bool {
	return len(m.captures) > 0
}

func (m *Move) Score() int {
	return m.score
}

// ShortDescription is the move in notation, for display.
func (m *Move) ShortDescription() string {
	return m.path.String()
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%s piece: %s captures: %d score: %d>",
		m.path, m.piece, len(m.captures), m.score)
}
