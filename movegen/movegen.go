// Package movegen contains the move-generating functions. Every candidate
// it emits is a path the validator in package game accepts.
package movegen

import (
	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/equity"
	"github.com/domino14/checkers/game"
	"github.com/domino14/checkers/move"
)

// PromotionBonus is added to the score of any move ending on row 0 or 7.
const PromotionBonus = 2

type direction struct {
	dr, dc int
}

var kingDirections = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

var manDirections = map[board.Side][]direction{
	board.White: {{1, -1}, {1, 1}},
	board.Black: {{-1, -1}, {-1, 1}},
}

func directions(p board.Piece) []direction {
	if p.IsKing() {
		return kingDirections
	}
	return manDirections[p.Color()]
}

// Generator generates every legal candidate for one side. Capture is not
// mandatory, so a plain step and every prefix of a jump chain are all
// candidates. A Generator keeps no per-call state and can be shared
// between goroutines.
type Generator struct {
	calculator equity.EquityCalculator
}

func NewGenerator() *Generator {
	return NewGeneratorWithCalculator(equity.MaterialCalculator{})
}

func NewGeneratorWithCalculator(calc equity.EquityCalculator) *Generator {
	return &Generator{calculator: calc}
}

// GenAll returns a new slice with all of side's candidates, scanning the
// board in row-major order. The board is not modified.
func (gen *Generator) GenAll(b *board.Board, side board.Side) []*move.Move {
	plays := make([]*move.Move, 0, 16)
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			from := board.Coord{Row: r, Col: c}
			piece := b.Get(from)
			if !piece.BelongsTo(side) {
				continue
			}
			plays = gen.genFrom(plays, b, side, from, piece)
		}
	}
	return plays
}

func (gen *Generator) genFrom(plays []*move.Move, b *board.Board, side board.Side,
	from board.Coord, piece board.Piece) []*move.Move {

	for _, d := range directions(piece) {
		step := move.Path{from, from.Add(d.dr, d.dc)}
		if game.IsLegal(step, b, side) {
			plays = append(plays, move.NewMove(step, piece, nil,
				stepScore(step.Last())))
		}
		jump := move.Path{from, from.Add(2*d.dr, 2*d.dc)}
		if game.IsLegal(jump, b, side) {
			plays = gen.genJumps(plays, b, side, piece, piece, jump, nil, 0)
		}
	}
	return plays
}

// genJumps records the legal chain in path and tries to extend it by one
// more jump. state is the piece as it stands on the landing square before
// this leg; captured and value cover the legs before it.
func (gen *Generator) genJumps(plays []*move.Move, b *board.Board, side board.Side,
	piece, state board.Piece, path move.Path, captured []board.Piece, value int) []*move.Move {

	to := path.Last()
	mid := board.Midpoint(path[len(path)-2], to)
	cp := b.Get(mid)

	captures := make([]board.Piece, len(captured), len(captured)+1)
	copy(captures, captured)
	captures = append(captures, cp)
	value += gen.calculator.PieceValue(cp, mid.Row)

	// The bonus is added on top of the captured material, and depends only
	// on where the chain ends; it is never derived from value+row.
	score := value
	if to.IsFarRow() {
		score += PromotionBonus
		state = state.Promoted()
	}
	plays = append(plays, move.NewMove(path, piece, captures, score))

	for _, d := range directions(state) {
		ext := path.Extend(to.Add(2*d.dr, 2*d.dc))
		if game.IsLegal(ext, b, side) {
			plays = gen.genJumps(plays, b, side, piece, state, ext, captures, value)
		}
	}
	return plays
}

// stepScore is the promotion bonus for landing on row 0 or 7. It applies
// to kings too, and to either side's far row: the test is on the row
// alone, not on the row the piece is heading for.
func stepScore(to board.Coord) int {
	if to.IsFarRow() {
		return PromotionBonus
	}
	return 0
}
