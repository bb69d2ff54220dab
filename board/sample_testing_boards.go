package board

// This file contains some sample positions, used solely for testing.
// Row 0 (rank 8) is the first line of each layout.

// TestPosition is a named 64-square layout.
type TestPosition string

const (
	// SingleJump has a white man on c5 facing a lone black man on d4,
	// with e3 empty behind it.
	SingleJump TestPosition = `
........
........
........
..o.....
...x....
........
........
........`

	// DoubleJump lets the white man on b7 take c6 and then e4: b7-d5-f3.
	DoubleJump TestPosition = `
........
.o......
..x.....
........
....x...
........
........
........`

	// PromotionChain lets the white man on a5 take b4 and d2, crowning on
	// e1, and then continue backwards over f2 as a king: a5-c3-e1-g3.
	PromotionChain TestPosition = `
........
........
........
o.......
.x......
........
...x.x..
........`

	// BlackStuck leaves black's only man on a7 without a legal move.
	BlackStuck TestPosition = `
.o......
x.......
........
........
........
........
........
........`
)

// SetToTestPosition loads one of the sample positions.
func (b *Board) SetToTestPosition(p TestPosition) {
	err := b.SetFromLayout(string(p))
	if err != nil {
		panic(err)
	}
}
