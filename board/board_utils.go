package board

import (
	"fmt"
	"strings"
)

// ToDisplayText frames the board dump with rank and file labels.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	files := "   "
	for i := 0; i < Dim; i++ {
		files += fmt.Sprintf("%c ", 'a'+i)
	}
	str.WriteString(files + "\n")
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	for r := 0; r < Dim; r++ {
		row := fmt.Sprintf("%d |", Dim-r)
		for c := 0; c < Dim; c++ {
			row += string(b.squares[r][c].Rune()) + " "
		}
		str.WriteString(strings.TrimRight(row, " ") + "|\n")
	}
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return "\n" + str.String()
}

// IsDarkSquare is true for the squares pieces are placed on.
func IsDarkSquare(c Coord) bool {
	return (c.Row+c.Col)%2 == 1
}
