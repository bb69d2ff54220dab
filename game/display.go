package game

import (
	"fmt"
	"strings"
)

// ToDisplayText turns the current state of the game into a displayable
// string.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(g.board.ToDisplayText())
	if t, ok := g.LastTurn(); ok {
		sb.WriteString(fmt.Sprintf("Last move: %s (%s)\n", t, t.Side))
	}
	sb.WriteString(fmt.Sprintf("Turn %d: %s  Score: %d", g.turnnum+1, g.onturn, g.Score()))
	if reps := g.RepetitionCount(); reps > 1 {
		sb.WriteString(fmt.Sprintf("  (position seen %d times)", reps))
	}
	sb.WriteString("\n")
	return sb.String()
}
