package automatic

import (
	"fmt"
	"math"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary tallies the results of a computer vs computer run.
type Summary struct {
	Games     int
	WhiteWins int
	BlackWins int
	Draws     int
	turns     []float64
}

func (s *Summary) Add(gl GameLog) {
	s.Games++
	switch gl.Outcome {
	case WhiteWins:
		s.WhiteWins++
	case BlackWins:
		s.BlackWins++
	default:
		s.Draws++
	}
	s.turns = append(s.turns, float64(gl.Turns))
}

// TurnStats is the mean and standard deviation of game length in turns.
func (s *Summary) TurnStats() (float64, float64) {
	if len(s.turns) == 0 {
		return 0, 0
	}
	mean, std := stat.MeanStdDev(s.turns, nil)
	if len(s.turns) == 1 {
		std = 0
	}
	return mean, std
}

// WhiteScore is white's points per game, counting a draw as half a
// point, with the error margin at the given confidence (0-100).
func (s *Summary) WhiteScore(confidence float64) (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	n := float64(s.Games)
	p := (float64(s.WhiteWins) + float64(s.Draws)/2) / n
	return p, zVal(confidence) * math.Sqrt(p*(1-p)/n)
}

// zVal returns the two-tailed Z-value for a confidence interval from 0
// to 100 percent.
func zVal(confidence float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidence/100) / 2)
}

func (s *Summary) String() string {
	var ss strings.Builder
	fmt.Fprintf(&ss, "Games played: %d\n", s.Games)
	fmt.Fprintf(&ss, "White wins: %d  Black wins: %d  Draws: %d\n", s.WhiteWins, s.BlackWins, s.Draws)
	if s.Games == 0 {
		return ss.String()
	}
	p, margin := s.WhiteScore(95)
	fmt.Fprintf(&ss, "White score: %.3f ± %.3f (95%%)\n", p, margin)
	mean, std := s.TurnStats()
	fmt.Fprintf(&ss, "Game length: %.1f ± %.1f turns\n", mean, std)
	ss.WriteString("\n### Game length histogram\n")
	if floats.Min(s.turns) == floats.Max(s.turns) {
		fmt.Fprintf(&ss, "every game lasted %.0f turns\n", s.turns[0])
		return ss.String()
	}
	bins := 10
	if s.Games < bins {
		bins = s.Games
	}
	if err := histogram.Fprint(&ss, histogram.Hist(bins, s.turns), histogram.Linear(40)); err != nil {
		fmt.Fprintf(&ss, "(no histogram: %v)\n", err)
	}
	return ss.String()
}
