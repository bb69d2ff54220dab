package negamax

import "github.com/domino14/checkers/move"

func mustPath(s string) move.Path {
	p, err := move.ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}
