// Package automatic plays the engine against itself: computer vs
// computer games, played one at a time or many in parallel, with a log
// and a summary of the results.
package automatic

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/config"
	"github.com/domino14/checkers/game"
	"github.com/domino14/checkers/move"
	"github.com/domino14/checkers/movegen"
	"github.com/domino14/checkers/negamax"
)

// A position seen this many times ends the game in a draw.
const RepetitionLimit = 3

type Outcome string

const (
	WhiteWins Outcome = "white"
	BlackWins Outcome = "black"
	Draw      Outcome = "draw"
)

func winnerOutcome(s board.Side) Outcome {
	if s == board.White {
		return WhiteWins
	}
	return BlackWins
}

// GameLog is what gets written for each finished game.
type GameLog struct {
	ID          string   `yaml:"id"`
	WhiteDepth  int      `yaml:"white_depth"`
	BlackDepth  int      `yaml:"black_depth"`
	Outcome     Outcome  `yaml:"outcome"`
	Reason      string   `yaml:"reason"`
	Turns       int      `yaml:"turns"`
	Moves       []string `yaml:"moves"`
	FinalLayout string   `yaml:"final_layout"`
	WhiteScore  int      `yaml:"white_score"`
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game     *game.Game
	movegen  movegen.MoveGenerator
	solver   *negamax.Solver
	rng      *frand.RNG
	depths   [2]int
	maxTurns int
	logchan  chan GameLog
}

// NewGameRunner just instantiates and initializes a game runner. Both
// sides search cfg's search depth until SetDepths says otherwise.
func NewGameRunner(logchan chan GameLog, cfg *config.Config) *GameRunner {
	r := &GameRunner{logchan: logchan, maxTurns: cfg.GetInt(config.ConfigAutoplayMaxTurns)}
	d := cfg.GetInt(config.ConfigSearchDepth)
	r.depths = [2]int{d, d}
	r.movegen = movegen.NewGenerator()
	r.game = game.NewGame()
	r.solver = &negamax.Solver{}
	r.solver.Init(r.movegen, r.game)
	r.solver.SetThreads(cfg.GetInt(config.ConfigSearchThreads))
	r.rng = frand.New()
	return r
}

func sideIdx(s board.Side) int {
	if s == board.White {
		return 0
	}
	return 1
}

func (r *GameRunner) SetDepths(white, black int) {
	r.depths = [2]int{white, black}
}

func (r *GameRunner) SetMaxTurns(n int) {
	r.maxTurns = n
}

// Seed makes the runner's games reproducible.
func (r *GameRunner) Seed(seed uint64) {
	r.rng = frand.NewCustom(seedBytes(seed), 1024, 12)
}

func seedBytes(seed uint64) []byte {
	b := make([]byte, 32)
	binary.LittleEndian.PutUint64(b, seed)
	return b
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// StartGame resets to the starting position.
func (r *GameRunner) StartGame() {
	r.game.SetPosition(board.NewStandardBoard(), board.White)
}

// PlayBestTurn searches for the side on turn and plays the move found.
// It returns negamax.ErrNoLegalMoves if that side is stuck.
func (r *GameRunner) PlayBestTurn() (*move.Move, error) {
	side := r.game.PlayerOnTurn()
	m, _, err := r.solver.BestMove(r.rng, r.depths[sideIdx(side)])
	if err != nil {
		return nil, err
	}
	_, err = r.game.PlayMove(m.Path())
	if err != nil {
		return nil, err
	}
	return m, nil
}

// PlayGame plays a game to the end from the starting position. A side
// with no legal move loses; the game is drawn after maxTurns turns or
// when a position comes up RepetitionLimit times.
func (r *GameRunner) PlayGame(ctx context.Context) (GameLog, error) {
	r.StartGame()
	gl := GameLog{
		ID:         uuid.NewString(),
		WhiteDepth: r.depths[0],
		BlackDepth: r.depths[1],
	}
	for {
		if ctx.Err() != nil {
			return gl, ctx.Err()
		}
		if r.game.Turn() >= r.maxTurns {
			gl.Outcome, gl.Reason = Draw, "turn limit"
			break
		}
		if r.game.RepetitionCount() >= RepetitionLimit {
			gl.Outcome, gl.Reason = Draw, "repetition"
			break
		}
		m, err := r.PlayBestTurn()
		if errors.Is(err, negamax.ErrNoLegalMoves) {
			gl.Outcome = winnerOutcome(r.game.PlayerOnTurn().Opponent())
			gl.Reason = "no legal moves"
			break
		}
		if err != nil {
			return gl, err
		}
		gl.Moves = append(gl.Moves, m.ShortDescription())
	}
	gl.Turns = r.game.Turn()
	gl.FinalLayout = r.game.Board().Layout()
	gl.WhiteScore = r.whiteScore()
	log.Debug().Str("id", gl.ID).Str("outcome", string(gl.Outcome)).
		Str("reason", gl.Reason).Int("turns", gl.Turns).Msg("game-over")
	if r.logchan != nil {
		r.logchan <- gl
	}
	return gl, nil
}

func (r *GameRunner) whiteScore() int {
	s := r.game.Score()
	if r.game.PlayerOnTurn() == board.Black {
		return -s
	}
	return s
}
