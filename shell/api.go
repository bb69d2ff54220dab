package shell

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/checkers/automatic"
	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/config"
	"github.com/domino14/checkers/move"
	"github.com/domino14/checkers/negamax"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func seedBytes(seed uint64) []byte {
	b := make([]byte, 32)
	binary.LittleEndian.PutUint64(b, seed)
	return b
}

func moveTableHeader() string {
	return "     Move                Captures  Score"
}

func MoveTableRow(idx int, m *move.Move) string {
	return fmt.Sprintf("%3d: %-20s%-10d%-6d", idx+1,
		m.ShortDescription(), len(m.Captures()), m.Score())
}

// turnText is shown after every committed turn.
func (sc *ShellController) turnText() string {
	var ss strings.Builder
	ss.WriteString(sc.game.ToDisplayText())
	if len(sc.gen.GenAll(sc.game.Board(), sc.game.PlayerOnTurn())) == 0 {
		fmt.Fprintf(&ss, "Game over: %s has no legal moves, %s wins\n",
			sc.game.PlayerOnTurn(), sc.game.PlayerOnTurn().Opponent())
	}
	return ss.String()
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.game.SetPosition(board.NewStandardBoard(), board.White)
	sc.curPlays = nil
	return msg(sc.turnText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	sc.curPlays = sc.gen.GenAll(sc.game.Board(), sc.game.PlayerOnTurn())
	if len(sc.curPlays) == 0 {
		return msg(fmt.Sprintf("%s has no legal moves", sc.game.PlayerOnTurn())), nil
	}
	var ss strings.Builder
	ss.WriteString(moveTableHeader() + "\n")
	for i, p := range sc.curPlays {
		ss.WriteString(MoveTableRow(i, p) + "\n")
	}
	return msg(ss.String()), nil
}

// play takes either a path or #n, the nth move of the last `moves` list.
func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("play <path> or play #n, e.g. play c3-d4")
	}
	arg := cmd.args[0]
	if strings.HasPrefix(arg, "#") {
		idx, err := strconv.Atoi(arg[1:])
		if err != nil {
			return nil, err
		}
		if idx < 1 || idx > len(sc.curPlays) {
			return nil, errors.New("play outside range")
		}
		arg = sc.curPlays[idx-1].ShortDescription()
	}
	return sc.commitPath(arg)
}

func (sc *ShellController) commitPath(s string) (*Response, error) {
	path, err := move.ParsePath(s)
	if err != nil {
		return nil, err
	}
	_, err = sc.game.PlayMove(path)
	if err != nil {
		return nil, err
	}
	sc.curPlays = nil
	return msg(sc.turnText()), nil
}

// best asks the engine for a move and plays it. A depth given here is
// remembered for the side on turn.
func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	side := sc.game.PlayerOnTurn()
	if len(cmd.args) > 0 {
		d, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		if d < 0 {
			return nil, negamax.ErrInvalidDepth
		}
		sc.options.SetDepth(side, d)
	}
	m, err := sc.engineTurn()
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Engine plays %s\n%s", m.ShortDescription(), sc.turnText())), nil
}

func (sc *ShellController) engineTurn() (*move.Move, error) {
	side := sc.game.PlayerOnTurn()
	depth := sc.options.Depth(side)
	m, val, err := sc.solver.BestMove(sc.rng, depth)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("move", m.ShortDescription()).Int("value", val).
		Int("depth", depth).Msg("engine-move")
	_, err = sc.game.PlayMove(m.Path())
	if err != nil {
		return nil, err
	}
	sc.curPlays = nil
	return m, nil
}

// auto lets the engine play both sides, each side at its own remembered
// depth. auto N plays N turns. A bare auto plays on until the side to move
// is stuck, a position repeats too often, or autoplay-max-turns turns
// have been played.
func (sc *ShellController) auto(cmd *shellcmd) (*Response, error) {
	plies := sc.config.GetInt(config.ConfigAutoplayMaxTurns)
	toTheEnd := true
	if len(cmd.args) > 0 {
		var err error
		plies, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		toTheEnd = false
	}
	var played []string
	stopped := ""
	for len(played) < plies {
		if toTheEnd && sc.game.RepetitionCount() >= automatic.RepetitionLimit {
			stopped = "Stopped: position repeated"
			break
		}
		m, err := sc.engineTurn()
		if errors.Is(err, negamax.ErrNoLegalMoves) {
			break
		}
		if err != nil {
			return nil, err
		}
		played = append(played, m.ShortDescription())
	}
	if toTheEnd && stopped == "" && len(played) == plies {
		stopped = fmt.Sprintf("Stopped after %d turns", plies)
	}
	var ss strings.Builder
	fmt.Fprintf(&ss, "Engine played: %s\n", strings.Join(played, " "))
	if stopped != "" {
		ss.WriteString(stopped + "\n")
	}
	ss.WriteString(sc.turnText())
	return msg(ss.String()), nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	err := sc.game.UnplayLastMove()
	if err != nil {
		return nil, err
	}
	sc.curPlays = nil
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	side := sc.game.PlayerOnTurn()
	return msg(fmt.Sprintf("Score for %s: %d", side, sc.game.Score())), nil
}

// position sets up a 64-square layout, rows from rank 8 down to rank 1.
func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 1 || len(cmd.args) > 2 {
		return nil, errors.New("position <64-char layout> [white|black]")
	}
	b, err := board.FromLayout(cmd.args[0])
	if err != nil {
		return nil, err
	}
	side := board.White
	if len(cmd.args) == 2 {
		side, err = sideFromString(cmd.args[1])
		if err != nil {
			return nil, err
		}
	}
	sc.game.SetPosition(b, side)
	sc.curPlays = nil
	return msg(sc.turnText()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(sc.options.ToDisplayText()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		_, val := sc.options.Show(opt)
		return msg(val), nil
	}
	err := sc.options.Set(opt, cmd.args[1])
	if err != nil {
		return nil, err
	}
	sc.applyOptions()
	if opt == "seed" {
		sc.reseed()
	}
	_, val := sc.options.Show(opt)
	return msg("set " + opt + " to " + val), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	opts := automatic.OptionsFromConfig(sc.config)
	var err error
	if opts.NumGames, err = cmd.options.IntDefault("games", opts.NumGames); err != nil {
		return nil, err
	}
	if opts.Threads, err = cmd.options.IntDefault("threads", opts.Threads); err != nil {
		return nil, err
	}
	if opts.WhiteDepth, err = cmd.options.IntDefault("depth1", sc.options.depths[0]); err != nil {
		return nil, err
	}
	if opts.BlackDepth, err = cmd.options.IntDefault("depth2", sc.options.depths[1]); err != nil {
		return nil, err
	}
	if lf := cmd.options.String("logfile"); lf != "" {
		opts.LogFile = lf
	}
	if opts.WhiteDepth < 0 || opts.BlackDepth < 0 {
		return nil, negamax.ErrInvalidDepth
	}
	sc.showMessage(fmt.Sprintf("Playing %d games (depths %d and %d) on %d threads...",
		opts.NumGames, opts.WhiteDepth, opts.BlackDepth, opts.Threads))
	sum, err := automatic.StartCompVComp(context.Background(), sc.config, opts)
	if err != nil {
		return nil, err
	}
	out := sum.String()
	if opts.LogFile != "" {
		out += "Game log written to " + opts.LogFile + "\n"
	}
	return msg(out), nil
}
