package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/config"
	"github.com/domino14/checkers/game"
	"github.com/domino14/checkers/move"
	"github.com/domino14/checkers/movegen"
	"github.com/domino14/checkers/negamax"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
)

type ShellController struct {
	l       *readline.Instance
	config  *config.Config
	options *ShellOptions
	out     io.Writer

	game   *game.Game
	gen    movegen.MoveGenerator
	solver *negamax.Solver
	rng    *frand.RNG

	curPlays []*move.Move
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcheckers>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg, l.Stderr())
	sc.l = l
	return sc
}

// newController sets up everything but the terminal.
func newController(cfg *config.Config, out io.Writer) *ShellController {
	sc := &ShellController{
		config:  cfg,
		options: NewShellOptions(cfg),
		out:     out,
		gen:     movegen.NewGenerator(),
		game:    game.NewGame(),
		solver:  &negamax.Solver{},
	}
	sc.solver.Init(sc.gen, sc.game)
	sc.applyOptions()
	sc.reseed()
	return sc
}

// applyOptions pushes the current options into the solver.
func (sc *ShellController) applyOptions() {
	sc.solver.SetThreads(sc.options.threads)
}

// reseed restarts the tie-break stream from the seed option, or from a
// random seed if it is 0.
func (sc *ShellController) reseed() {
	if sc.options.seed == 0 {
		sc.rng = frand.New()
	} else {
		sc.rng = frand.NewCustom(seedBytes(sc.options.seed), 1024, 12)
	}
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// extractFields splits a line into the command, its positional
// arguments and its -option value pairs.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit":
		sig <- syscall.SIGINT
		return nil, errors.New("sending quit signal")
	case "help":
		return sc.help(cmd)
	case "new", "n":
		return sc.newGame(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "moves", "gen":
		return sc.moves(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "best":
		return sc.best(cmd)
	case "auto":
		return sc.auto(cmd)
	case "undo":
		return sc.undo(cmd)
	case "score":
		return sc.score(cmd)
	case "position":
		return sc.position(cmd)
	case "set":
		return sc.set(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	default:
		// A bare path like c3-d4 plays that move.
		if _, perr := move.ParsePath(cmd.cmd); perr == nil && len(cmd.args) == 0 {
			return sc.commitPath(cmd.cmd)
		}
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

// Execute runs a single line, as if typed at the prompt. An empty line
// lets the engine move at the remembered depth.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if strings.TrimSpace(line) == "" {
		line = "best"
	}
	resp, err := sc.standardModeSwitch(line, sig)
	if err != nil {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	sc.showMessage(sc.game.ToDisplayText())

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if line == "exit" {
			sig <- syscall.SIGINT
			break
		}
		sc.Execute(sig, line)
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	log.Info().Msg("cleaning up shell")
}

func sideFromString(s string) (board.Side, error) {
	switch strings.ToLower(s) {
	case "white", "w", "o":
		return board.White, nil
	case "black", "b", "x":
		return board.Black, nil
	}
	return board.White, fmt.Errorf("unknown side %q", s)
}
