package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -logfile /path/to/log.yaml",
			&shellcmd{"autoplay", nil, map[string]string{"logfile": "/path/to/log.yaml"}},
			nil},
		{"best 3",
			&shellcmd{"best", []string{"3"}, map[string]string{}},
			nil},
		{"autoplay -games 10 -depth1 2 ",
			&shellcmd{"autoplay", nil,
				map[string]string{"games": "10", "depth1": "2"}},
			nil,
		},
		{"play c3-d4",
			&shellcmd{"play", []string{"c3-d4"}, map[string]string{}},
			nil},
		{"autoplay -games",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController() (*ShellController, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigSearchDepth, 1)
	cfg.Set(config.ConfigSeed, 99)
	out := &bytes.Buffer{}
	return newController(cfg, out), out
}

func run(sc *ShellController, line string) (*Response, error) {
	sig := make(chan os.Signal, 1)
	return sc.standardModeSwitch(line, sig)
}

func TestPlayAndUndo(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()

	resp, err := run(sc, "play b6-a5")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Last move: b6-a5"))
	is.True(strings.Contains(resp.message, "black (x)"))
	is.Equal(sc.game.PlayerOnTurn(), board.Black)

	// A bare path is a play too.
	_, err = run(sc, "c3-d4")
	is.NoErr(err)
	is.Equal(sc.game.Turn(), 2)

	_, err = run(sc, "undo")
	is.NoErr(err)
	is.Equal(sc.game.Turn(), 1)
	_, err = run(sc, "undo")
	is.NoErr(err)
	_, err = run(sc, "undo")
	is.True(err != nil)
}

func TestIllegalPlay(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	_, err := run(sc, "play a7-b6")
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "occupied"))
	_, err = run(sc, "play z9-a1")
	is.True(err != nil)
	is.Equal(sc.game.Turn(), 0)
}

func TestMovesAndPlayByNumber(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	resp, err := run(sc, "moves")
	is.NoErr(err)
	is.Equal(len(sc.curPlays), 7)
	is.True(strings.Contains(resp.message, "b6-a5"))

	want := sc.curPlays[2].ShortDescription()
	_, err = run(sc, "play #3")
	is.NoErr(err)
	last, _ := sc.game.LastTurn()
	is.Equal(last.String(), want)

	_, err = run(sc, "play #3")
	is.True(err != nil)
}

func TestBestRemembersDepth(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	resp, err := run(sc, "best 2")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Engine plays "))
	is.Equal(sc.options.Depth(board.White), 2)
	is.Equal(sc.options.Depth(board.Black), 1)
	is.Equal(sc.game.PlayerOnTurn(), board.Black)

	_, err = run(sc, "best -1")
	is.True(err != nil)
}

func TestAuto(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	_, err := run(sc, "auto 4")
	is.NoErr(err)
	is.Equal(sc.game.Turn(), 4)
}

func TestAutoStopsAtTurnCap(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	sc.config.Set(config.ConfigAutoplayMaxTurns, 6)
	resp, err := run(sc, "auto")
	is.NoErr(err)
	is.Equal(sc.game.Turn(), 6)
	is.True(strings.Contains(resp.message, "Stopped after 6 turns"))
}

func TestAutoPlaysToGameOver(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	layout := strings.Join(strings.Fields(string(board.SingleJump)), "")
	_, err := run(sc, "position "+layout+" white")
	is.NoErr(err)

	// c5-e3 takes black's last piece.
	resp, err := run(sc, "auto")
	is.NoErr(err)
	is.Equal(sc.game.Turn(), 1)
	last, _ := sc.game.LastTurn()
	is.Equal(last.String(), "c5-e3")
	is.True(strings.Contains(resp.message, "Game over"))
	is.True(!strings.Contains(resp.message, "Stopped"))
}

func TestEmptyLinePlaysBest(t *testing.T) {
	is := is.New(t)
	sc, out := testController()
	sig := make(chan os.Signal, 1)
	sc.Execute(sig, "")
	is.Equal(sc.game.Turn(), 1)
	is.True(strings.Contains(out.String(), "Engine plays"))
	sc.Execute(sig, "   ")
	is.Equal(sc.game.Turn(), 2)
}

func TestSetOnlyReseedsForSeed(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	rng := sc.rng
	_, err := run(sc, "set threads 2")
	is.NoErr(err)
	is.True(sc.rng == rng)
	_, err = run(sc, "set depth1 3")
	is.NoErr(err)
	is.True(sc.rng == rng)

	_, err = run(sc, "set seed 5")
	is.NoErr(err)
	is.True(sc.rng != rng)
}

func TestPositionAndGameOver(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	layout := strings.Join(strings.Fields(string(board.BlackStuck)), "")
	resp, err := run(sc, "position "+layout+" black")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Game over"))

	_, err = run(sc, "best")
	is.True(err != nil)

	_, err = run(sc, "position ooo")
	is.True(err != nil)
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	resp, err := run(sc, "set")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "depth1: 1"))

	_, err = run(sc, "set depth2 3")
	is.NoErr(err)
	is.Equal(sc.options.Depth(board.Black), 3)

	_, err = run(sc, "set threads 0")
	is.True(err != nil)
	_, err = run(sc, "set bogus 1")
	is.True(err != nil)
}

func TestScoreAndHelp(t *testing.T) {
	is := is.New(t)
	sc, _ := testController()
	resp, err := run(sc, "score")
	is.NoErr(err)
	is.Equal(resp.message, "Score for white (o): 0")

	resp, err = run(sc, "help")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "autoplay"))
	_, err = run(sc, "help best")
	is.NoErr(err)
	_, err = run(sc, "help nothing")
	is.True(err != nil)

	_, err = run(sc, "frobnicate")
	is.True(err != nil)
}

func TestAutoplayCommand(t *testing.T) {
	is := is.New(t)
	sc, out := testController()
	sc.config.Set(config.ConfigAutoplayMaxTurns, 40)
	logfile := filepath.Join(t.TempDir(), "cvc.yaml")
	resp, err := run(sc, "autoplay -games 2 -threads 2 -depth1 1 -depth2 0 -logfile "+logfile)
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Games played: 2"))
	is.True(strings.Contains(out.String(), "Playing 2 games"))
	_, err = os.Stat(logfile)
	is.NoErr(err)
}

func TestExecute(t *testing.T) {
	is := is.New(t)
	sc, out := testController()
	sig := make(chan os.Signal, 1)
	sc.Execute(sig, "show")
	is.True(strings.Contains(out.String(), "Turn 1: white (o)"))
	sc.Execute(sig, "exit")
	is.Equal(len(sig), 1)
}
