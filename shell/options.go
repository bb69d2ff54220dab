package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/config"
)

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

// ShellOptions are the settings that can be changed with `set`.
type ShellOptions struct {
	// depths[0] is white's search depth, depths[1] is black's. `best N`
	// updates the depth of the side that asked.
	depths  [2]int
	threads int
	seed    uint64
}

func NewShellOptions(cfg *config.Config) *ShellOptions {
	d := cfg.GetInt(config.ConfigSearchDepth)
	return &ShellOptions{
		depths:  [2]int{d, d},
		threads: max(1, cfg.GetInt(config.ConfigSearchThreads)),
		seed:    cfg.GetUint64(config.ConfigSeed),
	}
}

func sideIdx(s board.Side) int {
	if s == board.White {
		return 0
	}
	return 1
}

func (opts *ShellOptions) Depth(s board.Side) int {
	return opts.depths[sideIdx(s)]
}

func (opts *ShellOptions) SetDepth(s board.Side, d int) {
	opts.depths[sideIdx(s)] = d
}

func (opts *ShellOptions) Show(key string) (bool, string) {
	switch key {
	case "depth1":
		return true, strconv.Itoa(opts.depths[0])
	case "depth2":
		return true, strconv.Itoa(opts.depths[1])
	case "threads":
		return true, strconv.Itoa(opts.threads)
	case "seed":
		return true, strconv.FormatUint(opts.seed, 10)
	default:
		return false, "No such option: " + key
	}
}

func (opts *ShellOptions) Set(key, value string) error {
	switch key {
	case "depth1", "depth2":
		d, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		if d < 0 {
			return errors.New("depth cannot be negative")
		}
		if key == "depth1" {
			opts.depths[0] = d
		} else {
			opts.depths[1] = d
		}
	case "threads":
		t, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		if t < 1 {
			return errors.New("threads must be at least 1")
		}
		opts.threads = t
	case "seed":
		s, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		opts.seed = s
	default:
		return fmt.Errorf("no such option: %v", key)
	}
	return nil
}

func (opts *ShellOptions) ToDisplayText() string {
	keys := []string{"depth1", "depth2", "threads", "seed"}
	out := strings.Builder{}
	out.WriteString("Settings:\n")
	for _, key := range keys {
		_, val := opts.Show(key)
		out.WriteString("  " + key + ": ")
		out.WriteString(val + "\n")
	}
	return out.String()
}
