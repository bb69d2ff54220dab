package automatic

// Computer vs computer games, many at a time.

import (
	"context"
	"errors"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/domino14/checkers/config"
)

var (
	CVCCounter atomic.Int64
	IsPlaying  atomic.Int64
)

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

// CompVCompOptions are the per-run settings for StartCompVComp.
type CompVCompOptions struct {
	NumGames   int
	Threads    int
	WhiteDepth int
	BlackDepth int
	// LogFile gets one YAML document per game. Empty means no log.
	LogFile string
}

// OptionsFromConfig fills CompVCompOptions from the autoplay settings.
func OptionsFromConfig(cfg *config.Config) CompVCompOptions {
	d := cfg.GetInt(config.ConfigSearchDepth)
	return CompVCompOptions{
		NumGames:   cfg.GetInt(config.ConfigAutoplayGames),
		Threads:    cfg.GetInt(config.ConfigAutoplayThreads),
		WhiteDepth: d,
		BlackDepth: d,
		LogFile:    cfg.GetString(config.ConfigAutoplayLogFile),
	}
}

// StartCompVComp plays opts.NumGames games, opts.Threads at a time, and
// waits for them all. Each game gets its own runner, so nothing is
// shared between goroutines but the log channel. With a nonzero seed in
// cfg, game i is seeded with seed+i and the whole run is reproducible.
func StartCompVComp(ctx context.Context, cfg *config.Config, opts CompVCompOptions) (*Summary, error) {
	if !IsPlaying.CompareAndSwap(0, 1) {
		return nil, ErrAlreadyPlaying
	}
	defer IsPlaying.Store(0)

	if opts.Threads < 1 {
		opts.Threads = 1
	}
	log.Debug().Int("games", opts.NumGames).Int("threads", opts.Threads).Msg("starting-cvc")
	CVCCounter.Store(0)

	logChan := make(chan GameLog, 100)
	writeDone := make(chan error, 1)
	go func() {
		writeDone <- writeLogs(opts.LogFile, logChan)
	}()

	seed := cfg.GetUint64(config.ConfigSeed)
	logs := make([]GameLog, opts.NumGames)
	played := make([]bool, opts.NumGames)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Threads)
gameLoop:
	for i := range opts.NumGames {
		select {
		case <-gctx.Done():
			log.Info().Msg("Got stop signal, exiting soon...")
			break gameLoop
		default:
		}
		g.Go(func() error {
			r := NewGameRunner(logChan, cfg)
			r.SetDepths(opts.WhiteDepth, opts.BlackDepth)
			if seed != 0 {
				r.Seed(seed + uint64(i))
			}
			gl, err := r.PlayGame(gctx)
			if err != nil {
				return err
			}
			logs[i] = gl
			played[i] = true
			n := CVCCounter.Add(1)
			if n%100 == 0 {
				log.Info().Int64("games", n).Msg("cvc-progress")
			}
			return nil
		})
	}
	err := g.Wait()
	close(logChan)
	werr := <-writeDone
	if err != nil {
		return nil, err
	}
	if werr != nil {
		return nil, werr
	}

	sum := &Summary{}
	for i := range logs {
		if played[i] {
			sum.Add(logs[i])
		}
	}
	log.Info().Int("games", sum.Games).Msg("All games finished.")
	return sum, nil
}

func writeLogs(filename string, logChan chan GameLog) error {
	if filename == "" {
		for range logChan {
		}
		return nil
	}
	f, err := os.Create(filename)
	if err != nil {
		for range logChan {
		}
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	var encErr error
	for gl := range logChan {
		if encErr != nil {
			continue
		}
		encErr = enc.Encode(gl)
	}
	if encErr != nil {
		return encErr
	}
	log.Info().Str("file", filename).Msg("wrote-game-log")
	return enc.Close()
}
