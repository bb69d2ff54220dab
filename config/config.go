package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug            = "debug"
	ConfigSearchDepth      = "search-depth"
	ConfigSearchThreads    = "search-threads"
	ConfigSeed             = "seed"
	ConfigAutoplayGames    = "autoplay-games"
	ConfigAutoplayThreads  = "autoplay-threads"
	ConfigAutoplayMaxTurns = "autoplay-max-turns"
	ConfigAutoplayLogFile  = "autoplay-log-file"
	ConfigHistoryFile      = "history-file"
	ConfigCPUProfile       = "cpu-profile"
)

// Config is a viper instance with the checkers options registered on it.
// Flags win over environment variables (CHECKERS_SEARCH_DEPTH and so on),
// which win over a checkers.yaml config file, which wins over the
// defaults.
type Config struct {
	*viper.Viper
	args []string
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigSearchDepth, 4)
	c.SetDefault(ConfigSearchThreads, 1)
	c.SetDefault(ConfigSeed, 0)
	c.SetDefault(ConfigAutoplayGames, 10)
	c.SetDefault(ConfigAutoplayThreads, 4)
	c.SetDefault(ConfigAutoplayMaxTurns, 200)
	c.SetDefault(ConfigAutoplayLogFile, "/tmp/checkers-autoplay.yaml")
	c.SetDefault(ConfigHistoryFile, "/tmp/checkers_readline.tmp")
	c.SetDefault(ConfigCPUProfile, "")
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("checkers", pflag.ContinueOnError)
	// Everything from the first non-flag on is a shell command.
	fs.SetInterspersed(false)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigSearchDepth, 4, "default number of replies the engine looks ahead")
	fs.Int(ConfigSearchThreads, 1, "threads used to search root moves")
	fs.Uint64(ConfigSeed, 0, "seed for the engine's random tie-breaks; 0 picks a random seed")
	fs.Int(ConfigAutoplayGames, 10, "number of games for autoplay")
	fs.Int(ConfigAutoplayThreads, 4, "games played at once during autoplay")
	fs.Int(ConfigAutoplayMaxTurns, 200, "turns after which an autoplay game is a draw")
	fs.String(ConfigAutoplayLogFile, "/tmp/checkers-autoplay.yaml", "where autoplay writes its game log")
	fs.String(ConfigHistoryFile, "/tmp/checkers_readline.tmp", "readline history file for the shell")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	c.args = fs.Args()
	err = c.BindPFlags(fs)
	if err != nil {
		return err
	}

	c.SetEnvPrefix("checkers")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("checkers")
	c.AddConfigPath(".")
	c.AddConfigPath("$HOME/.checkers")
	err = c.ReadInConfig()
	if err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return nil
}

// Args are the command-line arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// Validate checks the numeric options for values no component can use.
func (c *Config) Validate() error {
	if c.GetInt(ConfigSearchDepth) < 0 {
		return fmt.Errorf("%s must not be negative", ConfigSearchDepth)
	}
	for _, k := range []string{ConfigSearchThreads, ConfigAutoplayThreads, ConfigAutoplayMaxTurns} {
		if c.GetInt(k) < 1 {
			return fmt.Errorf("%s must be at least 1", k)
		}
	}
	if c.GetInt(ConfigAutoplayGames) < 0 {
		return fmt.Errorf("%s must not be negative", ConfigAutoplayGames)
	}
	return nil
}

// SanitizedSettings is a printable summary of every setting.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
