package config

import (
	"errors"
	"fmt"
	"rbnim/game"
	"rbnim/searcher"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the game setup. Values come from defaults, an optional
// config file, RBNIM_* environment variables and the command line, in
// increasing order of precedence. The piles are only ever taken from the
// command line.
type Config struct {
	Red         int    `mapstructure:"-"`
	Blue        int    `mapstructure:"-"`
	Version     string `mapstructure:"VERSION"`
	FirstPlayer string `mapstructure:"FIRST_PLAYER"`
	Depth       string `mapstructure:"DEPTH"`
	Mode        string `mapstructure:"MODE"`
	Evaluator   string `mapstructure:"EVALUATOR"`
	Goroutines  int    `mapstructure:"GOROUTINES"`
	Seed        uint64 `mapstructure:"SEED"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
}

// Game is a validated Config.
type Game struct {
	Red         int
	Blue        int
	Variant     game.Variant
	FirstPlayer game.Player
	Depth       searcher.Depth
	Greedy      bool
	Evaluate    game.Evaluate
	Goroutines  int
	Seed        uint64
}

var keys = []string{"VERSION", "FIRST_PLAYER", "DEPTH", "MODE", "EVALUATOR", "GOROUTINES", "SEED", "LOG_LEVEL"}

// Setup reads configuration from cfgPath, if given, and the environment.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("VERSION", "standard")
	v.SetDefault("FIRST_PLAYER", "computer")
	v.SetDefault("DEPTH", "")
	v.SetDefault("MODE", "alphabeta")
	v.SetDefault("EVALUATOR", "outcome")
	v.SetDefault("GOROUTINES", 1)
	v.SetDefault("SEED", 1)
	v.SetDefault("LOG_LEVEL", "warn")

	v.SetEnvPrefix("RBNIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", game.ErrInvalidConfiguration, cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrInvalidConfiguration, err)
	}
	return &cfg, nil
}

// ApplyArgs overrides the configuration with the positional arguments
// <num-red> <num-blue> [version] [first-player] [depth].
func (c *Config) ApplyArgs(args []string) error {
	if len(args) < 2 || len(args) > 5 {
		return fmt.Errorf("%w: expected 2 to 5 arguments, got %d", game.ErrInvalidConfiguration, len(args))
	}

	var err error
	if c.Red, err = strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("%w: num-red %q is not a number", game.ErrInvalidConfiguration, args[0])
	}
	if c.Blue, err = strconv.Atoi(args[1]); err != nil {
		return fmt.Errorf("%w: num-blue %q is not a number", game.ErrInvalidConfiguration, args[1])
	}
	if len(args) >= 3 {
		c.Version = args[2]
	}
	if len(args) >= 4 {
		c.FirstPlayer = args[3]
	}
	if len(args) >= 5 {
		c.Depth = args[4]
	}
	return nil
}

// Game validates the configuration and converts its tokens.
func (c *Config) Game() (*Game, error) {
	if c.Red < 0 || c.Blue < 0 {
		return nil, fmt.Errorf("%w: pile counts must be non-negative, got red=%d blue=%d", game.ErrInvalidConfiguration, c.Red, c.Blue)
	}
	variant, err := game.ParseVariant(c.Version)
	if err != nil {
		return nil, err
	}
	first, err := game.ParsePlayer(c.FirstPlayer)
	if err != nil {
		return nil, err
	}
	depth, err := ParseDepth(c.Depth)
	if err != nil {
		return nil, err
	}
	evaluate, err := game.EvaluatorByName(c.Evaluator)
	if err != nil {
		return nil, err
	}

	var greedy bool
	switch strings.ToLower(c.Mode) {
	case "", "alphabeta":
	case "greedy":
		greedy = true
	default:
		return nil, fmt.Errorf("%w: unknown mode %q (want alphabeta or greedy)", game.ErrInvalidConfiguration, c.Mode)
	}
	if c.Goroutines < 1 {
		return nil, fmt.Errorf("%w: goroutines must be at least 1, got %d", game.ErrInvalidConfiguration, c.Goroutines)
	}

	return &Game{
		Red:         c.Red,
		Blue:        c.Blue,
		Variant:     variant,
		FirstPlayer: first,
		Depth:       depth,
		Greedy:      greedy,
		Evaluate:    evaluate,
		Goroutines:  c.Goroutines,
		Seed:        c.Seed,
	}, nil
}

var errDepth = errors.New("depth must be a non-negative integer, none or unbounded")

// ParseDepth maps "", "none" and "unbounded" to an unbounded search and a
// non-negative integer to that many plies.
func ParseDepth(token string) (searcher.Depth, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "none", "unbounded":
		return searcher.Unbounded(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n < 0 {
		return searcher.Depth{}, fmt.Errorf("%w: %v, got %q", game.ErrInvalidConfiguration, errDepth, token)
	}
	return searcher.Plies(n), nil
}

// Searcher builds the computer's searcher for this configuration.
func (g *Game) Searcher() searcher.Searcher {
	if g.Greedy {
		return searcher.NewGreedy(g.Seed)
	}
	return searcher.NewAlphaBeta(
		searcher.WithDepth(g.Depth),
		searcher.WithEvaluationFn(g.Evaluate),
		searcher.WithGoroutines(g.Goroutines),
		searcher.WithMetrics(),
	)
}
