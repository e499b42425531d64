package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"rbnim/config"
	"rbnim/engine"
	"rbnim/experiments"
	"rbnim/experiments/metrics"
	"rbnim/game"
	"rbnim/player"
	"rbnim/searcher"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = "Usage: rbnim [flags] <num-red> <num-blue> [<version>] [<first-player>] [<depth>]\n" +
	"       rbnim [flags] -experiment <name>\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("rbnim", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	cfgPath := flags.String("config", "", "Optional config file (yaml, json or toml)")
	experiment := flags.String("experiment", "", fmt.Sprintf("Run a computer-vs-computer experiment %v and print CSV", experiments.Names()))
	logLevel := flags.String("log-level", "", "Log level (debug, info, warn, error)")
	mode := flags.String("mode", "", "Computer player: alphabeta or greedy")
	evaluator := flags.String("evaluator", "", "Leaf evaluator: outcome or points")
	goroutines := flags.Int("goroutines", 0, "Goroutines for the root search")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *evaluator != "" {
		cfg.Evaluator = *evaluator
	}
	if *goroutines > 0 {
		cfg.Goroutines = *goroutines
	}
	setupLogger(cfg.LogLevel, stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *experiment != "" {
		if err := experiments.Run(ctx, stdout, *experiment); err != nil {
			log.Error().Err(err).Msg("experiment failed")
			return 1
		}
		return 0
	}

	if err := cfg.ApplyArgs(flags.Args()); err != nil {
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return 1
	}
	setup, err := cfg.Game()
	if err != nil {
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return 1
	}

	state, err := game.NewGame(setup.Red, setup.Blue, setup.Variant, setup.FirstPlayer)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	human := player.NewHuman(stdin, stdout)
	computer := player.NewComputer(setup.Searcher(), stdout)

	gameMetric, _, err := engine.LocalEngine(state, human, computer, stdout).Run(ctx)
	switch {
	case errors.Is(err, searcher.ErrNoMove):
		fmt.Fprintln(stdout, "No valid moves for the computer.")
		return 1
	case errors.Is(err, player.ErrNoInput):
		fmt.Fprintln(stdout, "\nNo more input, leaving the game.")
		return 1
	case err != nil:
		log.Error().Err(err).Msg("game aborted")
		return 1
	}

	announce(stdout, gameMetric)
	return 0
}

func announce(out io.Writer, gameMetric metrics.GameMetric) {
	if gameMetric.Winner == game.Human {
		fmt.Fprintf(out, "\nYou win by %d points!\n", gameMetric.Points)
	} else {
		fmt.Fprintf(out, "\nComputer wins by %d points!\n", gameMetric.Points)
	}
}

func setupLogger(level string, out io.Writer) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
}
