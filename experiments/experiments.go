package experiments

import (
	"context"
	"fmt"
	"io"
	"rbnim/engine"
	"rbnim/experiments/metrics"
	"rbnim/game"
	"rbnim/player"
	"rbnim/searcher"
	"sort"

	"github.com/rs/zerolog/log"
)

// Start is an initial position shared by every matchup of an experiment.
type Start struct {
	Red     int
	Blue    int
	Variant game.Variant
	First   game.Player
}

// Experiment plays each matchup from each start. A matchup seats its
// first agent as the Human and its second as the Computer.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Starts   []Start
}

var (
	fullSearch = metrics.AgentConfig{ID: 0, Kind: "alphabeta", Evaluator: "outcome", Goroutines: 1, Pruning: true}
	random     = metrics.AgentConfig{ID: 100, Kind: "random"}
)

var registry = map[string]func() Experiment{
	"depth":     depthExperiment,
	"variant":   variantExperiment,
	"evaluator": evaluatorExperiment,
	"pruning":   pruningExperiment,
	"parallel":  parallelExperiment,
}

// Names lists the experiments Run accepts.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run plays the named experiment and writes its CSV report to out.
func Run(ctx context.Context, out io.Writer, name string) error {
	build, ok := registry[name]
	if !ok {
		return fmt.Errorf("%w: unknown experiment %q (want one of %v)", game.ErrInvalidConfiguration, name, Names())
	}
	return RunExperiment(ctx, out, build())
}

// Depth-limited agents against the full search
func depthExperiment() Experiment {
	configs := []metrics.AgentConfig{fullSearch}
	matchUps := [][2]metrics.AgentConfig{}
	for plies := 1; plies <= 4; plies++ {
		config := metrics.AgentConfig{ID: plies, Kind: "alphabeta", Depth: searcher.Plies(plies), Evaluator: "outcome", Goroutines: 1, Pruning: true}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, fullSearch})
	}
	return Experiment{Name: "depth", Configs: configs, MatchUps: matchUps, Starts: starts(3, 8, game.Computer, game.Human)}
}

func variantExperiment() Experiment {
	greedy := metrics.AgentConfig{ID: 1, Kind: "greedy"}
	return Experiment{
		Name:     "variant",
		Configs:  []metrics.AgentConfig{fullSearch, greedy, random},
		MatchUps: [][2]metrics.AgentConfig{{random, fullSearch}, {greedy, fullSearch}, {random, greedy}},
		Starts:   starts(2, 9, game.Computer, game.Human),
	}
}

func evaluatorExperiment() Experiment {
	outcome := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: searcher.Plies(3), Evaluator: "outcome", Goroutines: 1, Pruning: true}
	points := metrics.AgentConfig{ID: 2, Kind: "alphabeta", Depth: searcher.Plies(3), Evaluator: "points", Goroutines: 1, Pruning: true}
	return Experiment{
		Name:     "evaluator",
		Configs:  []metrics.AgentConfig{outcome, points},
		MatchUps: [][2]metrics.AgentConfig{{outcome, points}, {points, outcome}},
		Starts:   starts(3, 9, game.Computer),
	}
}

// Same agent with and without pruning, compared by node counts
func pruningExperiment() Experiment {
	unpruned := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Evaluator: "outcome", Goroutines: 1, Pruning: false}
	return Experiment{
		Name:     "pruning",
		Configs:  []metrics.AgentConfig{fullSearch, unpruned},
		MatchUps: [][2]metrics.AgentConfig{{fullSearch, unpruned}, {unpruned, fullSearch}},
		Starts:   starts(2, 6, game.Computer),
	}
}

func parallelExperiment() Experiment {
	configs := []metrics.AgentConfig{fullSearch}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range []int{2, 4, 8} {
		config := metrics.AgentConfig{ID: i + 1, Kind: "alphabeta", Evaluator: "outcome", Goroutines: goroutines, Pruning: true}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{fullSearch, config})
	}
	return Experiment{Name: "parallel", Configs: configs, MatchUps: matchUps, Starts: starts(4, 9, game.Computer)}
}

// starts covers every pile pair in [low, high] for both variants.
func starts(low, high int, firsts ...game.Player) []Start {
	var all []Start
	for _, variant := range []game.Variant{game.Normal, game.Misere} {
		for _, first := range firsts {
			for red := low; red <= high; red++ {
				for blue := low; blue <= high; blue++ {
					all = append(all, Start{Red: red, Blue: blue, Variant: variant, First: first})
				}
			}
		}
	}
	return all
}

func RunExperiment(ctx context.Context, out io.Writer, exp Experiment) error {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between human=%+v and computer=%+v...", mi+1, len(exp.MatchUps), matchup[0], matchup[1])

		for si, start := range exp.Starts {
			gameMetric, moveMetrics, err := runGame(ctx, matchup, start, uint64(mi*len(exp.Starts)+si))
			if err != nil {
				return fmt.Errorf("matchup %d start %+v: %w", mi+1, start, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				Experiment: exp.Name,
				Agents:     map[game.Player]int{game.Human: matchup[0].ID, game.Computer: matchup[1].ID},
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	writer := metrics.NewWriter(out)
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

// runGame executes a single game between two agents
func runGame(ctx context.Context, matchup [2]metrics.AgentConfig, start Start, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := game.NewGame(start.Red, start.Blue, start.Variant, start.First)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	human, err := createAgent(matchup[0], seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	computer, err := createAgent(matchup[1], seed+1)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	return engine.LocalEngine(state, human, computer, nil).Run(ctx)
}

func createAgent(config metrics.AgentConfig, seed uint64) (player.Agent, error) {
	switch config.Kind {
	case "random":
		return player.NewRandom(seed), nil
	case "greedy":
		return player.NewComputer(searcher.NewGreedy(seed), nil), nil
	case "alphabeta":
		evaluate, err := game.EvaluatorByName(config.Evaluator)
		if err != nil {
			return nil, err
		}
		options := []searcher.Option{
			searcher.WithDepth(config.Depth),
			searcher.WithEvaluationFn(evaluate),
			searcher.WithGoroutines(config.Goroutines),
			searcher.WithMetrics(),
		}
		if !config.Pruning {
			options = append(options, searcher.WithoutPruning())
		}
		return player.NewComputer(searcher.NewAlphaBeta(options...), nil), nil
	default:
		return nil, fmt.Errorf("%w: unknown agent kind %q", game.ErrInvalidConfiguration, config.Kind)
	}
}
