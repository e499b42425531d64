package metrics

import (
	"rbnim/game"
	"rbnim/searcher"
	"time"

	"github.com/google/uuid"
)

// AgentConfig describes a computer player taking part in an experiment.
type AgentConfig struct {
	ID         int
	Kind       string // "alphabeta", "greedy" or "random"
	Depth      searcher.Depth
	Evaluator  string
	Goroutines int
	Pruning    bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	searcher.SearchMetric
}

type GameMetric struct {
	ID             uuid.UUID
	Variant        game.Variant
	Red            int // Initial red pile
	Blue           int // Initial blue pile
	StartingPlayer game.Player
	Winner         game.Player
	Points         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	Experiment string
	Agents     map[game.Player]int // AgentConfig.ID per seat
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameMetric.ID
	MoveMetric
}
