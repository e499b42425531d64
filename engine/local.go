package engine

import (
	"context"
	"fmt"
	"io"
	"rbnim/experiments/metrics"
	"rbnim/game"
	"rbnim/player"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Local struct {
	ID     uuid.UUID
	State  *game.State
	Agents map[game.Player]player.Agent
	out    io.Writer
}

// LocalEngine owns the state for a whole game and asks the agent on turn
// for every move. Board status is printed to out, which may be nil.
func LocalEngine(state *game.State, human, computer player.Agent, out io.Writer) *Local {
	if state == nil {
		panic("engine needs a game state")
	}
	if human == nil || computer == nil {
		panic("engine needs an agent for both players")
	}
	if out == nil {
		out = io.Discard
	}

	return &Local{
		ID:    uuid.New(),
		State: state,
		Agents: map[game.Player]player.Agent{
			game.Human:    human,
			game.Computer: computer,
		},
		out: out,
	}
}

// Run executes the entire game loop until a pile is emptied.
func (e *Local) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		Variant:        e.State.Variant,
		Red:            e.State.Red,
		Blue:           e.State.Blue,
		StartingPlayer: e.State.Turn,
		StartTime:      time.Now(),
	}
	logger := log.With().Str("game", e.ID.String()).Logger()
	logger.Info().Msgf("%s is starting with red=%d blue=%d (%s)", e.State.Turn, e.State.Red, e.State.Blue, e.State.Variant)

	var moveMetrics []metrics.MoveMetric
	for step := 1; !e.State.IsTerminal(); step++ {
		if step > MaxMoves {
			return gameMetric, moveMetrics, fmt.Errorf("%w: %v", ErrMoveLimit, e.State)
		}
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		fmt.Fprintf(e.out, "\nCurrent state: Red: %d, Blue: %d\n", e.State.Red, e.State.Blue)

		current := e.State.Turn
		move, searchMetric, err := e.Agents[current].FindMove(e.State)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("%s failed to move: %w", current, err)
		}
		if err := e.State.Apply(move); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("%s played %v: %w", current, move, err)
		}
		logger.Debug().Msgf("step %d: %s removed %v, now red=%d blue=%d", step, current, move, e.State.Red, e.State.Blue)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       current,
			Move:         move,
			SearchMetric: searchMetric,
		})
	}

	winner, _ := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.Points = e.State.Points()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	logger.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	return gameMetric, moveMetrics, nil
}
