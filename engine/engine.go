package engine

import (
	"context"
	"errors"
	"rbnim/experiments/metrics"
)

// MaxMoves caps a game. Every move removes at least one marble, so it is
// only reached with piles larger than any interactive game uses.
const MaxMoves = 10000

var ErrMoveLimit = errors.New("move limit reached before the game ended")

type Engine interface {
	// Run plays a game till a pile is emptied or a max number of moves is reached
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
