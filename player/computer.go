package player

import (
	"fmt"
	"io"
	"rbnim/game"
	"rbnim/searcher"

	"golang.org/x/exp/rand"
)

type metricsReporter interface {
	Metrics() searcher.SearchMetric
}

// Computer plays the moves chosen by a searcher and announces them.
type Computer struct {
	searcher searcher.Searcher
	out      io.Writer
}

func NewComputer(s searcher.Searcher, out io.Writer) *Computer {
	if out == nil {
		out = io.Discard
	}
	return &Computer{searcher: s, out: out}
}

func (c *Computer) FindMove(state *game.State) (game.Move, searcher.SearchMetric, error) {
	move, err := c.searcher.FindNextMove(state)
	if err != nil {
		return game.Move{}, searcher.SearchMetric{}, err
	}

	var metric searcher.SearchMetric
	if r, ok := c.searcher.(metricsReporter); ok {
		metric = r.Metrics()
	}
	fmt.Fprintf(c.out, "Computer removed %d %s marbles.\n", move.Count, move.Color)
	return move, metric, nil
}

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state *game.State) (game.Move, searcher.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.SearchMetric{}, fmt.Errorf("%w: %v", searcher.ErrTerminalState, state)
	}
	return moves[r.rng.Intn(len(moves))], searcher.SearchMetric{}, nil
}
