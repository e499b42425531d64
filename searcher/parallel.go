package searcher

import (
	"rbnim/game"

	"golang.org/x/sync/errgroup"
)

// searchParallel splits the root: every root move is searched to a full
// window on its own clone, then the earliest best move is picked the same
// way the sequential search picks it.
func (ab *AlphaBeta) searchParallel(state *game.State, depth Depth, maximizing bool) (Result, error) {
	ab.metrics.AddNode()
	moves := state.LegalMoves()
	if depth.exhausted() || len(moves) == 0 {
		ab.metrics.AddLeaf()
		return Result{Score: ab.evaluate(state)}, nil
	}

	scores := make([]int, len(moves))
	g := errgroup.Group{}
	g.SetLimit(ab.goroutines)
	for i, move := range moves {
		i, move := i, move
		branch := state.Clone()
		g.Go(func() error {
			if err := branch.Apply(move); err != nil {
				return err
			}
			scores[i] = ab.Search(branch, depth.next(), !maximizing).Score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := Result{Score: Infinity}
	if maximizing {
		best.Score = -Infinity
	}
	for i, score := range scores {
		if best.Move == nil || better(score, best.Score, maximizing) {
			best = Result{Score: score, Move: &moves[i]}
		}
	}
	return best, nil
}
