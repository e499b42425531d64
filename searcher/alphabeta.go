package searcher

import (
	"fmt"
	"rbnim/game"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning.
// The Computer is always the maximizing side.
type AlphaBeta struct {
	depth      Depth
	evaluate   game.Evaluate
	goroutines int
	pruning    bool
	metrics    Collector
	last       SearchMetric
}

func WithDepth(depth Depth) Option {
	return func(ab *AlphaBeta) {
		ab.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

// WithGoroutines explores the root moves in parallel, each on its own copy
// of the state.
func WithGoroutines(goroutines int) Option {
	return func(ab *AlphaBeta) {
		if goroutines > 0 {
			ab.goroutines = goroutines
		}
	}
}

// WithoutPruning searches every node, as plain minimax does.
func WithoutPruning() Option {
	return func(ab *AlphaBeta) {
		ab.pruning = false
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:      Unbounded(),
		evaluate:   game.EvaluateOutcome,
		goroutines: 1,
		pruning:    true,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// Search runs alpha-beta search with the default evaluator.
func Search(state *game.State, depth Depth, maximizing bool) Result {
	return NewAlphaBeta().Search(state, depth, maximizing)
}

// Search scores state looking depth plies ahead. The state is mutated
// during the search and restored before Search returns. Moves are tried
// in generation order and only a strictly better score replaces the best
// move, so ties go to the earliest move.
func (ab *AlphaBeta) Search(state *game.State, depth Depth, maximizing bool) Result {
	if !ab.pruning {
		return ab.minimax(state, depth, maximizing)
	}
	return ab.alphaBeta(state, depth, -Infinity, Infinity, maximizing)
}

// FindNextMove searches from the configured depth for the player on turn.
func (ab *AlphaBeta) FindNextMove(state *game.State) (game.Move, error) {
	if state.IsTerminal() {
		return game.Move{}, fmt.Errorf("%w: %v", ErrTerminalState, state)
	}

	maximizing := state.Turn == game.Computer
	ab.metrics.Start(ab.depth, ab.goroutines)
	var result Result
	var err error
	if ab.goroutines > 1 {
		result, err = ab.searchParallel(state, ab.depth, maximizing)
	} else {
		result = ab.Search(state, ab.depth, maximizing)
	}
	ab.last = ab.metrics.Complete()
	if err != nil {
		return game.Move{}, err
	}

	if result.Move == nil {
		return game.Move{}, fmt.Errorf("%w: depth %v from %v", ErrNoMove, ab.depth, state)
	}
	return *result.Move, nil
}

// Metrics returns the metrics of the last FindNextMove call.
func (ab *AlphaBeta) Metrics() SearchMetric {
	return ab.last
}

func (ab *AlphaBeta) alphaBeta(state *game.State, depth Depth, alpha, beta int, maximizing bool) Result {
	ab.metrics.AddNode()
	if state.IsTerminal() || depth.exhausted() {
		ab.metrics.AddLeaf()
		return Result{Score: ab.evaluate(state)}
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		ab.metrics.AddLeaf()
		return Result{Score: ab.evaluate(state)}
	}

	best := Result{Score: Infinity}
	if maximizing {
		best.Score = -Infinity
	}
	for _, move := range moves {
		move := move
		play(state, move)
		child := ab.alphaBeta(state, depth.next(), alpha, beta, !maximizing)
		state.Undo(move)

		if best.Move == nil || better(child.Score, best.Score, maximizing) {
			best = Result{Score: child.Score, Move: &move}
		}
		if maximizing {
			alpha = max(alpha, best.Score)
		} else {
			beta = min(beta, best.Score)
		}

		if beta <= alpha {
			ab.metrics.AddCutoff()
			break
		}
	}
	return best
}

// better reports whether score strictly improves on best for the side
// being searched. Ties keep the earlier move.
func better(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// play applies a generated move. The generator only yields legal moves,
// so a rejection means the state was corrupted.
func play(state *game.State, move game.Move) {
	if err := state.Apply(move); err != nil {
		panic(fmt.Sprintf("generated move rejected: %v", err))
	}
}
