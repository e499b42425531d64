package searcher

import "rbnim/game"

// minimax is the unpruned reference search. It visits every node within
// the depth bound and must agree with alphaBeta on every score.
func (ab *AlphaBeta) minimax(state *game.State, depth Depth, maximizing bool) Result {
	ab.metrics.AddNode()
	moves := state.LegalMoves()
	if state.IsTerminal() || depth.exhausted() || len(moves) == 0 {
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
		child := ab.minimax(state, depth.next(), !maximizing)
		state.Undo(move)

		if best.Move == nil || better(child.Score, best.Score, maximizing) {
			best = Result{Score: child.Score, Move: &move}
		}
	}
	return best
}
