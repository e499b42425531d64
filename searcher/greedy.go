package searcher

import (
	"fmt"
	"rbnim/game"

	"golang.org/x/exp/rand"
)

// Greedy is the no-lookahead mode: it plays a move that wins on the spot,
// or leaves the opponent only replies that lose, if one exists. Otherwise
// it plays a random move that does not lose at once. It is not the same as
// AlphaBeta with Plies(0), which returns no move at all.
type Greedy struct {
	rng *rand.Rand
}

func NewGreedy(seed uint64) *Greedy {
	return &Greedy{rng: rand.New(rand.NewSource(seed))}
}

func (g *Greedy) FindNextMove(state *game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("%w: %v", ErrTerminalState, state)
	}

	mover := state.Turn
	var safe []game.Move
	for _, move := range moves {
		play(state, move)
		winner, over := state.Winner()
		forced := !over && repliesLose(state, mover)
		state.Undo(move)

		if (over && winner == mover) || forced {
			return move, nil
		}
		if !over {
			safe = append(safe, move)
		}
	}
	if len(safe) > 0 {
		return safe[g.rng.Intn(len(safe))], nil
	}
	return moves[g.rng.Intn(len(moves))], nil
}

// repliesLose reports whether every reply available in state ends the game
// with mover as the winner.
func repliesLose(state *game.State, mover game.Player) bool {
	replies := state.LegalMoves()
	for _, reply := range replies {
		play(state, reply)
		winner, over := state.Winner()
		state.Undo(reply)
		if !over || winner != mover {
			return false
		}
	}
	return len(replies) > 0
}
