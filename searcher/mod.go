package searcher

import (
	"errors"
	"fmt"
	"rbnim/game"
)

// Infinity bounds every evaluation score.
const Infinity = 10000000

var (
	ErrTerminalState = errors.New("search called on a finished game")
	ErrNoMove        = errors.New("search returned no move")
)

type Searcher interface {
	// FindNextMove picks a move for the player on turn
	FindNextMove(state *game.State) (game.Move, error)
}

// Result is the score of a searched position and the move that achieves
// it. Move is nil at a leaf.
type Result struct {
	Score int
	Move  *game.Move
}

// Depth bounds how many plies a search looks ahead. The zero value is
// unbounded, which is distinct from Plies(0).
type Depth struct {
	plies   int
	bounded bool
}

func Unbounded() Depth {
	return Depth{}
}

func Plies(n int) Depth {
	if n < 0 {
		panic(fmt.Sprintf("negative search depth %d", n))
	}
	return Depth{plies: n, bounded: true}
}

// Limit returns the remaining plies and whether the depth is bounded at all.
func (d Depth) Limit() (int, bool) {
	return d.plies, d.bounded
}

func (d Depth) exhausted() bool {
	return d.bounded && d.plies == 0
}

func (d Depth) next() Depth {
	if !d.bounded {
		return d
	}
	return Depth{plies: d.plies - 1, bounded: true}
}

func (d Depth) String() string {
	if !d.bounded {
		return "unbounded"
	}
	return fmt.Sprintf("%d", d.plies)
}
