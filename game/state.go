package game

import (
	"fmt"
)

// State is a Red-Blue Nim position. It is mutated in place: the searcher
// applies and undoes moves on the same value instead of copying it, so a
// State must never be shared between goroutines without a Clone.
type State struct {
	Red     int     // Marbles left in the red pile
	Blue    int     // Marbles left in the blue pile
	Turn    Player  // Player to move next
	Variant Variant // Fixed for the lifetime of the game
}

// NewGame validates the setup and returns the initial state.
func NewGame(red, blue int, variant Variant, first Player) (*State, error) {
	if red < 0 || blue < 0 {
		return nil, fmt.Errorf("%w: pile counts must be non-negative, got red=%d blue=%d", ErrInvalidConfiguration, red, blue)
	}
	if !variant.valid() {
		return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidConfiguration, int(variant))
	}
	if !first.valid() {
		return nil, fmt.Errorf("%w: unknown first player %d", ErrInvalidConfiguration, int(first))
	}
	return &State{
		Red:     red,
		Blue:    blue,
		Turn:    first,
		Variant: variant,
	}, nil
}

func (s *State) Clone() *State {
	c := *s
	return &c
}

// Pile returns the number of marbles of the given color.
func (s *State) Pile(c Color) int {
	switch c {
	case Red:
		return s.Red
	case Blue:
		return s.Blue
	default:
		return 0
	}
}

// IsTerminal reports whether a pile has been emptied.
func (s *State) IsTerminal() bool {
	return s.Red == 0 || s.Blue == 0
}

// LegalMoves lists the moves the current piles support, in the variant's
// tie-break order. A terminal state has no legal moves.
func (s *State) LegalMoves() []Move {
	if s.IsTerminal() {
		return nil
	}
	candidates := s.Variant.candidates()
	moves := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		if m.Count <= s.Pile(m.Color) {
			moves = append(moves, m)
		}
	}
	return moves
}

func (s *State) IsLegal(m Move) bool {
	if s.IsTerminal() || (m.Color != Red && m.Color != Blue) {
		return false
	}
	return (m.Count == 1 || m.Count == 2) && m.Count <= s.Pile(m.Color)
}

// Apply plays m and passes the turn. The state is left untouched when m
// is not legal.
func (s *State) Apply(m Move) error {
	if !s.IsLegal(m) {
		return fmt.Errorf("%w: cannot remove %d %s from red=%d blue=%d", ErrIllegalMove, m.Count, m.Color, s.Red, s.Blue)
	}
	s.add(m.Color, -m.Count)
	s.Turn = s.Turn.Opponent()
	return nil
}

// Undo reverts the move that was just applied. It does not validate m.
func (s *State) Undo(m Move) {
	s.add(m.Color, m.Count)
	s.Turn = s.Turn.Opponent()
}

func (s *State) add(c Color, n int) {
	if c == Red {
		s.Red += n
	} else {
		s.Blue += n
	}
}

// Winner returns the winner of a finished game and false otherwise. The
// player who emptied the pile is the one not on turn; a game created
// already finished is resolved the same way.
func (s *State) Winner() (Player, bool) {
	if !s.IsTerminal() {
		return 0, false
	}
	return s.Variant.winner(s.Turn.Opponent()), true
}

// Points is the cosmetic score shown at the end of a game.
func (s *State) Points() int {
	return 2*s.Red + 3*s.Blue
}

func (s State) String() string {
	return fmt.Sprintf("red=%d blue=%d turn=%s variant=%s", s.Red, s.Blue, s.Turn, s.Variant)
}
