package game

import "fmt"

const (
	WinScore    = 1000
	ThreatScore = WinScore / 2
)

// Evaluate scores a state from the Computer's perspective: the higher the
// score, the better the position for the Computer.
type Evaluate func(*State) int

// EvaluateOutcome scores finished games by their winner and unfinished
// ones by whether the side to move has an immediate forced result.
func EvaluateOutcome(s *State) int {
	if winner, over := s.Winner(); over {
		return perspective(winner) * WinScore
	}
	return perspective(s.Turn) * threat(s)
}

// EvaluatePoints scores finished games by their winner, breaking ties
// between wins by the points left on the board. Unfinished games score 0.
func EvaluatePoints(s *State) int {
	if winner, over := s.Winner(); over {
		return perspective(winner) * (WinScore + s.Points())
	}
	return 0
}

// EvaluatorByName resolves the evaluator names used in configuration.
func EvaluatorByName(name string) (Evaluate, error) {
	switch name {
	case "", "outcome":
		return EvaluateOutcome, nil
	case "points":
		return EvaluatePoints, nil
	default:
		return nil, fmt.Errorf("%w: unknown evaluator %q (want outcome or points)", ErrInvalidConfiguration, name)
	}
}

// threat is ThreatScore when the side to move can end the game in its
// favor right now, -ThreatScore when every move it has ends the game
// against it, and 0 otherwise.
func threat(s *State) int {
	moves := s.LegalMoves()
	finishing := 0
	for _, m := range moves {
		if s.Pile(m.Color) == m.Count {
			finishing++
		}
	}

	switch s.Variant {
	case Normal:
		if finishing > 0 {
			return ThreatScore
		}
	case Misere:
		if len(moves) > 0 && finishing == len(moves) {
			return -ThreatScore
		}
	}
	return 0
}

func perspective(p Player) int {
	if p == Computer {
		return 1
	}
	return -1
}
