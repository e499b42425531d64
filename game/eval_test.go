package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateOutcome(t *testing.T) {
	t.Run("scoring a Computer win", func(t *testing.T) {
		// Computer emptied the pile, so the Human is on turn
		s := &State{Red: 0, Blue: 3, Turn: Human, Variant: Normal}

		require.Equal(t, WinScore, EvaluateOutcome(s))
	})

	t.Run("scoring a Human win", func(t *testing.T) {
		s := &State{Red: 0, Blue: 3, Turn: Computer, Variant: Normal}

		require.Equal(t, -WinScore, EvaluateOutcome(s))
	})

	t.Run("misère flips the terminal score", func(t *testing.T) {
		s := &State{Red: 0, Blue: 3, Turn: Human, Variant: Misere}

		require.Equal(t, -WinScore, EvaluateOutcome(s), "Computer emptied a pile and loses")
	})

	t.Run("side to move can empty a pile in standard play", func(t *testing.T) {
		s := &State{Red: 2, Blue: 7, Turn: Computer, Variant: Normal}
		require.Equal(t, ThreatScore, EvaluateOutcome(s))

		s.Turn = Human
		require.Equal(t, -ThreatScore, EvaluateOutcome(s))
	})

	t.Run("side to move is forced to empty a pile in misère play", func(t *testing.T) {
		s := &State{Red: 1, Blue: 1, Turn: Computer, Variant: Misere}
		require.Equal(t, -ThreatScore, EvaluateOutcome(s))

		s.Turn = Human
		require.Equal(t, ThreatScore, EvaluateOutcome(s))
	})

	t.Run("quiet positions score zero", func(t *testing.T) {
		require.Zero(t, EvaluateOutcome(&State{Red: 4, Blue: 5, Turn: Computer, Variant: Normal}))
		require.Zero(t, EvaluateOutcome(&State{Red: 1, Blue: 2, Turn: Computer, Variant: Misere}))
	})
}

func TestEvaluatePoints(t *testing.T) {
	s := &State{Red: 0, Blue: 3, Turn: Human, Variant: Normal}
	require.Equal(t, WinScore+9, EvaluatePoints(s))

	s.Turn = Computer
	require.Equal(t, -(WinScore + 9), EvaluatePoints(s))

	require.Zero(t, EvaluatePoints(&State{Red: 1, Blue: 1, Variant: Normal}))
}

func TestEvaluatorByName(t *testing.T) {
	for _, name := range []string{"", "outcome", "points"} {
		eval, err := EvaluatorByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, eval, name)
	}

	_, err := EvaluatorByName("material")
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}
