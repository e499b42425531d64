package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("creating a valid game", func(t *testing.T) {
		s, err := NewGame(3, 4, Misere, Human)

		require.NoError(t, err)
		require.Equal(t, &State{Red: 3, Blue: 4, Turn: Human, Variant: Misere}, s)
	})

	t.Run("rejecting negative piles", func(t *testing.T) {
		_, err := NewGame(-1, 4, Normal, Human)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "Negative red pile should be rejected")

		_, err = NewGame(1, -4, Normal, Human)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "Negative blue pile should be rejected")
	})

	t.Run("rejecting unknown variant and player", func(t *testing.T) {
		_, err := NewGame(1, 1, Variant(7), Human)
		require.ErrorIs(t, err, ErrInvalidConfiguration)

		_, err = NewGame(1, 1, Normal, Player(7))
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("allowing an already finished game", func(t *testing.T) {
		s, err := NewGame(2, 0, Normal, Computer)

		require.NoError(t, err)
		require.True(t, s.IsTerminal())
		require.Empty(t, s.LegalMoves(), "Finished game should have no legal moves")
	})
}

func TestParseTokens(t *testing.T) {
	t.Run("parsing versions", func(t *testing.T) {
		for token, want := range map[string]Variant{"standard": Normal, "Normal": Normal, "misere": Misere, "MISÈRE": Misere} {
			got, err := ParseVariant(token)
			require.NoError(t, err, token)
			require.Equal(t, want, got, token)
		}
		_, err := ParseVariant("classic")
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("parsing first players", func(t *testing.T) {
		got, err := ParsePlayer(" Human ")
		require.NoError(t, err)
		require.Equal(t, Human, got)

		got, err = ParsePlayer("computer")
		require.NoError(t, err)
		require.Equal(t, Computer, got)

		_, err = ParsePlayer("robot")
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("parsing colors", func(t *testing.T) {
		got, err := ParseColor("BLUE")
		require.NoError(t, err)
		require.Equal(t, Blue, got)

		_, err = ParseColor("green")
		require.Error(t, err)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("ordering standard moves big bites first", func(t *testing.T) {
		s := &State{Red: 5, Blue: 5, Variant: Normal}

		require.Equal(t, []Move{{Red, 2}, {Blue, 2}, {Red, 1}, {Blue, 1}}, s.LegalMoves())
	})

	t.Run("ordering misère moves small first", func(t *testing.T) {
		s := &State{Red: 5, Blue: 5, Variant: Misere}

		require.Equal(t, []Move{{Blue, 1}, {Red, 1}, {Blue, 2}, {Red, 2}}, s.LegalMoves())
	})

	t.Run("filtering moves the piles cannot support", func(t *testing.T) {
		s := &State{Red: 1, Blue: 1, Variant: Normal}

		require.Equal(t, []Move{{Red, 1}, {Blue, 1}}, s.LegalMoves(), "Only single removals fit piles of one")
	})

	t.Run("every generated move is sound", func(t *testing.T) {
		for _, variant := range []Variant{Normal, Misere} {
			for red := 0; red <= 6; red++ {
				for blue := 0; blue <= 6; blue++ {
					s := &State{Red: red, Blue: blue, Variant: variant}
					for _, m := range s.LegalMoves() {
						require.True(t, s.IsLegal(m), "%v should allow %v", s, m)

						child := s.Clone()
						require.NoError(t, child.Apply(m))
						require.GreaterOrEqual(t, child.Red, 0)
						require.GreaterOrEqual(t, child.Blue, 0)
					}
				}
			}
		}
	})
}

func TestApplyUndo(t *testing.T) {
	t.Run("applying a move removes marbles and passes the turn", func(t *testing.T) {
		s := &State{Red: 3, Blue: 4, Turn: Human, Variant: Normal}

		require.NoError(t, s.Apply(Move{Blue, 2}))

		require.Equal(t, &State{Red: 3, Blue: 2, Turn: Computer, Variant: Normal}, s)
	})

	t.Run("rejecting illegal moves without changing state", func(t *testing.T) {
		s := &State{Red: 1, Blue: 4, Turn: Human, Variant: Normal}
		before := *s

		for _, m := range []Move{{Red, 2}, {Blue, 3}, {Blue, 0}, {Color(5), 1}} {
			err := s.Apply(m)
			require.ErrorIs(t, err, ErrIllegalMove, "%v should be illegal", m)
			require.Equal(t, before, *s, "State should not change on illegal move")
		}
	})

	t.Run("rejecting moves on a finished game", func(t *testing.T) {
		s := &State{Red: 0, Blue: 4, Variant: Normal}

		require.ErrorIs(t, s.Apply(Move{Blue, 1}), ErrIllegalMove)
	})

	t.Run("undo restores every legal move exactly", func(t *testing.T) {
		for _, variant := range []Variant{Normal, Misere} {
			for _, turn := range []Player{Human, Computer} {
				for red := 1; red <= 5; red++ {
					for blue := 1; blue <= 5; blue++ {
						s := &State{Red: red, Blue: blue, Turn: turn, Variant: variant}
						before := *s
						for _, m := range s.LegalMoves() {
							require.NoError(t, s.Apply(m))
							s.Undo(m)
							require.Equal(t, before, *s, "Apply then Undo of %v should restore %v", m, before)
						}
					}
				}
			}
		}
	})
}

func TestWinner(t *testing.T) {
	t.Run("no winner before a pile empties", func(t *testing.T) {
		_, over := (&State{Red: 1, Blue: 1}).Winner()

		require.False(t, over)
	})

	t.Run("last mover wins standard play", func(t *testing.T) {
		s := &State{Red: 1, Blue: 1, Turn: Human, Variant: Normal}
		require.NoError(t, s.Apply(Move{Red, 1}))

		winner, over := s.Winner()

		require.True(t, over)
		require.Equal(t, Human, winner, "Human emptied the red pile")
	})

	t.Run("last mover loses misère play", func(t *testing.T) {
		s := &State{Red: 1, Blue: 1, Turn: Human, Variant: Misere}
		require.NoError(t, s.Apply(Move{Blue, 1}))

		winner, over := s.Winner()

		require.True(t, over)
		require.Equal(t, Computer, winner, "Human emptied the blue pile")
	})

	t.Run("winner is defined exactly on terminal states", func(t *testing.T) {
		for red := 0; red <= 4; red++ {
			for blue := 0; blue <= 4; blue++ {
				s := &State{Red: red, Blue: blue, Variant: Misere}
				_, over := s.Winner()
				require.Equal(t, s.IsTerminal(), over, "%v", s)
			}
		}
	})
}

func TestPoints(t *testing.T) {
	require.Equal(t, 2*3+3*5, (&State{Red: 3, Blue: 5}).Points())
}
