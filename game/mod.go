package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalMove          = errors.New("illegal move")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Player identifies who is to move.
type Player int

const (
	Human Player = iota
	Computer
)

func (p Player) Opponent() Player {
	if p == Human {
		return Computer
	}
	return Human
}

func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

func (p Player) valid() bool {
	return p == Human || p == Computer
}

// ParsePlayer accepts "human" or "computer" in any case.
func ParsePlayer(token string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "human":
		return Human, nil
	case "computer":
		return Computer, nil
	default:
		return 0, fmt.Errorf("%w: unknown first player %q (want human or computer)", ErrInvalidConfiguration, token)
	}
}

// Color names one of the two piles.
type Color int

const (
	Red Color = iota
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// ParseColor accepts "red" or "blue" in any case.
func ParseColor(token string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "red":
		return Red, nil
	case "blue":
		return Blue, nil
	default:
		return 0, fmt.Errorf("unknown color %q", token)
	}
}

// Variant fixes the win condition and move ordering for a whole game.
type Variant int

const (
	Normal Variant = iota // The player who empties a pile wins
	Misere                // The player who empties a pile loses
)

func (v Variant) String() string {
	switch v {
	case Normal:
		return "standard"
	case Misere:
		return "misere"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

func (v Variant) valid() bool {
	return v == Normal || v == Misere
}

// ParseVariant accepts "standard" (or "normal") and "misere" (or "misère").
func ParseVariant(token string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "standard", "normal":
		return Normal, nil
	case "misere", "misère":
		return Misere, nil
	default:
		return 0, fmt.Errorf("%w: unknown version %q (want standard or misere)", ErrInvalidConfiguration, token)
	}
}
