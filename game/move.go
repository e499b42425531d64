package game

import "fmt"

// Move removes Count marbles (1 or 2) from the pile of the given Color.
type Move struct {
	Color Color
	Count int
}

func (m Move) String() string {
	return fmt.Sprintf("%d %s", m.Count, m.Color)
}
