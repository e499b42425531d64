package game

// Candidate moves in tie-break order. Standard play takes the big bites
// first, misère play prefers the small ones.
var (
	standardOrder = []Move{{Red, 2}, {Blue, 2}, {Red, 1}, {Blue, 1}}
	misereOrder   = []Move{{Blue, 1}, {Red, 1}, {Blue, 2}, {Red, 2}}
)

func (v Variant) candidates() []Move {
	switch v {
	case Normal:
		return standardOrder
	case Misere:
		return misereOrder
	default:
		panic("unexpected variant")
	}
}

// winner resolves a finished game given the player who emptied a pile.
func (v Variant) winner(lastMover Player) Player {
	switch v {
	case Normal:
		return lastMover
	case Misere:
		return lastMover.Opponent()
	default:
		panic("unexpected variant")
	}
}
