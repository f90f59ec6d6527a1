package game

// ZenMemory remembers the last two squares the Zen stood on and who moved it
// there. It changes only when a Zen move is applied.
type ZenMemory struct {
	Previous    Position `json:"previous"`
	Current     Position `json:"current"`
	HasPrevious bool     `json:"hasPrevious"`
	Mover       Owner    `json:"mover"`
}

func newZenMemory(start Position) ZenMemory {
	return ZenMemory{Current: start, Mover: NoOwner}
}

func (z *ZenMemory) record(to Position, mover Owner) {
	z.Previous = z.Current
	z.HasPrevious = true
	z.Current = to
	z.Mover = mover
}

// forbids reports whether side may not put the Zen on target: the opponent
// moved it last and target is the square it came from.
func (z ZenMemory) forbids(side Owner, target Position) bool {
	return z.HasPrevious && z.Mover == side.Opponent() && z.Previous == target
}
