package game

import "zen/utils"

// PlayerState is one side of a match. Pieces holds arena refs in collection
// order; the Zen's ref appears in both players' collections while it lives.
type PlayerState struct {
	Name   string     `json:"name"`
	Side   Owner      `json:"side"`
	Pieces []PieceRef `json:"pieces"`
	Score  int        `json:"score"`
	Active bool       `json:"active"`
}

func (p *PlayerState) Has(ref PieceRef) bool {
	return utils.FindIndex(p.Pieces, ref) >= 0
}

// remove drops ref from the collection, keeping the order of the rest.
func (p *PlayerState) remove(ref PieceRef) bool {
	i := utils.FindIndex(p.Pieces, ref)
	if i < 0 {
		return false
	}
	p.Pieces = utils.RemoveAt(p.Pieces, i)
	return true
}

func (p *PlayerState) copy() *PlayerState {
	c := *p
	c.Pieces = make([]PieceRef, len(p.Pieces))
	copy(c.Pieces, p.Pieces)
	return &c
}
