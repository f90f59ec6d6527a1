package agent

import (
	"fmt"

	"zen/game"

	"golang.org/x/exp/slices"
)

// Greedy grows its largest cluster: pieces outside it are walked towards an
// anchor, farthest first, through three tiers of move quality.
type Greedy struct {
	last Decision
}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) LastDecision() Decision {
	return g.last
}

func (g *Greedy) ChooseMove(s *game.State, self, opponent *game.PlayerState) (game.MoveIntent, error) {
	g.last = Decision{}
	side := self.Side
	own := s.Pieces(side)
	chain := game.LargestConnectedSubset(s.Board, own)

	anchor := game.Position{Row: s.Board.Size / 2, Col: s.Board.Size / 2}
	if len(chain) > 1 {
		anchor = chain[0].Pos
	}

	candidates := stragglers(own, chain)
	if len(candidates) == 0 {
		return g.settle(s, side, chain)
	}
	slices.SortStableFunc(candidates, func(a, b game.Piece) int {
		return manhattan(b.Pos, anchor) - manhattan(a.Pos, anchor)
	})

	tiers := []struct {
		tier Tier
		pick func(gapRow, gapCol int) (game.Direction, bool)
	}{
		{TierBest, largerGap},
		{TierSecond, smallerGap},
	}
	for _, t := range tiers {
		for _, piece := range candidates {
			dir, ok := t.pick(anchor.Row-piece.Pos.Row, anchor.Col-piece.Pos.Col)
			if !ok {
				continue
			}
			if m, ok := g.try(s, side, piece, dir); ok {
				g.last.Tier = t.tier
				return m, nil
			}
		}
	}

	for _, piece := range candidates {
		for _, dir := range game.Directions {
			if m, ok := g.try(s, side, piece, dir); ok {
				g.last.Tier = TierFallback
				return m, nil
			}
		}
	}

	// Every straggler is pinned; moving the chain itself still beats giving up.
	if m, err := g.settle(s, side, chain); err == nil {
		return m, nil
	}
	return game.MoveIntent{}, fmt.Errorf("%s: no move for %d stragglers or the chain: %w", self.Name, len(candidates), ErrNoLegalMove)
}

// settle handles a side that is already one cluster: any legal move that
// keeps it whole, else the first legal move.
func (g *Greedy) settle(s *game.State, side game.Owner, chain []game.Piece) (game.MoveIntent, error) {
	g.last.Tier = TierSettle
	var first *game.MoveIntent
	for _, piece := range chain {
		for _, dir := range game.Directions {
			m, ok := g.try(s, side, piece, dir)
			if !ok {
				continue
			}
			next := s.Copy()
			if _, err := next.Apply(side, m); err != nil {
				panic(fmt.Sprintf("validated move %s rejected on copy: %v", m, err))
			}
			if next.Connected(side) {
				return m, nil
			}
			if first == nil {
				first = &m
			}
		}
	}
	if first != nil {
		return *first, nil
	}
	return game.MoveIntent{}, fmt.Errorf("%s cluster cannot move: %w", side, ErrNoLegalMove)
}

func (g *Greedy) try(s *game.State, side game.Owner, piece game.Piece, dir game.Direction) (game.MoveIntent, bool) {
	m := game.Intent(s.Board, piece, dir)
	g.last.Attempts++
	return m, game.Validate(s, side, m) == nil
}

func stragglers(own, chain []game.Piece) []game.Piece {
	inChain := make(map[game.PieceRef]bool, len(chain))
	for _, p := range chain {
		inChain[p.Ref] = true
	}
	var out []game.Piece
	for _, p := range own {
		if !inChain[p.Ref] {
			out = append(out, p)
		}
	}
	return out
}

// largerGap heads along the axis with the bigger gap, diagonally when the gaps
// are equal.
func largerGap(gapRow, gapCol int) (game.Direction, bool) {
	switch {
	case gapRow == 0 && gapCol == 0:
		return game.Direction{}, false
	case abs(gapRow) > abs(gapCol):
		return game.Direction{DRow: sign(gapRow)}, true
	case abs(gapCol) > abs(gapRow):
		return game.Direction{DCol: sign(gapCol)}, true
	default:
		return game.Direction{DRow: sign(gapRow), DCol: sign(gapCol)}, true
	}
}

// smallerGap heads along the other axis; horizontally when the gaps are equal.
func smallerGap(gapRow, gapCol int) (game.Direction, bool) {
	switch {
	case abs(gapRow) > abs(gapCol):
		if gapCol == 0 {
			return game.Direction{}, false
		}
		return game.Direction{DCol: sign(gapCol)}, true
	case abs(gapCol) > abs(gapRow):
		if gapRow == 0 {
			return game.Direction{}, false
		}
		return game.Direction{DRow: sign(gapRow)}, true
	case gapCol == 0:
		return game.Direction{}, false
	default:
		return game.Direction{DCol: sign(gapCol)}, true
	}
}

func manhattan(a, b game.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
