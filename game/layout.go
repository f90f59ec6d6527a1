package game

import "fmt"

// Layout is a starting position: where the Zen and each player's pieces stand.
// Piece IDs follow slice order.
type Layout struct {
	Zen Position
	A   []Position
	B   []Position
}

// StandardLayout is the opening for a size×size board, placed relative to
// the edges and the centre so the 11×11 board gets the classic position.
// PlayerB's set is PlayerA's rotated a quarter turn, the Zen sits in the
// centre. Boards smaller than 9 squares make pieces collide, which NewState
// rejects.
func StandardLayout(size int) Layout {
	last, mid := size-1, size/2
	a := []Position{
		{0, 0}, {last, last}, {0, mid}, {last, mid},
		{1, mid - 1}, {1, mid + 1}, {last - 1, mid - 1}, {last - 1, mid + 1},
		{2, 2}, {3, 3}, {last - 3, last - 3}, {last - 2, last - 2},
	}
	b := make([]Position, len(a))
	for i, p := range a {
		b[i] = Position{Row: p.Col, Col: last - p.Row}
	}
	return Layout{Zen: Position{mid, mid}, A: a, B: b}
}

// check verifies the layout fits the board and holds the configured number
// of pieces per player without overlaps.
func (l Layout) check(cfg Config) error {
	if len(l.A) != cfg.PiecesPerPlayer || len(l.B) != cfg.PiecesPerPlayer {
		return fmt.Errorf("layout has %d/%d pieces, want %d each: %w", len(l.A), len(l.B), cfg.PiecesPerPlayer, ErrInvalidState)
	}
	seen := map[Position]bool{}
	all := append(append([]Position{l.Zen}, l.A...), l.B...)
	for _, p := range all {
		if p.Row < 0 || p.Row >= cfg.Size || p.Col < 0 || p.Col >= cfg.Size {
			return fmt.Errorf("layout square %s off a %d board: %w", p, cfg.Size, ErrInvalidState)
		}
		if seen[p] {
			return fmt.Errorf("layout square %s used twice: %w", p, ErrInvalidState)
		}
		seen[p] = true
	}
	return nil
}
