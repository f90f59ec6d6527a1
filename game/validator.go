package game

import "fmt"

// Validate decides whether side may play m in s. It returns nil when the move
// is legal and an error wrapping one of the Err* reasons otherwise. It never
// mutates s, so agents can test candidate moves with it.
func Validate(s *State, side Owner, m MoveIntent) error {
	piece, ok := s.Find(side, m.PieceID)
	if !ok {
		return fmt.Errorf("%s has no piece %d: %w", side, m.PieceID, ErrUnknownPiece)
	}
	if !s.Board.InBounds(m.Row, m.Col) {
		return fmt.Errorf("cannot move to (%d,%d): %w", m.Row, m.Col, ErrOutOfBounds)
	}
	target := m.Target()

	if ref := s.Board.At(target); ref != NoPiece && s.Arena[ref].Owner == side {
		return fmt.Errorf("cannot move to %s: %w", target, ErrOwnPiece)
	}

	if err := checkDistance(s.Board, piece.Pos, target); err != nil {
		return err
	}

	enemy := side.Opponent()
	for _, cell := range Between(piece.Pos, target) {
		ref := s.Board.At(cell)
		if ref != NoPiece && s.Arena[ref].Owner == enemy {
			return fmt.Errorf("cannot pass %s: %w", cell, ErrBlocked)
		}
	}

	if piece.IsZen() {
		return checkZen(s, side, piece, target)
	}
	return nil
}

// checkDistance enforces the line-of-sight rule: a piece travels exactly as
// many squares as there are pieces on the line it moves along.
func checkDistance(b *Board, from, to Position) error {
	dRow := from.Row - to.Row
	dCol := from.Col - to.Col

	var required, travelled int
	switch {
	case dRow == 0 && dCol == 0:
		return fmt.Errorf("piece stays on %s: %w", from, ErrNoMovement)
	case dRow != 0 && dCol != 0:
		if abs(dRow) != abs(dCol) {
			return fmt.Errorf("move %s -> %s is not on a line: %w", from, to, ErrWrongDistance)
		}
		ascending := (dRow > 0) != (dCol > 0)
		required = b.CountDiagonal(from.Row, from.Col, ascending)
		travelled = abs(dCol)
	case dCol != 0:
		required = b.CountRow(to.Row)
		travelled = abs(dCol)
	default:
		required = b.CountColumn(to.Col)
		travelled = abs(dRow)
	}

	if travelled != required {
		return fmt.Errorf("move %s -> %s travels %d, line holds %d: %w", from, to, travelled, required, ErrWrongDistance)
	}
	return nil
}

func checkZen(s *State, side Owner, zen Piece, target Position) error {
	living := map[PieceRef]bool{}
	for _, p := range s.Living() {
		living[p.Ref] = true
	}
	if len(s.Board.Neighbors8(zen.Pos, living)) == 0 {
		return fmt.Errorf("zen on %s: %w", zen.Pos, ErrZenIsolated)
	}
	if s.Zen.forbids(side, target) {
		return fmt.Errorf("zen was just moved off %s by %s: %w", target, s.Zen.Mover, ErrZenReturn)
	}
	return nil
}
