package game

import "fmt"

// Snapshot is the plain-data form of a State for persistence collaborators.
// The board is not stored; Restore rebuilds it from the living pieces.
type Snapshot struct {
	Size            int            `json:"size"`
	PiecesPerPlayer int            `json:"piecesPerPlayer"`
	Arena           []Piece        `json:"arena"`
	Players         [2]PlayerState `json:"players"`
	Zen             ZenMemory      `json:"zen"`
	ZenRef          PieceRef       `json:"zenRef"`
}

func (s *State) Snapshot() Snapshot {
	c := s.Copy()
	return Snapshot{
		Size:            c.Config.Size,
		PiecesPerPlayer: c.Config.PiecesPerPlayer,
		Arena:           c.Arena,
		Players:         [2]PlayerState{*c.Players[0], *c.Players[1]},
		Zen:             c.Zen,
		ZenRef:          c.ZenRef,
	}
}

// Restore rebuilds a State from snap, rejecting snapshots that break the board
// invariants: overlapping pieces, dangling refs, a collection holding a piece
// it does not own, and living pieces missing from or repeated in the
// collections. The living Zen must sit once in each collection.
func Restore(snap Snapshot) (*State, error) {
	if snap.Size <= 0 {
		return nil, fmt.Errorf("snapshot board size %d: %w", snap.Size, ErrInvalidState)
	}
	s := &State{
		Config: Config{Size: snap.Size, PiecesPerPlayer: snap.PiecesPerPlayer},
		Board:  NewBoard(snap.Size),
		Arena:  make([]Piece, len(snap.Arena)),
		Zen:    snap.Zen,
		ZenRef: snap.ZenRef,
	}
	copy(s.Arena, snap.Arena)

	for i, p := range s.Arena {
		if p.Ref != PieceRef(i) {
			return nil, fmt.Errorf("arena slot %d holds ref %d: %w", i, p.Ref, ErrInvalidState)
		}
		if !p.Alive {
			continue
		}
		if !s.Board.InBounds(p.Pos.Row, p.Pos.Col) {
			return nil, fmt.Errorf("piece %d of %s off board at %s: %w", p.ID, p.Owner, p.Pos, ErrInvalidState)
		}
		if s.Board.Occupied(p.Pos) {
			return nil, fmt.Errorf("two pieces on %s: %w", p.Pos, ErrInvalidState)
		}
		s.Board.Place(p.Ref, p.Pos)
	}

	if s.ZenRef != NoPiece {
		if int(s.ZenRef) >= len(s.Arena) || !s.Arena[s.ZenRef].IsZen() {
			return nil, fmt.Errorf("zen ref %d: %w", s.ZenRef, ErrInvalidState)
		}
	}

	held := make([][2]int, len(s.Arena)) // times each ref appears per collection
	for i := range snap.Players {
		p := snap.Players[i]
		s.Players[i] = p.copy()
		for _, ref := range p.Pieces {
			if ref < 0 || int(ref) >= len(s.Arena) {
				return nil, fmt.Errorf("%s holds unknown ref %d: %w", p.Side, ref, ErrInvalidState)
			}
			piece := s.Arena[ref]
			if !piece.Alive || (piece.Owner != p.Side && !piece.IsZen()) {
				return nil, fmt.Errorf("%s holds piece %d it cannot own: %w", p.Side, piece.ID, ErrInvalidState)
			}
			held[ref][i]++
		}
	}
	if s.Players[0].Side != PlayerA || s.Players[1].Side != PlayerB {
		return nil, fmt.Errorf("snapshot player sides %s/%s: %w", s.Players[0].Side, s.Players[1].Side, ErrInvalidState)
	}

	for _, piece := range s.Arena {
		if piece.IsZen() && piece.Ref != s.ZenRef {
			return nil, fmt.Errorf("zen in slot %d but zen ref is %d: %w", piece.Ref, s.ZenRef, ErrInvalidState)
		}
		if !piece.Alive {
			continue
		}
		want := [2]int{1, 1}
		switch piece.Owner {
		case PlayerA:
			want = [2]int{1, 0}
		case PlayerB:
			want = [2]int{0, 1}
		}
		if held[piece.Ref] != want {
			return nil, fmt.Errorf("%s piece %d held %v times by the collections: %w", piece.Owner, piece.ID, held[piece.Ref], ErrInvalidState)
		}
	}
	return s, nil
}
