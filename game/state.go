package game

import "fmt"

// State is the full mutable match state: one arena of pieces, the board that
// indexes it, both players and the Zen memory.
type State struct {
	Config  Config
	Board   *Board
	Arena   []Piece
	Players [2]*PlayerState
	Zen     ZenMemory
	ZenRef  PieceRef
}

// NewEmptyState returns a state with an empty board and no pieces. Pieces are
// added with AddPiece; PlayerA is active.
func NewEmptyState(cfg Config, nameA, nameB string) *State {
	return &State{
		Config: cfg,
		Board:  NewBoard(cfg.Size),
		Players: [2]*PlayerState{
			{Name: nameA, Side: PlayerA, Active: true},
			{Name: nameB, Side: PlayerB},
		},
		ZenRef: NoPiece,
	}
}

// NewState sets up a match from layout.
func NewState(cfg Config, nameA, nameB string, layout Layout) (*State, error) {
	if err := layout.check(cfg); err != nil {
		return nil, err
	}
	s := NewEmptyState(cfg, nameA, nameB)
	for id, pos := range layout.A {
		if _, err := s.AddPiece(PlayerA, id, pos); err != nil {
			return nil, err
		}
	}
	for id, pos := range layout.B {
		if _, err := s.AddPiece(PlayerB, id, pos); err != nil {
			return nil, err
		}
	}
	if _, err := s.AddPiece(Neutral, ZenID, layout.Zen); err != nil {
		return nil, err
	}
	return s, nil
}

// AddPiece puts a new piece on an empty square. A Neutral piece joins both
// collections and resets the Zen memory; there can be only one.
func (s *State) AddPiece(owner Owner, id int, pos Position) (PieceRef, error) {
	if !s.Board.InBounds(pos.Row, pos.Col) {
		return NoPiece, fmt.Errorf("cannot add piece at %s: %w", pos, ErrOutOfBounds)
	}
	if s.Board.Occupied(pos) {
		return NoPiece, fmt.Errorf("cannot add piece at %s: square taken: %w", pos, ErrInvalidState)
	}
	switch owner {
	case Neutral:
		if s.ZenRef != NoPiece {
			return NoPiece, fmt.Errorf("cannot add a second zen: %w", ErrInvalidState)
		}
		id = ZenID
	case PlayerA, PlayerB:
		if id < 0 {
			return NoPiece, fmt.Errorf("cannot add piece with id %d: %w", id, ErrInvalidState)
		}
		if _, taken := s.Find(owner, id); taken {
			return NoPiece, fmt.Errorf("cannot add piece: %s already has id %d: %w", owner, id, ErrInvalidState)
		}
	default:
		return NoPiece, fmt.Errorf("cannot add piece for %s: %w", owner, ErrInvalidState)
	}

	ref := PieceRef(len(s.Arena))
	s.Arena = append(s.Arena, Piece{Ref: ref, ID: id, Owner: owner, Pos: pos, Alive: true})
	s.Board.Place(ref, pos)

	if owner == Neutral {
		s.ZenRef = ref
		s.Zen = newZenMemory(pos)
		for _, p := range s.Players {
			p.Pieces = append(p.Pieces, ref)
		}
	} else {
		p := s.Player(owner)
		p.Pieces = append(p.Pieces, ref)
	}
	return ref, nil
}

// Player returns the state of side, or nil for Neutral/NoOwner.
func (s *State) Player(side Owner) *PlayerState {
	switch side {
	case PlayerA:
		return s.Players[0]
	case PlayerB:
		return s.Players[1]
	default:
		return nil
	}
}

// Active returns the side whose turn it is.
func (s *State) Active() Owner {
	for _, p := range s.Players {
		if p.Active {
			return p.Side
		}
	}
	return NoOwner
}

func (s *State) SetActive(side Owner) {
	for _, p := range s.Players {
		p.Active = p.Side == side
	}
}

func (s *State) Piece(ref PieceRef) Piece {
	return s.Arena[ref]
}

// Find resolves a piece identifier within side's living collection.
func (s *State) Find(side Owner, id int) (Piece, bool) {
	p := s.Player(side)
	if p == nil {
		return Piece{}, false
	}
	for _, ref := range p.Pieces {
		if s.Arena[ref].ID == id {
			return s.Arena[ref], true
		}
	}
	return Piece{}, false
}

// Pieces returns side's living pieces in collection order.
func (s *State) Pieces(side Owner) []Piece {
	p := s.Player(side)
	if p == nil {
		return nil
	}
	pieces := make([]Piece, 0, len(p.Pieces))
	for _, ref := range p.Pieces {
		pieces = append(pieces, s.Arena[ref])
	}
	return pieces
}

// Living returns the union of both players' living pieces, the Zen once.
func (s *State) Living() []Piece {
	seen := map[PieceRef]bool{}
	var pieces []Piece
	for _, p := range s.Players {
		for _, ref := range p.Pieces {
			if !seen[ref] {
				seen[ref] = true
				pieces = append(pieces, s.Arena[ref])
			}
		}
	}
	return pieces
}

// ZenAlive reports whether the shared piece is still on the board.
func (s *State) ZenAlive() bool {
	return s.ZenRef != NoPiece && s.Arena[s.ZenRef].Alive
}

// Connected reports whether all of side's living pieces form one cluster.
func (s *State) Connected(side Owner) bool {
	return IsFullyConnected(s.Board, s.Pieces(side))
}

// Apply validates m for side and performs it: a piece standing on the target
// is captured (the Zen leaves both collections), the mover is relocated and
// the Zen memory is updated on a Zen move. Turn order is left to the caller.
func (s *State) Apply(side Owner, m MoveIntent) (*Piece, error) {
	if err := Validate(s, side, m); err != nil {
		return nil, err
	}
	mover, _ := s.Find(side, m.PieceID)
	target := m.Target()

	var captured *Piece
	if ref := s.Board.At(target); ref != NoPiece {
		victim := s.Arena[ref]
		if victim.IsZen() {
			for _, p := range s.Players {
				p.remove(ref)
			}
		} else if !s.Player(victim.Owner).remove(ref) {
			panic(fmt.Sprintf("piece %d on %s missing from %s", victim.ID, target, victim.Owner))
		}
		s.Arena[ref].Alive = false
		victim.Alive = false
		captured = &victim
	}

	s.Board.Move(mover.Pos, target)
	s.Arena[mover.Ref].Pos = target
	if mover.IsZen() {
		s.Zen.record(target, side)
	}
	return captured, nil
}

// Copy returns a deep copy; mutating it leaves s untouched.
func (s *State) Copy() *State {
	arena := make([]Piece, len(s.Arena))
	copy(arena, s.Arena)
	return &State{
		Config:  s.Config,
		Board:   s.Board.Copy(),
		Arena:   arena,
		Players: [2]*PlayerState{s.Players[0].copy(), s.Players[1].copy()},
		Zen:     s.Zen,
		ZenRef:  s.ZenRef,
	}
}
