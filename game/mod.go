package game

import "fmt"

// Owner identifies who a piece belongs to.
type Owner int

const (
	NoOwner Owner = iota
	PlayerA
	PlayerB
	Neutral
)

func (o Owner) String() string {
	switch o {
	case PlayerA:
		return "PlayerA"
	case PlayerB:
		return "PlayerB"
	case Neutral:
		return "Neutral"
	default:
		return "None"
	}
}

// Opponent returns the other player. Neutral and NoOwner have no opponent.
func (o Owner) Opponent() Owner {
	switch o {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoOwner
	}
}

// ZenID is the identifier the shared neutral piece carries in both collections.
const ZenID = -1

// Position is a 0-indexed (row, column) pair.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// PieceRef is a stable key into the piece arena of a State.
type PieceRef int

const NoPiece PieceRef = -1

// Piece is one arena slot.
type Piece struct {
	Ref   PieceRef `json:"ref"`
	ID    int      `json:"id"` // unique within the owner's set, ZenID for the neutral piece
	Owner Owner    `json:"owner"`
	Pos   Position `json:"pos"`
	Alive bool     `json:"alive"`
}

func (p Piece) IsZen() bool {
	return p.Owner == Neutral
}

// MoveIntent is the only external input representing a candidate move.
type MoveIntent struct {
	PieceID int `json:"pieceId"`
	Row     int `json:"row"`
	Col     int `json:"col"`
}

func (m MoveIntent) Target() Position {
	return Position{Row: m.Row, Col: m.Col}
}

func (m MoveIntent) String() string {
	return fmt.Sprintf("piece %d -> (%d,%d)", m.PieceID, m.Row, m.Col)
}

// Config holds the board dimension and the number of regular pieces per player.
type Config struct {
	Size            int
	PiecesPerPlayer int
}
