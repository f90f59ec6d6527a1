package game

// Direction is a unit step on the board.
type Direction struct {
	DRow int
	DCol int
}

var (
	East      = Direction{0, 1}
	West      = Direction{0, -1}
	South     = Direction{1, 0}
	North     = Direction{-1, 0}
	SouthEast = Direction{1, 1}
	NorthWest = Direction{-1, -1}
	NorthEast = Direction{-1, 1}
	SouthWest = Direction{1, -1}
)

// Directions lists the eight rays in the order fallback searches try them:
// along the row, along the column, then the diagonals.
var Directions = [8]Direction{East, West, South, North, SouthEast, NorthWest, NorthEast, SouthWest}

// Reach returns where a piece on from lands when moving along dir: the
// distance is the number of pieces on that line. The result may be off the
// board.
func Reach(b *Board, from Position, dir Direction) Position {
	var dist int
	switch {
	case dir.DRow == 0:
		dist = b.CountRow(from.Row)
	case dir.DCol == 0:
		dist = b.CountColumn(from.Col)
	default:
		ascending := dir.DRow != dir.DCol
		dist = b.CountDiagonal(from.Row, from.Col, ascending)
	}
	return Position{Row: from.Row + dir.DRow*dist, Col: from.Col + dir.DCol*dist}
}

// Intent builds the move of piece along dir.
func Intent(b *Board, piece Piece, dir Direction) MoveIntent {
	to := Reach(b, piece.Pos, dir)
	return MoveIntent{PieceID: piece.ID, Row: to.Row, Col: to.Col}
}

// LegalMoves returns every move side may play, at most eight per piece, in
// collection then Directions order.
func LegalMoves(s *State, side Owner) []MoveIntent {
	var moves []MoveIntent
	for _, piece := range s.Pieces(side) {
		for _, dir := range Directions {
			m := Intent(s.Board, piece, dir)
			if Validate(s, side, m) == nil {
				moves = append(moves, m)
			}
		}
	}
	return moves
}
