package game

// Board is the single source of truth for cell occupancy. It stores arena refs
// row-major and knows nothing about the rules.
type Board struct {
	Size  int        `json:"size"`
	Cells []PieceRef `json:"cells"`
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) *Board {
	cells := make([]PieceRef, size*size)
	for i := range cells {
		cells[i] = NoPiece
	}
	return &Board{Size: size, Cells: cells}
}

func (b *Board) Copy() *Board {
	cells := make([]PieceRef, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Size: b.Size, Cells: cells}
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Size && col >= 0 && col < b.Size
}

func (b *Board) index(p Position) int {
	return p.Row*b.Size + p.Col
}

// At returns the ref occupying p, or NoPiece for empty or out-of-bounds cells.
func (b *Board) At(p Position) PieceRef {
	if !b.InBounds(p.Row, p.Col) {
		return NoPiece
	}
	return b.Cells[b.index(p)]
}

func (b *Board) Occupied(p Position) bool {
	return b.At(p) != NoPiece
}

// Place puts ref on p, replacing any occupant.
func (b *Board) Place(ref PieceRef, p Position) {
	b.Cells[b.index(p)] = ref
}

func (b *Board) Clear(p Position) {
	b.Cells[b.index(p)] = NoPiece
}

// Move relocates the occupant of from onto to. Whatever stood on to is
// overwritten; the caller resolves captures beforehand.
func (b *Board) Move(from, to Position) {
	ref := b.At(from)
	b.Clear(from)
	b.Place(ref, to)
}

// CountRow is the mandatory travel distance along a row.
func (b *Board) CountRow(row int) int {
	count := 0
	for col := 0; col < b.Size; col++ {
		if b.Occupied(Position{Row: row, Col: col}) {
			count++
		}
	}
	return count
}

// CountColumn is the mandatory travel distance along a column.
func (b *Board) CountColumn(col int) int {
	count := 0
	for row := 0; row < b.Size; row++ {
		if b.Occupied(Position{Row: row, Col: col}) {
			count++
		}
	}
	return count
}

// CountDiagonal counts occupied cells on the whole diagonal through (row, col),
// the cell itself included. Ascending runs bottom-left to top-right.
func (b *Board) CountDiagonal(row, col int, ascending bool) int {
	dRow, dCol := 1, 1 // descending: down-right
	if ascending {
		dRow = -1 // up-right
	}
	count := 0
	if b.Occupied(Position{Row: row, Col: col}) {
		count++
	}
	for _, way := range []int{1, -1} {
		r, c := row+way*dRow, col+way*dCol
		for b.InBounds(r, c) {
			if b.Occupied(Position{Row: r, Col: c}) {
				count++
			}
			r += way * dRow
			c += way * dCol
		}
	}
	return count
}

var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors8 returns the occupants of the cells adjacent to p that belong to
// candidates.
func (b *Board) Neighbors8(p Position, candidates map[PieceRef]bool) []PieceRef {
	var refs []PieceRef
	for _, off := range neighbourOffsets {
		ref := b.At(Position{Row: p.Row + off[0], Col: p.Col + off[1]})
		if ref != NoPiece && candidates[ref] {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Between returns the cells strictly between two positions on a shared row,
// column or diagonal. Unaligned or adjacent positions yield nil.
func Between(from, to Position) []Position {
	dRow := to.Row - from.Row
	dCol := to.Col - from.Col
	aligned := dRow == 0 || dCol == 0 || abs(dRow) == abs(dCol)
	if !aligned {
		return nil
	}
	steps := max(abs(dRow), abs(dCol)) - 1
	if steps <= 0 {
		return nil
	}
	stepRow, stepCol := sign(dRow), sign(dCol)
	cells := make([]Position, 0, steps)
	r, c := from.Row, from.Col
	for i := 0; i < steps; i++ {
		r += stepRow
		c += stepCol
		cells = append(cells, Position{Row: r, Col: c})
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
