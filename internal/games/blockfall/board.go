package blockfall

// Board tracks the runtime occupancy of the field while pieces fall.
type Board struct {
	cols     int
	rows     int
	occupied [][]bool
}

// Active is the currently falling piece.
type Active struct {
	Piece Piece
	Rot   int
	Row   int
	Col   int
}

// Cells returns the active piece's absolute field cells.
func (a *Active) Cells() [4]Cell {
	var out [4]Cell
	for i, c := range Cells(a.Piece.Kind, a.Rot) {
		out[i] = Cell{Row: a.Row + c.Row, Col: a.Col + c.Col}
	}
	return out
}

// AtTarget reports whether the active piece covers exactly its target cells.
// Symmetric kinds count as at-target from any rotation with the same
// footprint; the display closes the gap through the spin offset.
func (a *Active) AtTarget() bool {
	return a.Row == a.Piece.TargetRow &&
		a.Col == a.Piece.TargetCol &&
		SameFootprint(a.Piece.Kind, a.Rot, a.Piece.TargetRot)
}

// NewBoard creates an empty board.
func NewBoard(cols, rows int) *Board {
	return &Board{cols: cols, rows: rows, occupied: newGrid(cols, rows)}
}

// Cols returns the field width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the field height.
func (b *Board) Rows() int { return b.rows }

// Occupied reports whether a cell is filled. Out-of-range cells count as
// filled.
func (b *Board) Occupied(row, col int) bool {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return true
	}
	return b.occupied[row][col]
}

// CanPlace reports whether a kind at a rotation fits at (row, col).
func (b *Board) CanPlace(kind Kind, rot, row, col int) bool {
	for _, c := range Cells(kind, rot) {
		if b.Occupied(row+c.Row, col+c.Col) {
			return false
		}
	}
	return true
}

// Move shifts the active piece by (dRow, dCol) if the result fits.
func (b *Board) Move(a *Active, dRow, dCol int) bool {
	if !b.CanPlace(a.Piece.Kind, a.Rot, a.Row+dRow, a.Col+dCol) {
		return false
	}
	a.Row += dRow
	a.Col += dCol
	return true
}

// kickOffsets are the horizontal adjustments tried, in order, when a naive
// rotation collides with a wall or filled cells.
var kickOffsets = []int{0, -1, 1, -2, 2}

// Rotate turns the active piece clockwise, trying the wall-kick offsets in
// order. Returns false and leaves the piece unchanged when no offset fits.
func (b *Board) Rotate(a *Active) bool {
	next := (a.Rot + 1) % 4
	for _, kick := range kickOffsets {
		if b.CanPlace(a.Piece.Kind, next, a.Row, a.Col+kick) {
			a.Rot = next
			a.Col += kick
			return true
		}
	}
	return false
}

// Drop moves the active piece down until blocked and returns the distance
// travelled.
func (b *Board) Drop(a *Active) int {
	dist := 0
	for b.Move(a, 1, 0) {
		dist++
	}
	return dist
}

// Place commits the active piece's cells to the board.
func (b *Board) Place(a *Active) {
	for _, c := range a.Cells() {
		b.occupied[c.Row][c.Col] = true
	}
}
