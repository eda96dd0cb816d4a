package blockfall

import (
	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// Piece is one tetromino of the generated layout. Target fields describe
// where it belongs in the finished picture; SpinOffset is the number of
// extra quarter-turns the display applies so a symmetric piece locked at an
// equivalent rotation still shows its image the right way up.
type Piece struct {
	ID         int
	Kind       Kind
	TargetRot  int
	TargetRow  int // Top-left of the normalized shape, field coordinates
	TargetCol  int
	SpinOffset int
}

// TargetCells returns the piece's absolute field cells when solved.
func (p *Piece) TargetCells() [4]Cell {
	var out [4]Cell
	for i, c := range Cells(p.Kind, p.TargetRot) {
		out[i] = Cell{Row: p.TargetRow + c.Row, Col: p.TargetCol + c.Col}
	}
	return out
}

// GenerateLayout tiles a cols x rows field into tetromino pieces with a
// randomized greedy fill: scan cells bottom-to-top, left-to-right and cover
// each uncovered cell with the first shuffled (kind, rotation, anchor cell)
// placement that is in-bounds, uncovered and grounded. A fill that strands a
// cell is retried up to attempts times; after that a deterministic fallback
// tiling is used. Pieces come back in generation order (bottom-up), so each
// piece is grounded relative to the ones before it.
func GenerateLayout(cols, rows, attempts int, rng *core.RNG) []Piece {
	for a := 0; a < attempts; a++ {
		if pieces, ok := tryFill(cols, rows, rng); ok {
			return pieces
		}
	}
	return fallbackLayout(cols, rows)
}

// tryFill runs one greedy fill pass. Returns ok=false when some cell cannot
// host any grounded placement.
func tryFill(cols, rows int, rng *core.RNG) ([]Piece, bool) {
	occupied := newGrid(cols, rows)
	var pieces []Piece

	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	rotations := []int{0, 1, 2, 3}

	for row := rows - 1; row >= 0; row-- {
		for col := 0; col < cols; col++ {
			if occupied[row][col] {
				continue
			}

			rng.Shuffle(len(kinds), func(i, j int) {
				kinds[i], kinds[j] = kinds[j], kinds[i]
			})

			placed := false
			for _, kind := range kinds {
				rng.Shuffle(len(rotations), func(i, j int) {
					rotations[i], rotations[j] = rotations[j], rotations[i]
				})

				for _, rot := range rotations {
					originRow, originCol, ok := fitAt(occupied, kind, rot, row, col, cols, rows)
					if !ok {
						continue
					}

					piece := Piece{
						ID:        len(pieces),
						Kind:      kind,
						TargetRot: rot,
						TargetRow: originRow,
						TargetCol: originCol,
					}
					for _, c := range piece.TargetCells() {
						occupied[c.Row][c.Col] = true
					}
					pieces = append(pieces, piece)
					placed = true
					break
				}
				if placed {
					break
				}
			}
			if !placed {
				return nil, false
			}
		}
	}
	return pieces, true
}

// fitAt tries every cell of the shape as the anchor aligned to (row, col)
// and returns the origin of the first placement that is in-bounds, uncovered
// and grounded.
func fitAt(occupied [][]bool, kind Kind, rot, row, col, cols, rows int) (originRow, originCol int, ok bool) {
	cells := Cells(kind, rot)

	for _, anchor := range cells {
		oRow := row - anchor.Row
		oCol := col - anchor.Col

		fits := true
		for _, c := range cells {
			r, cc := oRow+c.Row, oCol+c.Col
			if r < 0 || r >= rows || cc < 0 || cc >= cols || occupied[r][cc] {
				fits = false
				break
			}
		}
		if !fits {
			continue
		}

		if grounded(occupied, cells, oRow, oCol, rows) {
			return oRow, oCol, true
		}
	}
	return 0, 0, false
}

// grounded checks that for every column the shape occupies, its lowest cell
// in that column sits on the floor or directly on an already-filled cell.
func grounded(occupied [][]bool, cells [4]Cell, originRow, originCol, rows int) bool {
	lowest := make(map[int]int) // shape column -> lowest shape row
	for _, c := range cells {
		if r, seen := lowest[c.Col]; !seen || c.Row > r {
			lowest[c.Col] = c.Row
		}
	}

	for col, row := range lowest {
		r := originRow + row
		if r == rows-1 {
			continue
		}
		if !occupied[r+1][originCol+col] {
			return false
		}
	}
	return true
}

// fallbackLayout tiles the field deterministically: greedy horizontal 4-runs
// as I pieces, then 2x2 blocks as O pieces, then vertical 4-runs as I
// pieces. With the field sizes the game uses (columns divisible by 4) the
// first pass alone covers every cell.
func fallbackLayout(cols, rows int) []Piece {
	occupied := newGrid(cols, rows)
	var pieces []Piece

	add := func(kind Kind, rot, row, col int) {
		piece := Piece{ID: len(pieces), Kind: kind, TargetRot: rot, TargetRow: row, TargetCol: col}
		for _, c := range piece.TargetCells() {
			occupied[c.Row][c.Col] = true
		}
		pieces = append(pieces, piece)
	}

	free := func(row, col int) bool {
		return row >= 0 && row < rows && col >= 0 && col < cols && !occupied[row][col]
	}

	// Horizontal I runs
	for row := rows - 1; row >= 0; row-- {
		for col := 0; col+3 < cols; col++ {
			if free(row, col) && free(row, col+1) && free(row, col+2) && free(row, col+3) {
				add(KindI, 0, row, col)
			}
		}
	}

	// 2x2 O blocks
	for row := rows - 2; row >= 0; row-- {
		for col := 0; col+1 < cols; col++ {
			if free(row, col) && free(row, col+1) && free(row+1, col) && free(row+1, col+1) {
				add(KindO, 0, row, col)
			}
		}
	}

	// Vertical I runs
	for col := 0; col < cols; col++ {
		for row := rows - 4; row >= 0; row-- {
			if free(row, col) && free(row+1, col) && free(row+2, col) && free(row+3, col) {
				add(KindI, 1, row, col)
			}
		}
	}

	return pieces
}

func newGrid(cols, rows int) [][]bool {
	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
	}
	return grid
}
