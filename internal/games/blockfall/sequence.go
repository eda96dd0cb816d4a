package blockfall

import (
	"sort"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// OrderPieces arranges a layout into drop order. A piece depends on every
// piece supporting it from below; among the pieces whose supports are all
// placed, lower target rows go first (bottom of the field fills first), ties
// broken by leftmost column, and exact ties by the ordering RNG. The first
// ready piece whose target is reachable from the spawn row is chosen; if
// none is reachable the first ready piece is force-placed so sequencing
// never stalls.
func OrderPieces(pieces []Piece, cols, rows int, rng *core.RNG) []Piece {
	n := len(pieces)

	cellOwner := make(map[Cell]int, n*4)
	for i, p := range pieces {
		for _, c := range p.TargetCells() {
			cellOwner[c] = i
		}
	}

	deps := make([][]int, n)
	for i, p := range pieces {
		seen := make(map[int]bool)
		for _, c := range p.TargetCells() {
			below := Cell{Row: c.Row + 1, Col: c.Col}
			if below.Row >= rows {
				continue
			}
			if j, ok := cellOwner[below]; ok && j != i && !seen[j] {
				seen[j] = true
				deps[i] = append(deps[i], j)
			}
		}
	}

	placed := make([]bool, n)
	sim := newGrid(cols, rows)
	order := make([]Piece, 0, n)

	for len(order) < n {
		var ready []int
		for i := range pieces {
			if placed[i] {
				continue
			}
			ok := true
			for _, d := range deps[i] {
				if !placed[d] {
					ok = false
					break
				}
			}
			if ok {
				ready = append(ready, i)
			}
		}
		if len(ready) == 0 {
			// Support cycles cannot come out of the generators, but never stall.
			for i := range pieces {
				if !placed[i] {
					ready = append(ready, i)
				}
			}
		}

		rng.Shuffle(len(ready), func(i, j int) {
			ready[i], ready[j] = ready[j], ready[i]
		})
		sort.SliceStable(ready, func(a, b int) bool {
			pa, pb := pieces[ready[a]], pieces[ready[b]]
			ra, rb := bottomRow(pa), bottomRow(pb)
			if ra != rb {
				return ra > rb
			}
			return leftCol(pa) < leftCol(pb)
		})

		chosen := ready[0]
		for _, idx := range ready {
			if canReachTarget(sim, pieces[idx], cols, rows) {
				chosen = idx
				break
			}
		}

		placed[chosen] = true
		for _, c := range pieces[chosen].TargetCells() {
			sim[c.Row][c.Col] = true
		}
		order = append(order, pieces[chosen])
	}
	return order
}

func bottomRow(p Piece) int {
	max := 0
	for _, c := range p.TargetCells() {
		if c.Row > max {
			max = c.Row
		}
	}
	return max
}

func leftCol(p Piece) int {
	min := int(^uint(0) >> 1)
	for _, c := range p.TargetCells() {
		if c.Col < min {
			min = c.Col
		}
	}
	return min
}

// canReachTarget runs a breadth-first search over {down, left, right} unit
// moves at the piece's target rotation, starting from every position that
// fits with its top edge on the spawn row, traversing only unoccupied cells.
func canReachTarget(sim [][]bool, p Piece, cols, rows int) bool {
	cells := Cells(p.Kind, p.TargetRot)

	fits := func(row, col int) bool {
		for _, c := range cells {
			r, cc := row+c.Row, col+c.Col
			if r < 0 || r >= rows || cc < 0 || cc >= cols || sim[r][cc] {
				return false
			}
		}
		return true
	}

	type pos struct{ row, col int }
	target := pos{p.TargetRow, p.TargetCol}
	visited := make(map[pos]bool)
	var queue []pos

	for col := 0; col < cols; col++ {
		start := pos{0, col}
		if fits(start.row, start.col) {
			visited[start] = true
			queue = append(queue, start)
		}
	}

	moves := []pos{{1, 0}, {0, -1}, {0, 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return true
		}
		for _, m := range moves {
			next := pos{cur.row + m.row, cur.col + m.col}
			if visited[next] || !fits(next.row, next.col) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}
