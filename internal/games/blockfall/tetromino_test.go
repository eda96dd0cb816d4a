package blockfall

import "testing"

func TestShapesNormalized(t *testing.T) {
	for kind := Kind(0); kind < KindCount; kind++ {
		for rot := 0; rot < 4; rot++ {
			cells := Cells(kind, rot)

			minRow, minCol := cells[0].Row, cells[0].Col
			seen := make(map[Cell]bool)
			for _, c := range cells {
				if c.Row < minRow {
					minRow = c.Row
				}
				if c.Col < minCol {
					minCol = c.Col
				}
				if seen[c] {
					t.Errorf("%v rot %d: duplicate cell %v", kind, rot, c)
				}
				seen[c] = true
			}
			if minRow != 0 || minCol != 0 {
				t.Errorf("%v rot %d: not normalized, min (%d, %d)", kind, rot, minRow, minCol)
			}
		}
	}
}

func TestShapesConnected(t *testing.T) {
	for kind := Kind(0); kind < KindCount; kind++ {
		for rot := 0; rot < 4; rot++ {
			cells := Cells(kind, rot)
			set := make(map[Cell]bool)
			for _, c := range cells {
				set[c] = true
			}

			// Flood from the first cell.
			visited := map[Cell]bool{cells[0]: true}
			stack := []Cell{cells[0]}
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range []Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					next := Cell{cur.Row + d.Row, cur.Col + d.Col}
					if set[next] && !visited[next] {
						visited[next] = true
						stack = append(stack, next)
					}
				}
			}
			if len(visited) != 4 {
				t.Errorf("%v rot %d: shape not connected", kind, rot)
			}
		}
	}
}

func TestSameFootprint(t *testing.T) {
	tests := []struct {
		kind       Kind
		rotA, rotB int
		expected   bool
	}{
		{KindI, 0, 2, true},
		{KindI, 0, 1, false},
		{KindO, 0, 3, true},
		{KindS, 1, 3, true},
		{KindZ, 0, 2, true},
		{KindT, 0, 2, false},
		{KindL, 1, 3, false},
	}
	for _, tc := range tests {
		if got := SameFootprint(tc.kind, tc.rotA, tc.rotB); got != tc.expected {
			t.Errorf("SameFootprint(%v, %d, %d) = %v, expected %v", tc.kind, tc.rotA, tc.rotB, got, tc.expected)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindI.String() != "I" || KindL.String() != "L" {
		t.Error("unexpected kind names")
	}
	if Kind(99).String() != "?" {
		t.Error("out-of-range kind should stringify as ?")
	}
}
