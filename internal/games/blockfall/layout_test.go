package blockfall

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

const (
	testCols     = 8
	testRows     = 12
	testAttempts = 30
)

// checkFullCoverage verifies every field cell is covered by exactly one piece.
func checkFullCoverage(t *testing.T, pieces []Piece, cols, rows int) {
	t.Helper()

	covered := make(map[Cell]int)
	for _, p := range pieces {
		for _, c := range p.TargetCells() {
			covered[c]++
		}
	}

	if len(covered) != cols*rows {
		t.Fatalf("covered %d cells, expected %d", len(covered), cols*rows)
	}
	for c, n := range covered {
		if n != 1 {
			t.Errorf("cell %v covered %d times", c, n)
		}
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			t.Errorf("cell %v out of bounds", c)
		}
	}
}

// checkGrounded verifies every piece is grounded relative to the pieces
// before it in the slice.
func checkGrounded(t *testing.T, pieces []Piece, cols, rows int) {
	t.Helper()

	occupied := newGrid(cols, rows)
	for i, p := range pieces {
		lowest := make(map[int]int)
		for _, c := range p.TargetCells() {
			if r, seen := lowest[c.Col]; !seen || c.Row > r {
				lowest[c.Col] = c.Row
			}
		}
		for col, row := range lowest {
			if row == rows-1 {
				continue
			}
			if !occupied[row+1][col] {
				t.Errorf("piece %d (%v) not grounded at column %d", i, p.Kind, col)
			}
		}
		for _, c := range p.TargetCells() {
			occupied[c.Row][c.Col] = true
		}
	}
}

func TestGenerateLayoutCoversField(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		pieces := GenerateLayout(testCols, testRows, testAttempts, core.NewRNG(seed))
		checkFullCoverage(t, pieces, testCols, testRows)
		checkGrounded(t, pieces, testCols, testRows)
	}
}

func TestGenerateLayoutDeterminism(t *testing.T) {
	p1 := GenerateLayout(testCols, testRows, testAttempts, core.NewRNG(33))
	p2 := GenerateLayout(testCols, testRows, testAttempts, core.NewRNG(33))
	if !reflect.DeepEqual(p1, p2) {
		t.Error("same seed should produce identical layouts")
	}

	p3 := GenerateLayout(testCols, testRows, testAttempts, core.NewRNG(34))
	if reflect.DeepEqual(p1, p3) {
		t.Error("different seeds should produce different layouts")
	}
}

func TestGenerateLayoutVariedSizes(t *testing.T) {
	sizes := []struct{ cols, rows int }{
		{4, 4},
		{8, 12},
		{12, 8},
		{16, 10},
	}
	for _, sz := range sizes {
		pieces := GenerateLayout(sz.cols, sz.rows, testAttempts, core.NewRNG(7))
		checkFullCoverage(t, pieces, sz.cols, sz.rows)
		checkGrounded(t, pieces, sz.cols, sz.rows)
	}
}

func TestFallbackLayoutTilesField(t *testing.T) {
	// Zero attempts forces the fallback path.
	pieces := GenerateLayout(testCols, testRows, 0, core.NewRNG(1))
	checkFullCoverage(t, pieces, testCols, testRows)

	// Columns divisible by 4 means pure horizontal I rows.
	for _, p := range pieces {
		if p.Kind != KindI || p.TargetRot != 0 {
			t.Fatalf("fallback produced %v rot %d, expected horizontal I", p.Kind, p.TargetRot)
		}
	}
}

func TestFallbackLayoutMixedShapes(t *testing.T) {
	// A 6-wide field leaves a 2-wide leftover column for O blocks.
	pieces := fallbackLayout(6, 4)
	checkFullCoverage(t, pieces, 6, 4)

	hasO := false
	for _, p := range pieces {
		if p.Kind == KindO {
			hasO = true
		}
	}
	if !hasO {
		t.Error("expected O blocks in the 2-wide leftover")
	}
}

func TestTargetCells(t *testing.T) {
	p := Piece{Kind: KindO, TargetRot: 0, TargetRow: 3, TargetCol: 5}
	expected := [4]Cell{{3, 5}, {3, 6}, {4, 5}, {4, 6}}
	if p.TargetCells() != expected {
		t.Errorf("TargetCells = %v, expected %v", p.TargetCells(), expected)
	}
}
