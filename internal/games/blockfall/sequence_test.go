package blockfall

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

func TestOrderPiecesIsPermutation(t *testing.T) {
	layout := GenerateLayout(testCols, testRows, testAttempts, core.NewRNG(5))
	order := OrderPieces(layout, testCols, testRows, core.NewRNG(5+orderingSeedOffset))

	if len(order) != len(layout) {
		t.Fatalf("order has %d pieces, layout has %d", len(order), len(layout))
	}
	seen := make(map[int]bool)
	for _, p := range order {
		if seen[p.ID] {
			t.Fatalf("piece %d sequenced twice", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestOrderPiecesRespectsSupports(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		layout := GenerateLayout(testCols, testRows, testAttempts, core.NewRNG(seed))
		order := OrderPieces(layout, testCols, testRows, core.NewRNG(seed+orderingSeedOffset))

		// Every piece must be grounded on the pieces sequenced before it.
		checkGrounded(t, order, testCols, testRows)
	}
}

func TestOrderPiecesReachability(t *testing.T) {
	// Replaying the sequence, every piece must be reachable from the spawn
	// row through the cells still free at its turn, unless nothing in its
	// ready set was reachable. Reachable pieces therefore never pass
	// through cells owned by later pieces.
	for seed := uint64(1); seed <= 10; seed++ {
		layout := GenerateLayout(testCols, testRows, testAttempts, core.NewRNG(seed))
		order := OrderPieces(layout, testCols, testRows, core.NewRNG(seed+orderingSeedOffset))

		sim := newGrid(testCols, testRows)
		forced := 0
		for _, p := range order {
			if !canReachTarget(sim, p, testCols, testRows) {
				forced++
			}
			for _, c := range p.TargetCells() {
				sim[c.Row][c.Col] = true
			}
		}

		// Force-placement is the livelock escape hatch, not the norm.
		if forced > len(order)/2 {
			t.Errorf("seed %d: %d of %d pieces force-placed", seed, forced, len(order))
		}
	}
}

func TestOrderPiecesDeterminism(t *testing.T) {
	layout := GenerateLayout(testCols, testRows, testAttempts, core.NewRNG(9))

	o1 := OrderPieces(layout, testCols, testRows, core.NewRNG(77))
	o2 := OrderPieces(layout, testCols, testRows, core.NewRNG(77))
	if !reflect.DeepEqual(o1, o2) {
		t.Error("same ordering seed should produce identical sequences")
	}
}

func TestOrderPiecesBottomFirst(t *testing.T) {
	// The first sequenced piece must touch the field floor.
	layout := GenerateLayout(testCols, testRows, testAttempts, core.NewRNG(3))
	order := OrderPieces(layout, testCols, testRows, core.NewRNG(3+orderingSeedOffset))

	if bottomRow(order[0]) != testRows-1 {
		t.Errorf("first piece bottoms at row %d, expected %d", bottomRow(order[0]), testRows-1)
	}
}

func TestCanReachTarget(t *testing.T) {
	// An O piece at the floor of an empty field is reachable.
	sim := newGrid(4, 6)
	p := Piece{Kind: KindO, TargetRot: 0, TargetRow: 4, TargetCol: 0}
	if !canReachTarget(sim, p, 4, 6) {
		t.Error("open column should be reachable")
	}

	// Wall it off: fill the two rows above the target across the width.
	for col := 0; col < 4; col++ {
		sim[2][col] = true
		sim[3][col] = true
	}
	if canReachTarget(sim, p, 4, 6) {
		t.Error("sealed target should be unreachable")
	}
}
