package gradient

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

func grayscaleLevel(rows, cols int, anchors ...int) Level {
	return Level{
		ID: "test", Rows: rows, Cols: cols,
		TopLeft: RGB{0, 0, 0}, TopRight: RGB{255, 255, 255},
		BottomLeft: RGB{255, 255, 255}, BottomRight: RGB{0, 0, 0},
		Anchors: anchors,
	}
}

func TestGenerateSolved(t *testing.T) {
	tiles := Generate(grayscaleLevel(4, 5))

	if len(tiles) != 20 {
		t.Fatalf("expected 20 tiles, got %d", len(tiles))
	}
	if !Complete(tiles) {
		t.Error("generated set should be solved")
	}
	if Score(tiles) != 100 {
		t.Errorf("solved score = %d, expected 100", Score(tiles))
	}
}

func TestGenerateCornerColors(t *testing.T) {
	// A 2x2 grid has every tile at a corner, so tile colors must equal the
	// corner colors exactly.
	level := Level{
		ID: "corners", Rows: 2, Cols: 2,
		TopLeft: RGB{10, 20, 30}, TopRight: RGB{200, 0, 0},
		BottomLeft: RGB{0, 200, 0}, BottomRight: RGB{0, 0, 200},
	}
	tiles := Generate(level)

	expected := []RGB{level.TopLeft, level.TopRight, level.BottomLeft, level.BottomRight}
	for i, want := range expected {
		if tiles[i].Color != want {
			t.Errorf("tile %d color = %v, expected %v", i, tiles[i].Color, want)
		}
	}
}

func TestGenerateSingleRowColumn(t *testing.T) {
	row := Generate(Level{ID: "r", Rows: 1, Cols: 3, TopLeft: RGB{0, 0, 0}, TopRight: RGB{255, 255, 255}})
	if row[0].Color != (RGB{0, 0, 0}) || row[2].Color != (RGB{255, 255, 255}) {
		t.Error("single row should interpolate along the top edge only")
	}

	col := Generate(Level{ID: "c", Rows: 3, Cols: 1, TopLeft: RGB{0, 0, 0}, BottomLeft: RGB{255, 255, 255}})
	if col[0].Color != (RGB{0, 0, 0}) || col[2].Color != (RGB{255, 255, 255}) {
		t.Error("single column should interpolate along the left edge only")
	}
}

func TestShuffleNeverSolved(t *testing.T) {
	level := grayscaleLevel(3, 3, 0, 2, 6, 8)
	solved := Generate(level)

	for seed := uint64(1); seed <= 50; seed++ {
		shuffled := Shuffle(solved, core.NewRNG(seed))

		if Complete(shuffled) {
			t.Errorf("seed %d: shuffle produced a solved board", seed)
		}
		for _, a := range level.Anchors {
			if shuffled[a].CorrectIndex != a {
				t.Errorf("seed %d: anchor %d moved", seed, a)
			}
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	solved := Generate(grayscaleLevel(4, 4))
	shuffled := Shuffle(solved, core.NewRNG(9))

	seen := make(map[int]bool)
	for _, tile := range shuffled {
		if seen[tile.ID] {
			t.Fatalf("duplicate tile ID %d", tile.ID)
		}
		seen[tile.ID] = true
	}
	if len(seen) != len(solved) {
		t.Errorf("shuffle lost tiles: %d of %d", len(seen), len(solved))
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	solved := Generate(grayscaleLevel(3, 3))
	before := make([]Tile, len(solved))
	copy(before, solved)

	Shuffle(solved, core.NewRNG(4))

	if !reflect.DeepEqual(before, solved) {
		t.Error("Shuffle mutated its input")
	}
}

func TestShuffleAllAnchored(t *testing.T) {
	// Fewer than two movable tiles: the board may stay solved.
	level := grayscaleLevel(2, 2, 0, 1, 2, 3)
	shuffled := Shuffle(Generate(level), core.NewRNG(1))
	if !Complete(shuffled) {
		t.Error("fully anchored board should remain solved")
	}
}

func TestSwap(t *testing.T) {
	tiles := Generate(grayscaleLevel(2, 2, 3))

	swapped, ok := Swap(tiles, 0, 1)
	if !ok {
		t.Fatal("legal swap rejected")
	}
	if swapped[0].ID != 1 || swapped[1].ID != 0 {
		t.Error("swap did not exchange the tiles")
	}
	if Complete(swapped) {
		t.Error("board should no longer be solved")
	}
	if tiles[0].ID != 0 {
		t.Error("Swap mutated its input")
	}

	restored, ok := Swap(swapped, 1, 0)
	if !ok || !Complete(restored) {
		t.Error("swapping back should restore the solved board")
	}
}

func TestSwapRejections(t *testing.T) {
	tiles := Generate(grayscaleLevel(2, 2, 3))

	tests := []struct {
		name string
		i, j int
	}{
		{"anchor target", 0, 3},
		{"anchor source", 3, 0},
		{"same index", 1, 1},
		{"negative index", -1, 0},
		{"out of range", 0, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if out, ok := Swap(tiles, tc.i, tc.j); ok || out != nil {
				t.Errorf("Swap(%d, %d) should return (nil, false)", tc.i, tc.j)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tiles := Generate(grayscaleLevel(2, 2))

	swapped, _ := Swap(tiles, 0, 1)
	if got := Score(swapped); got != 50 {
		t.Errorf("2 of 4 correct = %d, expected 50", got)
	}

	if got := Score(nil); got != 100 {
		t.Errorf("empty board score = %d, expected 100", got)
	}

	// 1 of 3 correct rounds to 33.
	three := []Tile{
		{ID: 0, CorrectIndex: 0},
		{ID: 2, CorrectIndex: 2},
		{ID: 1, CorrectIndex: 1},
	}
	if got := Score(three); got != 33 {
		t.Errorf("1 of 3 correct = %d, expected 33", got)
	}
}

func TestFindHintNeverLowersScore(t *testing.T) {
	level := grayscaleLevel(4, 4, 0, 5)

	for seed := uint64(1); seed <= 30; seed++ {
		tiles := Shuffle(Generate(level), core.NewRNG(seed))

		// Apply hints until solved; every hint must improve the board and
		// the loop must terminate.
		for steps := 0; !Complete(tiles); steps++ {
			if steps > len(tiles)*len(tiles) {
				t.Fatalf("seed %d: hints did not converge", seed)
			}
			a, b, ok := FindHint(tiles)
			if !ok {
				t.Fatalf("seed %d: incomplete board yielded no hint", seed)
			}

			before := Score(tiles)
			swapped, ok := Swap(tiles, a, b)
			if !ok {
				t.Fatalf("seed %d: hint (%d, %d) was not a legal swap", seed, a, b)
			}
			if Score(swapped) < before {
				t.Fatalf("seed %d: hint lowered score %d -> %d", seed, before, Score(swapped))
			}
			tiles = swapped
		}
	}
}

func TestFindHintOnSolvedBoard(t *testing.T) {
	tiles := Generate(grayscaleLevel(3, 3))
	if _, _, ok := FindHint(tiles); ok {
		t.Error("solved board should yield no hint")
	}
}

func TestFindHintPrefersMutualPair(t *testing.T) {
	tiles := Generate(grayscaleLevel(3, 3))

	// Create a 3-cycle (1 -> 2 -> 4 -> 1) plus a mutual pair (6, 7).
	tiles[1], tiles[2] = tiles[2], tiles[1]
	tiles[2], tiles[4] = tiles[4], tiles[2]
	tiles[6], tiles[7] = tiles[7], tiles[6]

	a, b, ok := FindHint(tiles)
	if !ok {
		t.Fatal("expected a hint")
	}
	if tiles[a].CorrectIndex != b || tiles[b].CorrectIndex != a {
		t.Errorf("hint (%d, %d) is not the mutual pair", a, b)
	}
}
