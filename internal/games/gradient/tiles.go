package gradient

import (
	"math"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// Tile is a single cell of the gradient field. Color and CorrectIndex are
// fixed at generation time; only the tile's position in the slice changes.
type Tile struct {
	ID           int
	Color        RGB
	CorrectIndex int
	Anchor       bool // Anchor tiles never shuffle or swap
}

// Generate builds the solved tile set for a level: each tile's color is the
// bilinear interpolation of the four corner colors at its grid position.
// Dimensions of size 1 use 0 for that axis.
func Generate(level Level) []Tile {
	tiles := make([]Tile, 0, level.Rows*level.Cols)
	anchors := level.anchorSet()

	for row := 0; row < level.Rows; row++ {
		for col := 0; col < level.Cols; col++ {
			var x, y float64
			if level.Cols > 1 {
				x = float64(col) / float64(level.Cols-1)
			}
			if level.Rows > 1 {
				y = float64(row) / float64(level.Rows-1)
			}

			idx := row*level.Cols + col
			tiles = append(tiles, Tile{
				ID:           idx,
				Color:        Bilinear(level.TopLeft, level.TopRight, level.BottomLeft, level.BottomRight, x, y),
				CorrectIndex: idx,
				Anchor:       anchors[idx],
			})
		}
	}
	return tiles
}

// Shuffle returns a copy of tiles with the non-anchor positions permuted by
// a Fisher-Yates shuffle. A coincidentally solved result is corrected by
// swapping the first two non-anchor tiles, so the puzzle is never trivially
// complete when at least two movable tiles exist.
func Shuffle(tiles []Tile, rng *core.RNG) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)

	movable := make([]int, 0, len(out))
	for i, t := range out {
		if !t.Anchor {
			movable = append(movable, i)
		}
	}

	rng.Shuffle(len(movable), func(i, j int) {
		out[movable[i]], out[movable[j]] = out[movable[j]], out[movable[i]]
	})

	if Complete(out) && len(movable) >= 2 {
		out[movable[0]], out[movable[1]] = out[movable[1]], out[movable[0]]
	}
	return out
}

// Swap exchanges the tiles at positions i and j, returning a new slice.
// Returns (nil, false) without touching the input when either position is
// out of range or holds an anchor.
func Swap(tiles []Tile, i, j int) ([]Tile, bool) {
	if i < 0 || j < 0 || i >= len(tiles) || j >= len(tiles) || i == j {
		return nil, false
	}
	if tiles[i].Anchor || tiles[j].Anchor {
		return nil, false
	}

	out := make([]Tile, len(tiles))
	copy(out, tiles)
	out[i], out[j] = out[j], out[i]
	return out, true
}

// Complete reports whether every tile sits at its correct index.
func Complete(tiles []Tile) bool {
	for i, t := range tiles {
		if t.CorrectIndex != i {
			return false
		}
	}
	return true
}

// Score returns the percentage of correctly placed tiles, rounded, 0..100.
func Score(tiles []Tile) int {
	if len(tiles) == 0 {
		return 100
	}
	correct := 0
	for i, t := range tiles {
		if t.CorrectIndex == i {
			correct++
		}
	}
	return int(math.Round(float64(correct) * 100 / float64(len(tiles))))
}

// FindHint locates a swap that improves the board. Mutual pairs (two tiles
// each sitting in the other's correct slot) are preferred; otherwise any
// misplaced tile is paired with the occupant of its correct slot, which
// places at least one tile correctly and never lowers the correct count.
// ok is false only when the board is already complete.
func FindHint(tiles []Tile) (i, j int, ok bool) {
	// Mutual pairs first: one swap fixes two tiles.
	for a, ta := range tiles {
		if ta.Anchor || ta.CorrectIndex == a {
			continue
		}
		b := ta.CorrectIndex
		if !tiles[b].Anchor && tiles[b].CorrectIndex == a {
			return a, b, true
		}
	}

	// Any misplaced tile swapped into its correct slot. The occupant of
	// that slot is itself misplaced (correct indices are unique), so the
	// swap cannot lose ground.
	for a, ta := range tiles {
		if ta.Anchor || ta.CorrectIndex == a {
			continue
		}
		b := ta.CorrectIndex
		if !tiles[b].Anchor {
			return a, b, true
		}
	}
	return 0, 0, false
}
