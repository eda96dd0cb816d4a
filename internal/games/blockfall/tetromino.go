// Package blockfall implements the falling-piece picture-assembly puzzle.
// A rectangular field is pre-tiled into tetromino pieces by a seeded greedy
// algorithm; the player drops each piece in sequence onto its target cells.
package blockfall

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindCount
)

// String returns the conventional one-letter shape name.
func (k Kind) String() string {
	names := [...]string{"I", "O", "T", "S", "Z", "J", "L"}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Cell is a field coordinate. Row 0 is the top of the field.
type Cell struct {
	Row int
	Col int
}

// shapes holds the cell offsets of every kind at every rotation, normalized
// so the minimum row and column are both 0. Rotation steps are clockwise.
var shapes = [KindCount][4][4]Cell{
	KindI: {
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	},
	KindO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	KindT: {
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	KindS: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	KindZ: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	KindJ: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 0}, {2, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	KindL: {
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
}

// Cells returns the normalized cell offsets for a kind at a rotation.
func Cells(k Kind, rot int) [4]Cell {
	return shapes[k][((rot%4)+4)%4]
}

// SameFootprint reports whether two rotations of a kind occupy identical
// cells. True for the symmetric kinds (I, S, Z have period 2; O period 1).
func SameFootprint(k Kind, rotA, rotB int) bool {
	return Cells(k, rotA) == Cells(k, rotB)
}
