package blockfall

import "testing"

func TestBoardMove(t *testing.T) {
	b := NewBoard(6, 8)
	a := Active{Piece: Piece{Kind: KindO}, Rot: 0, Row: 0, Col: 2}

	if !b.Move(&a, 0, 1) {
		t.Fatal("move into open space rejected")
	}
	if a.Col != 3 {
		t.Errorf("col = %d, expected 3", a.Col)
	}

	// Push against the right wall.
	for b.Move(&a, 0, 1) {
	}
	if a.Col != 4 {
		t.Errorf("O piece against the wall of a 6-wide field should sit at col 4, got %d", a.Col)
	}
}

func TestBoardDropAndPlace(t *testing.T) {
	b := NewBoard(6, 8)
	a := Active{Piece: Piece{Kind: KindO}, Rot: 0, Row: 0, Col: 0}

	dist := b.Drop(&a)
	if dist != 6 {
		t.Errorf("drop distance = %d, expected 6", dist)
	}
	if a.Row != 6 {
		t.Errorf("row = %d, expected 6 (piece bottom on the floor)", a.Row)
	}

	b.Place(&a)
	for _, c := range a.Cells() {
		if !b.Occupied(c.Row, c.Col) {
			t.Errorf("cell %v not occupied after place", c)
		}
	}

	// A second drop in the same columns stacks on top.
	a2 := Active{Piece: Piece{Kind: KindO}, Rot: 0, Row: 0, Col: 0}
	b.Drop(&a2)
	if a2.Row != 4 {
		t.Errorf("stacked row = %d, expected 4", a2.Row)
	}
}

func TestBoardRotateWallKick(t *testing.T) {
	b := NewBoard(6, 8)

	// A vertical I near the right wall needs a kick to go horizontal.
	a := Active{Piece: Piece{Kind: KindI}, Rot: 1, Row: 2, Col: 4}
	if !b.Rotate(&a) {
		t.Fatal("rotation with available kicks rejected")
	}
	if a.Rot != 2 {
		t.Errorf("rot = %d, expected 2", a.Rot)
	}
	if a.Col != 2 {
		t.Errorf("kick should pull the piece to col 2, got %d", a.Col)
	}
}

func TestBoardRotateBlocked(t *testing.T) {
	b := NewBoard(4, 8)

	// Fill everything except a single vertical channel.
	for row := 0; row < 8; row++ {
		for col := 0; col < 4; col++ {
			if col != 2 {
				b.occupied[row][col] = true
			}
		}
	}

	a := Active{Piece: Piece{Kind: KindI}, Rot: 1, Row: 2, Col: 2}
	if b.Rotate(&a) {
		t.Error("rotation inside a 1-wide channel should fail")
	}
	if a.Rot != 1 || a.Col != 2 {
		t.Error("failed rotation must leave the piece unchanged")
	}
}

func TestActiveAtTarget(t *testing.T) {
	p := Piece{Kind: KindI, TargetRot: 0, TargetRow: 5, TargetCol: 1}

	tests := []struct {
		name     string
		a        Active
		expected bool
	}{
		{"exact", Active{Piece: p, Rot: 0, Row: 5, Col: 1}, true},
		{"equivalent rotation", Active{Piece: p, Rot: 2, Row: 5, Col: 1}, true},
		{"wrong footprint", Active{Piece: p, Rot: 1, Row: 5, Col: 1}, false},
		{"wrong position", Active{Piece: p, Rot: 0, Row: 4, Col: 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.AtTarget(); got != tc.expected {
				t.Errorf("AtTarget = %v, expected %v", got, tc.expected)
			}
		})
	}
}
