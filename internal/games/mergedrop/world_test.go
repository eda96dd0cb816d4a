package mergedrop

import (
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
)

func fallingPhysics() config.MergePhysics {
	return config.MergePhysics{Gravity: 0.02, Damping: 0.99, Restitution: 0.3}
}

func TestBodyFallsToFloor(t *testing.T) {
	w := NewWorld(worldW, worldH, fallingPhysics())
	b := w.Spawn(0, core.Vec2{X: 18, Y: 2})

	for i := 0; i < 600; i++ {
		w.Step(nil)
	}

	if b.Pos.Y+b.Radius > worldH+0.01 {
		t.Errorf("ball sank through the floor: y=%v r=%v", b.Pos.Y, b.Radius)
	}
	if b.Pos.Y < worldH/2 {
		t.Errorf("ball did not fall: y=%v", b.Pos.Y)
	}
}

func TestWallsContainBodies(t *testing.T) {
	w := NewWorld(worldW, worldH, fallingPhysics())
	b := w.Spawn(1, core.Vec2{X: 2, Y: 2})
	b.Vel = core.Vec2{X: -3, Y: 0}

	for i := 0; i < 300; i++ {
		w.Step(nil)
		if b.Pos.X-b.Radius < -0.01 || b.Pos.X+b.Radius > worldW+0.01 {
			t.Fatalf("ball escaped horizontally at x=%v", b.Pos.X)
		}
	}
}

func TestOverlapSeparation(t *testing.T) {
	w := NewWorld(worldW, worldH, stillPhysics())
	a := w.Spawn(2, core.Vec2{X: 10, Y: 10})
	b := w.Spawn(2, core.Vec2{X: 10.4, Y: 10})

	w.Step(nil)

	dist := b.Pos.Sub(a.Pos).Len()
	minDist := a.Radius + b.Radius
	if dist < minDist-1e-9 {
		t.Errorf("bodies still overlap: dist=%v min=%v", dist, minDist)
	}
}

func TestCollisionReportedOncePerTick(t *testing.T) {
	w := NewWorld(worldW, worldH, stillPhysics())
	w.Spawn(2, core.Vec2{X: 10, Y: 10})
	w.Spawn(2, core.Vec2{X: 10.4, Y: 10})

	calls := 0
	w.Step(func(a, b *Body) { calls++ })

	if calls != 1 {
		t.Errorf("collision callback ran %d times, expected 1", calls)
	}
}

func TestRemoveAndFind(t *testing.T) {
	w := NewWorld(worldW, worldH, stillPhysics())
	a := w.Spawn(0, core.Vec2{X: 5, Y: 5})
	b := w.Spawn(1, core.Vec2{X: 15, Y: 5})

	if w.Find(a.ID) != a || w.Find(b.ID) != b {
		t.Fatal("Find should locate live bodies")
	}
	if !w.Remove(a.ID) {
		t.Fatal("Remove should succeed for a live body")
	}
	if w.Remove(a.ID) {
		t.Error("Remove should fail for an already removed body")
	}
	if w.Find(a.ID) != nil {
		t.Error("removed body should not be findable")
	}
	if w.Count() != 1 {
		t.Errorf("count = %d, expected 1", w.Count())
	}
}

func TestCoincidentCentersSeparate(t *testing.T) {
	w := NewWorld(worldW, worldH, stillPhysics())
	a := w.Spawn(0, core.Vec2{X: 10, Y: 10})
	b := w.Spawn(0, core.Vec2{X: 10, Y: 10})

	w.Step(nil)

	if a.Pos == b.Pos {
		t.Error("coincident bodies should be nudged apart")
	}
}
