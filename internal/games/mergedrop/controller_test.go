package mergedrop

import (
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// stillPhysics keeps bodies where they are so tests control positions.
func stillPhysics() config.MergePhysics {
	return config.MergePhysics{Gravity: 0, Damping: 1, Restitution: 0}
}

func testController() (*World, *Controller) {
	w := NewWorld(worldW, worldH, stillPhysics())
	return w, NewController(w, dangerLineY, 10)
}

func TestMergeProducesNextLevel(t *testing.T) {
	w, c := testController()

	w.Spawn(2, core.Vec2{X: 10, Y: 10})
	w.Spawn(2, core.Vec2{X: 10.5, Y: 10})

	c.Tick()

	if w.Count() != 1 {
		t.Fatalf("body count = %d, expected 1 after merge", w.Count())
	}
	merged := w.Bodies()[0]
	if merged.Level != 3 {
		t.Errorf("merged level = %d, expected 3", merged.Level)
	}
	if merged.Merging {
		t.Error("merged ball should not carry the merging flag")
	}
	if merged.Radius != Ladder[3].Radius {
		t.Errorf("merged radius = %v, expected %v", merged.Radius, Ladder[3].Radius)
	}
	if c.Score() != Ladder[3].Points {
		t.Errorf("score = %d, expected %d", c.Score(), Ladder[3].Points)
	}
}

func TestCollisionCallbackOnlyQueues(t *testing.T) {
	w, c := testController()

	a := w.Spawn(1, core.Vec2{X: 10, Y: 10})
	b := w.Spawn(1, core.Vec2{X: 10.5, Y: 10})

	c.HandleCollision(a, b)

	if w.Count() != 2 {
		t.Error("collision callback must not mutate the body set")
	}
	if c.PendingMerges() != 1 {
		t.Errorf("pending merges = %d, expected 1", c.PendingMerges())
	}
	if !a.Merging || !b.Merging {
		t.Error("both bodies should be flagged merging")
	}
	if c.Score() != 0 {
		t.Error("score must not change before the drain")
	}
}

func TestFlaggedPairNeverMergesTwice(t *testing.T) {
	w, c := testController()

	a := w.Spawn(1, core.Vec2{X: 10, Y: 10})
	b := w.Spawn(1, core.Vec2{X: 10.5, Y: 10})

	c.HandleCollision(a, b)
	c.HandleCollision(a, b)

	if c.PendingMerges() != 1 {
		t.Errorf("pending merges = %d, expected 1 for a repeated collision", c.PendingMerges())
	}
}

func TestTripleContactMergesOnePair(t *testing.T) {
	w, c := testController()

	// Three level-1 balls in mutual contact: exactly one pair merges.
	w.Spawn(1, core.Vec2{X: 10, Y: 10})
	w.Spawn(1, core.Vec2{X: 11, Y: 10})
	w.Spawn(1, core.Vec2{X: 10.5, Y: 10.8})

	c.Tick()

	if w.Count() != 2 {
		t.Fatalf("body count = %d, expected 2 (one merged pair plus the odd ball)", w.Count())
	}
	if c.Score() != Ladder[2].Points {
		t.Errorf("score = %d, expected a single merge worth %d", c.Score(), Ladder[2].Points)
	}
}

func TestTopLevelNeverMerges(t *testing.T) {
	w, c := testController()

	top := MaxLevel()
	w.Spawn(top, core.Vec2{X: 10, Y: 10})
	w.Spawn(top, core.Vec2{X: 11, Y: 10})

	c.Tick()

	if w.Count() != 2 {
		t.Error("top-level balls must not merge")
	}
	if c.Score() != 0 {
		t.Error("no merge means no score")
	}
}

func TestDifferentLevelsNeverMerge(t *testing.T) {
	w, c := testController()

	w.Spawn(1, core.Vec2{X: 10, Y: 10})
	w.Spawn(2, core.Vec2{X: 10.5, Y: 10})

	c.Tick()

	if w.Count() != 2 || c.Score() != 0 {
		t.Error("different levels must not merge")
	}
}

func TestDangerTimeout(t *testing.T) {
	w, c := testController()

	// A ball parked above the line trips the timeout after the delay.
	w.Spawn(0, core.Vec2{X: 10, Y: 1})

	for i := 0; i < 9; i++ {
		c.Tick()
		if c.GameOver() {
			t.Fatalf("game over after %d ticks, delay is 10", i+1)
		}
	}
	c.Tick()
	if !c.GameOver() {
		t.Error("game should be over after the danger delay")
	}

	// Terminal and one-way.
	c.Tick()
	if !c.GameOver() {
		t.Error("game over must be permanent")
	}
}

func TestDangerTimerResets(t *testing.T) {
	w, c := testController()

	b := w.Spawn(0, core.Vec2{X: 10, Y: 1})

	for i := 0; i < 5; i++ {
		c.Tick()
	}
	// Dip below the line: the continuous timer must restart.
	b.Pos.Y = 10
	c.Tick()
	b.Pos.Y = 1
	for i := 0; i < 9; i++ {
		c.Tick()
	}

	if c.GameOver() {
		t.Error("timer should have reset when the ball left the danger zone")
	}
}

func TestBallBelowLineIsSafe(t *testing.T) {
	w, c := testController()

	w.Spawn(0, core.Vec2{X: 10, Y: 10})
	for i := 0; i < 50; i++ {
		c.Tick()
	}
	if c.GameOver() {
		t.Error("ball resting below the line should never end the game")
	}
}
