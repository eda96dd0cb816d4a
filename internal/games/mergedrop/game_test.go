package mergedrop

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  26,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must produce identical snapshots.
	cfg := testRuntimeConfig(2024)

	script := make([]core.InputFrame, 300)
	for i := range script {
		script[i] = core.NewInputFrame()
		switch i % 11 {
		case 0:
			script[i].Set(core.ActionLeft)
		case 3:
			script[i].Set(core.ActionRight)
		case 6:
			script[i].Set(core.ActionDrop)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range script {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("determinism failed:\nrun1: %+v\nrun2: %+v", s1, s2)
	}
}

func TestDropCooldown(t *testing.T) {
	cfg := testRuntimeConfig(1)

	g := New()
	g.Reset(cfg)

	drop := core.NewInputFrame()
	drop.Set(core.ActionDrop)

	g.Step(drop)
	if g.drops != 1 {
		t.Fatalf("drops = %d, expected 1", g.drops)
	}
	if g.CanDrop() {
		t.Error("drop gate should close right after a drop")
	}

	// Dropping during the cooldown is ignored.
	g.Step(drop)
	if g.drops != 1 {
		t.Errorf("drops = %d, cooldown should block the second drop", g.drops)
	}

	for i := 0; i < g.cfg.Gameplay.DropCooldownTicks; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.CanDrop() {
		t.Fatal("drop gate should reopen after the cooldown")
	}
	g.Step(drop)
	if g.drops != 2 {
		t.Errorf("drops = %d, expected 2", g.drops)
	}
}

func TestSpawnLevelsRestricted(t *testing.T) {
	cfg := testRuntimeConfig(99)

	g := New()
	g.Reset(cfg)

	max := g.cfg.Gameplay.SpawnMaxLevel
	for i := 0; i < 200; i++ {
		level := g.rollLevel()
		if level < 0 || level > max {
			t.Fatalf("rolled level %d outside 0..%d", level, max)
		}
	}
	if g.currentLevel > max || g.nextLevel > max {
		t.Error("initial spawn levels must come from the restricted subset")
	}
}

func TestDropAdvancesQueue(t *testing.T) {
	cfg := testRuntimeConfig(7)

	g := New()
	g.Reset(cfg)

	next := g.nextLevel
	dropped := g.currentLevel

	drop := core.NewInputFrame()
	drop.Set(core.ActionDrop)
	g.Step(drop)

	if g.currentLevel != next {
		t.Error("next level should become current after a drop")
	}
	if g.world.Count() != 1 {
		t.Fatalf("body count = %d, expected 1", g.world.Count())
	}
	if g.world.Bodies()[0].Level != dropped {
		t.Error("spawned ball should carry the dropped level")
	}
}

func TestGameOverBlocksPlay(t *testing.T) {
	cfg := testRuntimeConfig(5)

	g := New()
	g.Reset(cfg)
	g.ctrl.gameOver = true

	drop := core.NewInputFrame()
	drop.Set(core.ActionDrop)
	g.Step(drop)

	if g.drops != 0 {
		t.Error("drops must not register after game over")
	}
	if !g.State().GameOver {
		t.Error("State should report game over")
	}
}

func TestGamePause(t *testing.T) {
	cfg := testRuntimeConfig(3)

	g := New()
	g.Reset(cfg)

	drop := core.NewInputFrame()
	drop.Set(core.ActionDrop)
	g.Step(drop)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	st := g.Step(in).State
	if !st.Paused {
		t.Fatal("pause action should pause the game")
	}

	y := g.world.Bodies()[0].Pos.Y
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.world.Bodies()[0].Pos.Y != y {
		t.Error("simulation should freeze while paused")
	}
}
