package towersort

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must produce identical snapshots.
	cfg := testRuntimeConfig(12345)

	script := make([]core.InputFrame, 120)
	for i := range script {
		script[i] = core.NewInputFrame()
		switch i % 6 {
		case 0:
			script[i].Set(core.ActionRight)
		case 2:
			script[i].Set(core.ActionConfirm)
		case 4:
			script[i].Set(core.ActionHint)
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

func TestGameReset(t *testing.T) {
	cfg := testRuntimeConfig(42)

	g := New()
	g.Reset(cfg)

	// Play a few ticks
	for i := 0; i < 30; i++ {
		in := core.NewInputFrame()
		if i%3 == 0 {
			in.Set(core.ActionRight)
		}
		if i%5 == 0 {
			in.Set(core.ActionConfirm)
		}
		g.Step(in)
	}

	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver || g.won {
		t.Error("Reset should clear terminal flags")
	}
	if g.cursor != 0 || g.source != -1 {
		t.Error("Reset should clear cursor and selection")
	}
	if g.engine.MoveCount() != 0 || g.engine.HistoryLen() != 0 {
		t.Error("Reset should rebuild a fresh engine")
	}
}

func TestGameSelectAndMove(t *testing.T) {
	cfg := testRuntimeConfig(7)

	g := New()
	g.Reset(cfg)

	// Select peg 0 as the source.
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if g.source != 0 {
		t.Fatalf("source = %d, expected 0", g.source)
	}

	// Move cursor to the first free peg and confirm: always legal after a deal.
	freePeg := g.engine.cfg.Pegs - 2
	for i := 0; i < freePeg; i++ {
		in = core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
	}
	in = core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)

	if g.engine.MoveCount() != 1 {
		t.Errorf("move count = %d, expected 1", g.engine.MoveCount())
	}
	if g.source != -1 {
		t.Error("source selection should clear after a move")
	}
	if len(g.engine.pegs[freePeg]) == 0 {
		t.Error("free peg should hold the moved block")
	}
}

func TestGameUndoAction(t *testing.T) {
	cfg := testRuntimeConfig(11)

	g := New()
	g.Reset(cfg)

	before := g.engine.State()

	from, to, ok := g.engine.Hint()
	if !ok {
		t.Fatal("fresh deal should have a move")
	}
	g.engine.Move(from, to)

	in := core.NewInputFrame()
	in.Set(core.ActionUndo)
	g.Step(in)

	if !reflect.DeepEqual(before, g.engine.State()) {
		t.Error("undo action did not restore state")
	}
}

func TestGamePause(t *testing.T) {
	cfg := testRuntimeConfig(3)

	g := New()
	g.Reset(cfg)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	st := g.Step(in).State
	if !st.Paused {
		t.Error("pause action should pause the game")
	}

	// Input is ignored while paused.
	in = core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.cursor != 0 {
		t.Error("cursor should not move while paused")
	}
}
