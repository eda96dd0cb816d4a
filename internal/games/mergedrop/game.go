package mergedrop

import (
	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// Container dimensions in field cells and the height of the danger line
// below the container top.
const (
	worldW      = 36.0
	worldH      = 18.0
	dangerLineY = 3.5

	dropStep = 1.0 // Cursor movement per tick held
)

// Package-level variable for config (set by CLI before game creation).
var selectedConfigPath string

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// Game wraps the merge controller for the platform: a horizontal drop
// cursor, drop cooldown gating, and the spawn-level draw.
type Game struct {
	cfg   config.MergeConfig
	world *World
	ctrl  *Controller
	rng   *core.RNG

	dropX        float64
	currentLevel int
	nextLevel    int
	cooldown     int

	tick  uint64
	drops int

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a new merge-drop game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("mergedrop", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mergedrop"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Merge Drop"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mCfg, err := config.LoadMerge(selectedConfigPath)
	if err != nil {
		mCfg = config.DefaultMergeConfig()
	}
	g.cfg = mCfg

	g.world = NewWorld(worldW, worldH, mCfg.Physics)
	g.ctrl = NewController(g.world, dangerLineY, mCfg.Gameplay.DangerDelayTicks)
	g.rng = core.NewRNG(uint64(cfg.Seed))

	g.dropX = worldW / 2
	g.currentLevel = g.rollLevel()
	g.nextLevel = g.rollLevel()
	g.cooldown = 0
	g.tick = 0
	g.drops = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.checkScreenSize()
}

// rollLevel draws a spawn level from the restricted low-level subset.
func (g *Game) rollLevel() int {
	max := core.Clamp(g.cfg.Gameplay.SpawnMaxLevel, 0, MaxLevel()-1)
	return g.rng.Intn(max + 1)
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := int(worldW) + 6
	minH := int(worldH) + 6
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick. The simulation keeps running even
// without input; only the drop cursor is player-driven.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.ctrl.GameOver() {
		return core.StepResult{State: g.State()}
	}

	radius := Ladder[g.currentLevel].Radius
	switch {
	case in.Has(core.ActionLeft):
		g.dropX = core.ClampF(g.dropX-dropStep, radius, worldW-radius)
	case in.Has(core.ActionRight):
		g.dropX = core.ClampF(g.dropX+dropStep, radius, worldW-radius)
	case in.Has(core.ActionConfirm) || in.Has(core.ActionDrop):
		g.tryDrop()
	}

	if g.cooldown > 0 {
		g.cooldown--
	}

	g.ctrl.Tick()
	return core.StepResult{State: g.State()}
}

// tryDrop releases the current ball unless the cooldown is still running.
func (g *Game) tryDrop() {
	if g.cooldown > 0 {
		return
	}

	radius := Ladder[g.currentLevel].Radius
	x := core.ClampF(g.dropX, radius, worldW-radius)
	g.world.Spawn(g.currentLevel, core.Vec2{X: x, Y: radius})

	g.drops++
	g.cooldown = g.cfg.Gameplay.DropCooldownTicks
	g.currentLevel = g.nextLevel
	g.nextLevel = g.rollLevel()
}

// CanDrop reports whether the drop gate is open.
func (g *Game) CanDrop() bool {
	return g.cooldown == 0 && !g.ctrl.GameOver()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.Score(),
		GameOver: g.ctrl.GameOver(),
		Won:      false,
		Paused:   g.paused || g.tooSmall,
	}
}
