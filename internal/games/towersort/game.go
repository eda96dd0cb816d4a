package towersort

import (
	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// Scoring constants. The score rewards finishing with few moves and no hints.
const (
	scorePerRing = 4
	movePenalty  = 2
	hintPenalty  = 10
)

// Package-level variables for config (set by CLI before game creation).
var (
	selectedConfigPath string
	selectedPreset     = config.DifficultyEasy
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game.
func SetDifficultyPreset(preset string) {
	selectedPreset = config.ParsePreset(preset)
}

// Game wraps the tower-sort engine for the platform: cursor-driven peg
// selection, undo/hint keys, and win/deadlock presentation.
type Game struct {
	engine *Engine
	tick   uint64

	cursor int
	source int // Selected source peg, -1 when none

	hintFrom  int
	hintTo    int
	hasHint   bool
	hintsUsed int

	lastResult MoveResult
	score      int

	screenW int
	screenH int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a new tower-sort game.
func New() *Game {
	return &Game{source: -1}
}

func init() {
	registry.Register("towersort", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "towersort"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tower Sort"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	towerCfg, err := config.LoadTower(selectedConfigPath)
	if err != nil {
		towerCfg = config.DefaultTowerConfig()
	}
	preset := towerCfg.PresetFor(selectedPreset)

	g.engine = NewEngine(Config{
		Pegs:   preset.Pegs,
		Height: preset.Height,
		Colors: preset.Colors,
	}, core.NewRNG(uint64(cfg.Seed)))

	g.tick = 0
	g.cursor = 0
	g.source = -1
	g.hasHint = false
	g.hintsUsed = 0
	g.lastResult = MoveOK
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.engine.cfg.Pegs*4 + 4
	minH := g.engine.cfg.Height + 8
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.cursor = (g.cursor + g.engine.cfg.Pegs - 1) % g.engine.cfg.Pegs
	case in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % g.engine.cfg.Pegs
	case in.Has(core.ActionConfirm):
		g.handleConfirm()
	case in.Has(core.ActionUndo):
		if g.engine.Undo() {
			g.hasHint = false
			g.lastResult = MoveOK
		}
	case in.Has(core.ActionHint):
		if from, to, ok := g.engine.Hint(); ok {
			g.hintFrom, g.hintTo = from, to
			g.hasHint = true
			g.hintsUsed++
		}
	}

	return core.StepResult{State: g.State()}
}

// handleConfirm picks a source peg or applies a move onto the cursor peg.
func (g *Game) handleConfirm() {
	if g.source == -1 {
		if len(g.engine.pegs[g.cursor]) > 0 {
			g.source = g.cursor
		}
		return
	}

	if g.source == g.cursor {
		g.source = -1
		return
	}

	res := g.engine.Move(g.source, g.cursor)
	g.lastResult = res
	if res != MoveInvalid {
		g.source = -1
		g.hasHint = false
	}

	switch res {
	case MoveWin:
		g.won = true
		g.gameOver = true
		g.score = g.finalScore()
	case MoveDeadlock:
		g.gameOver = true
	}
}

// finalScore computes the win score from moves and hint usage.
func (g *Game) finalScore() int {
	pool := (g.engine.cfg.Pegs - 2) * g.engine.cfg.Height
	s := pool*scorePerRing - g.engine.MoveCount()*movePenalty - g.hintsUsed*hintPenalty
	if s < 0 {
		s = 0
	}
	return s
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}
