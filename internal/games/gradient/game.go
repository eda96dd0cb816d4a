package gradient

import (
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// Scoring constants. Each finished level pays a base award, reduced by
// extra swaps and hint usage, never below the floor.
const (
	levelBaseScore  = 100
	swapPenalty     = 2
	hintPenalty     = 10
	levelScoreFloor = 25
)

// Package-level variables for level selection (set by CLI before game creation).
var (
	startLevel       int
	customLevelsPath string
)

// SetStartLevel sets the campaign level to start from (0-based).
func SetStartLevel(level int) {
	startLevel = level
}

// SetLevelsPath points the next game at a user-supplied YAML level pack
// instead of the built-in campaign.
func SetLevelsPath(path string) {
	customLevelsPath = path
}

// Game wraps the gradient puzzle for the platform: a 2D cursor over the
// tile grid, pairwise swaps, hints, and campaign level progression.
type Game struct {
	levels []Level
	level  int

	tiles []Tile
	rows  int
	cols  int

	rng *core.RNG

	cursorRow int
	cursorCol int
	selected  int // Selected tile index, -1 when none

	hintA    int
	hintB    int
	hasHint  bool
	hints    int
	swaps    int
	rejected bool // Last confirm hit an anchor or invalid pair

	tick           uint64
	levelStartTick uint64
	tickRate       int
	score          int
	results        []registry.LevelResult

	screenW int
	screenH int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a new gradient game.
func New() *Game {
	return &Game{selected: -1}
}

func init() {
	registry.Register("gradient", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "gradient"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Gradient Tiles"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.levels = builtinLevels
	if customLevelsPath != "" {
		if loaded, err := LoadLevels(customLevelsPath); err == nil && len(loaded) > 0 {
			g.levels = loaded
		}
	}

	g.level = startLevel
	if g.level < 0 || g.level >= len(g.levels) {
		g.level = 0
	}

	g.rng = core.NewRNG(uint64(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	g.score = 0
	g.results = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false

	g.loadLevel(g.level)
}

// loadLevel generates and shuffles the tile set for a level and resets
// per-level counters.
func (g *Game) loadLevel(index int) {
	level := g.levels[index]
	g.rows = level.Rows
	g.cols = level.Cols
	g.tiles = Shuffle(Generate(level), g.rng)

	g.cursorRow = 0
	g.cursorCol = 0
	g.selected = -1
	g.hasHint = false
	g.hints = 0
	g.swaps = 0
	g.rejected = false
	g.levelStartTick = g.tick
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the current level.
func (g *Game) checkScreenSize() {
	minW := g.cols*tileW + 4
	minH := g.rows*tileH + 8
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
	case in.Has(core.ActionUp):
		g.cursorRow = (g.cursorRow + g.rows - 1) % g.rows
	case in.Has(core.ActionDown):
		g.cursorRow = (g.cursorRow + 1) % g.rows
	case in.Has(core.ActionLeft):
		g.cursorCol = (g.cursorCol + g.cols - 1) % g.cols
	case in.Has(core.ActionRight):
		g.cursorCol = (g.cursorCol + 1) % g.cols
	case in.Has(core.ActionConfirm):
		g.handleConfirm()
	case in.Has(core.ActionHint):
		if a, b, ok := FindHint(g.tiles); ok {
			g.hintA, g.hintB = a, b
			g.hasHint = true
			g.hints++
		}
	}

	return core.StepResult{State: g.State()}
}

// handleConfirm selects a tile or swaps it with the cursor tile.
func (g *Game) handleConfirm() {
	idx := g.cursorRow*g.cols + g.cursorCol
	g.rejected = false

	if g.selected == -1 {
		if g.tiles[idx].Anchor {
			g.rejected = true
			return
		}
		g.selected = idx
		return
	}

	if g.selected == idx {
		g.selected = -1
		return
	}

	swapped, ok := Swap(g.tiles, g.selected, idx)
	if !ok {
		g.rejected = true
		return
	}

	g.tiles = swapped
	g.swaps++
	g.selected = -1
	g.hasHint = false

	if Complete(g.tiles) {
		g.completeLevel()
	}
}

// completeLevel records the finished level and advances the campaign.
func (g *Game) completeLevel() {
	g.score += g.levelScore()
	g.results = append(g.results, registry.LevelResult{
		LevelID:   g.levels[g.level].ID,
		Completed: true,
		Moves:     g.swaps,
		TimeMS:    g.elapsedMS(),
	})

	if g.level+1 < len(g.levels) {
		g.level++
		g.loadLevel(g.level)
		return
	}

	g.won = true
	g.gameOver = true
}

// levelScore pays the base award minus swap and hint penalties.
func (g *Game) levelScore() int {
	s := levelBaseScore + g.rows*g.cols*swapPenalty - g.swaps*swapPenalty - g.hints*hintPenalty
	if s < levelScoreFloor {
		s = levelScoreFloor
	}
	return s
}

// elapsedMS converts the ticks spent on the current level to milliseconds.
func (g *Game) elapsedMS() int {
	if g.tickRate <= 0 {
		return 0
	}
	return int((g.tick - g.levelStartTick) * 1000 / uint64(g.tickRate))
}

// LevelResults returns the per-level outcomes recorded so far.
func (g *Game) LevelResults() []registry.LevelResult {
	out := make([]registry.LevelResult, len(g.results))
	copy(out, g.results)
	return out
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
