package blockfall

import (
	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// orderingSeedOffset separates the piece-ordering RNG stream from the
// layout stream so the two kinds of decisions never correlate.
const orderingSeedOffset = 12345

// Package-level variables for config (set by CLI before game creation).
var (
	selectedConfigPath string
	selectedSampler    Sampler = GradientSampler
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetSampler injects a picture sampler for the next game. Passing nil
// restores the gradient fallback.
func SetSampler(s Sampler) {
	if s == nil {
		s = GradientSampler
	}
	selectedSampler = s
}

// Game drives the piece sequence over the board: spawn, steer, lock,
// repeat until the picture is assembled or a piece rests off target.
type Game struct {
	cfg   config.BlockfallConfig
	board *Board
	order []Piece

	active    Active
	hasActive bool
	nextIdx   int
	placed    int

	sampler     Sampler
	showTargets bool

	tick      uint64
	fallEvery uint64
	score     int

	screenW int
	screenH int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a new blockfall game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	bfCfg, err := config.LoadBlockfall(selectedConfigPath)
	if err != nil {
		bfCfg = config.DefaultBlockfallConfig()
	}
	g.cfg = bfCfg

	cols, rows := bfCfg.Field.Cols, bfCfg.Field.Rows
	seed := uint64(cfg.Seed)
	layout := GenerateLayout(cols, rows, bfCfg.Gameplay.LayoutAttempts, core.NewRNG(seed))
	g.order = OrderPieces(layout, cols, rows, core.NewRNG(seed+orderingSeedOffset))

	g.board = NewBoard(cols, rows)
	g.hasActive = false
	g.nextIdx = 0
	g.placed = 0
	g.sampler = selectedSampler
	g.showTargets = true
	g.tick = 0
	g.fallEvery = uint64(bfCfg.Gameplay.FallEveryTicks)
	if g.fallEvery == 0 {
		g.fallEvery = 1
	}
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false
	g.checkScreenSize()

	g.spawn()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Field.Cols*2 + 8
	minH := g.cfg.Field.Rows + 6
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// spawn activates the next piece of the sequence at the spawn row, as close
// to its target column as the walls allow. Ends the game when the piece
// cannot legally enter the field, and wins it when the sequence is done.
func (g *Game) spawn() {
	if g.nextIdx >= len(g.order) {
		g.won = true
		g.gameOver = true
		g.hasActive = false
		return
	}

	piece := g.order[g.nextIdx]
	g.nextIdx++

	col := piece.TargetCol
	maxCol := g.board.Cols() - shapeWidth(piece.Kind, piece.TargetRot)
	col = core.Clamp(col, 0, maxCol)

	if !g.board.CanPlace(piece.Kind, piece.TargetRot, 0, col) {
		g.gameOver = true
		g.hasActive = false
		return
	}

	g.active = Active{Piece: piece, Rot: piece.TargetRot, Row: 0, Col: col}
	g.hasActive = true
}

func shapeWidth(kind Kind, rot int) int {
	w := 0
	for _, c := range Cells(kind, rot) {
		if c.Col+1 > w {
			w = c.Col + 1
		}
	}
	return w
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
	if g.paused || g.gameOver || !g.hasActive {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.board.Move(&g.active, 0, -1)
	case in.Has(core.ActionRight):
		g.board.Move(&g.active, 0, 1)
	case in.Has(core.ActionRotate), in.Has(core.ActionUp):
		g.board.Rotate(&g.active)
	case in.Has(core.ActionDown):
		if !g.board.Move(&g.active, 1, 0) {
			g.lock()
			return core.StepResult{State: g.State()}
		}
	case in.Has(core.ActionDrop):
		g.board.Drop(&g.active)
		g.lock()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionHint):
		g.showTargets = !g.showTargets
	}

	// Gravity
	if g.tick%g.fallEvery == 0 {
		if !g.board.Move(&g.active, 1, 0) {
			g.lock()
		}
	}

	return core.StepResult{State: g.State()}
}

// lock commits the resting piece. A piece that rests anywhere but its
// target cells ruins the picture and ends the game.
func (g *Game) lock() {
	if !g.active.AtTarget() {
		g.gameOver = true
		g.hasActive = false
		return
	}

	g.order[g.nextIdx-1].SpinOffset = (g.active.Piece.TargetRot - g.active.Rot + 4) % 4
	g.board.Place(&g.active)
	g.placed++
	g.score += g.cfg.Gameplay.PiecePoints
	g.hasActive = false

	g.spawn()
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
