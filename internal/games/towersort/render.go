package towersort

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

const pegSpacing = 4

// Render draws the pegs, rings, cursor and HUD into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small - resize to play")
		return
	}

	cfg := g.engine.cfg
	boardW := cfg.Pegs * pegSpacing
	startX := (dst.Width() - boardW) / 2
	topY := 2

	dst.DrawTextCentered(0, "T O W E R   S O R T")

	for p := 0; p < cfg.Pegs; p++ {
		x := startX + p*pegSpacing + pegSpacing/2
		peg := g.engine.pegs[p]

		// Peg pole and base
		for row := 0; row < cfg.Height; row++ {
			dst.SetColored(x, topY+row, '·', core.ColorGray)
		}
		dst.SetColored(x, topY+cfg.Height, '┴', core.ColorGray)

		// Rings, bottom of the slice at the bottom of the pole
		for i, ring := range peg {
			y := topY + cfg.Height - 1 - i
			dst.SetColored(x, y, 'O', core.PaletteColor(int(ring.Color)))
		}

		// Selection and cursor markers
		markerY := topY + cfg.Height + 1
		if p == g.source {
			dst.SetColored(x, markerY, '*', core.ColorBrightYellow)
		}
		if p == g.cursor {
			dst.SetColored(x, markerY+1, '^', core.ColorBrightWhite)
		}
	}

	hudY := topY + cfg.Height + 3
	dst.DrawText(2, hudY, fmt.Sprintf("Moves: %d  Undo: %d", g.engine.MoveCount(), g.engine.HistoryLen()))

	if g.hasHint {
		dst.DrawTextColored(2, hudY+1, fmt.Sprintf("Hint: %d -> %d", g.hintFrom+1, g.hintTo+1), core.ColorBrightCyan)
	} else if g.lastResult == MoveInvalid {
		dst.DrawTextColored(2, hudY+1, "Illegal move", core.ColorBrightRed)
	}

	switch {
	case g.won:
		dst.DrawTextCentered(hudY+2, fmt.Sprintf("Solved! Score: %d - press R to play again", g.score))
	case g.gameOver:
		dst.DrawTextCentered(hudY+2, "No moves left - press R to restart")
	case g.paused:
		dst.DrawTextCentered(hudY+2, "PAUSED")
	}
}
