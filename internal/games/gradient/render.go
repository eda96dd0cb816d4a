package gradient

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// Each tile is drawn as a small colored block with a one-cell frame for
// the cursor and selection markers.
const (
	tileW = 4
	tileH = 2
)

// Render draws the tile grid, cursor, selection and HUD into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small - resize to play")
		return
	}

	dst.DrawTextCentered(0, "G R A D I E N T")

	boardW := g.cols * tileW
	startX := (dst.Width() - boardW) / 2
	topY := 2

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			tile := g.tiles[idx]
			color := TerminalColor(tile.Color)

			x := startX + col*tileW
			y := topY + row*tileH
			for dy := 0; dy < tileH; dy++ {
				for dx := 0; dx < tileW-1; dx++ {
					dst.SetColored(x+dx, y+dy, '█', color)
				}
			}

			if tile.Anchor {
				dst.SetColored(x+1, y, '▪', core.ColorBlack)
			}
			if idx == g.selected {
				dst.SetColored(x-1, y, '[', core.ColorBrightYellow)
				dst.SetColored(x+tileW-1, y, ']', core.ColorBrightYellow)
			}
			if g.hasHint && (idx == g.hintA || idx == g.hintB) {
				dst.SetColored(x+tileW-1, y+tileH-1, '?', core.ColorBrightCyan)
			}
		}
	}

	// Cursor sits on the frame column left of its tile
	cx := startX + g.cursorCol*tileW - 1
	cy := topY + g.cursorRow*tileH + tileH/2
	dst.SetColored(cx, cy, '>', core.ColorBrightWhite)

	hudY := topY + g.rows*tileH + 1
	level := g.levels[g.level]
	dst.DrawText(2, hudY, fmt.Sprintf("Level %d/%d: %s", g.level+1, len(g.levels), level.ID))
	dst.DrawText(2, hudY+1, fmt.Sprintf("Match: %d%%  Swaps: %d  Score: %d", Score(g.tiles), g.swaps, g.score))

	if g.rejected {
		dst.DrawTextColored(2, hudY+2, "Anchored tile - cannot move", core.ColorBrightRed)
	} else if g.hasHint {
		dst.DrawTextColored(2, hudY+2, "Hint: swap the marked tiles", core.ColorBrightCyan)
	}

	switch {
	case g.won:
		dst.DrawTextCentered(hudY+3, fmt.Sprintf("All gradients restored! Score: %d - press R to play again", g.score))
	case g.paused:
		dst.DrawTextCentered(hudY+3, "PAUSED")
	}
}
