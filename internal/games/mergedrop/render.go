package mergedrop

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// Render draws the container, balls, danger line and drop cursor into the
// screen buffer. One field cell maps to one screen cell.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small - resize to play")
		return
	}

	dst.DrawTextCentered(0, "M E R G E   D R O P")

	w, h := int(worldW), int(worldH)
	startX := (dst.Width() - w) / 2
	topY := 2

	dst.DrawBox(core.NewRect(startX-1, topY-1, w+2, h+2))

	// Danger line
	dangerY := float64(dangerLineY)
	lineY := topY + int(dangerY)
	for x := 0; x < w; x++ {
		if x%2 == 0 {
			dst.SetColored(startX+x, lineY, '-', core.ColorRed)
		}
	}

	// Balls: a filled disc per body, level color
	for _, b := range g.world.Bodies() {
		level := Ladder[b.Level]
		cx, cy := b.Pos.X, b.Pos.Y
		r := b.Radius
		for dy := -int(r); dy <= int(r); dy++ {
			for dx := -int(r); dx <= int(r); dx++ {
				if float64(dx*dx+dy*dy) > r*r {
					continue
				}
				x := startX + int(cx) + dx
				y := topY + int(cy) + dy
				if x >= startX && x < startX+w && y >= topY && y < topY+h {
					dst.SetColored(x, y, '●', level.Color)
				}
			}
		}
	}

	// Drop cursor above the container
	cursorX := startX + int(g.dropX)
	cursorColor := Ladder[g.currentLevel].Color
	if !g.CanDrop() {
		cursorColor = core.ColorGray
	}
	dst.SetColored(cursorX, topY-1, '▼', cursorColor)

	hudY := topY + h + 2
	dst.DrawText(2, hudY, fmt.Sprintf("Score: %d  Balls: %d", g.ctrl.Score(), g.world.Count()))
	dst.DrawTextColored(2, hudY+1,
		fmt.Sprintf("Now: %s  Next: %s", Ladder[g.currentLevel].Name, Ladder[g.nextLevel].Name),
		core.ColorBrightWhite)

	switch {
	case g.ctrl.GameOver():
		dst.DrawTextCentered(hudY+2, fmt.Sprintf("Overflow! Score: %d - press R to restart", g.ctrl.Score()))
	case g.paused:
		dst.DrawTextCentered(hudY+2, "PAUSED")
	}
}
