package blockfall

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// Render draws the field, locked cells, the falling piece and its target
// outline into the screen buffer. Cells are two characters wide.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small - resize to play")
		return
	}

	dst.DrawTextCentered(0, "B L O C K F A L L")

	cols, rows := g.board.Cols(), g.board.Rows()
	fieldW := cols * 2
	startX := (dst.Width() - fieldW) / 2
	topY := 2

	dst.DrawBox(core.NewRect(startX-1, topY-1, fieldW+2, rows+2))

	cell := func(row, col int, r rune, c core.Color) {
		x := startX + col*2
		y := topY + row
		dst.SetColored(x, y, r, c)
		dst.SetColored(x+1, y, r, c)
	}

	// Locked picture cells, colored by the sampler
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if g.board.Occupied(row, col) {
				cell(row, col, '█', g.sampler(row, col, rows, cols))
			}
		}
	}

	if g.hasActive {
		if g.showTargets {
			for _, c := range g.active.Piece.TargetCells() {
				if !g.board.Occupied(c.Row, c.Col) {
					cell(c.Row, c.Col, '░', core.ColorGray)
				}
			}
		}
		for _, c := range g.active.Cells() {
			cell(c.Row, c.Col, '█', core.ColorBrightWhite)
		}
	}

	hudY := topY + rows + 2
	dst.DrawText(2, hudY, fmt.Sprintf("Pieces: %d/%d  Score: %d", g.placed, len(g.order), g.score))
	if g.hasActive {
		dst.DrawText(2, hudY+1, fmt.Sprintf("Falling: %s", g.active.Piece.Kind))
	}

	switch {
	case g.won:
		dst.DrawTextCentered(hudY+2, fmt.Sprintf("Picture complete! Score: %d - press R to play again", g.score))
	case g.gameOver:
		dst.DrawTextCentered(hudY+2, "Piece landed off target - press R to restart")
	case g.paused:
		dst.DrawTextCentered(hudY+2, "PAUSED")
	}
}
