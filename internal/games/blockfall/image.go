package blockfall

import "github.com/vovakirdan/tui-puzzles/internal/core"

// Sampler supplies the color of a field cell in the finished picture. The
// platform may inject one backed by a real image; without it pieces are
// colored by the deterministic gradient fallback.
type Sampler func(row, col, rows, cols int) core.Color

// GradientSampler is the fallback picture: a diagonal sweep across the
// bright palette, a pure function of cell position and field size.
func GradientSampler(row, col, rows, cols int) core.Color {
	span := rows + cols - 2
	if span <= 0 {
		return core.ColorBrightWhite
	}
	ramp := []core.Color{
		core.ColorBrightBlue,
		core.ColorBrightCyan,
		core.ColorBrightGreen,
		core.ColorBrightYellow,
		core.ColorOrange,
		core.ColorBrightRed,
		core.ColorBrightMagenta,
	}
	idx := (row + col) * (len(ramp) - 1) / span
	return ramp[idx]
}
