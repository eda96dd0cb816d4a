// Package gradient implements the tile-based gradient-reconstruction puzzle.
// A color field is generated by bilinear interpolation of four corner colors,
// cut into tiles, shuffled (anchors stay put), and solved by pairwise swaps.
package gradient

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Lerp linearly interpolates between two colors. t is clamped to [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	t = core.ClampF(t, 0, 1)
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// Bilinear interpolates four corner colors at normalized position (x, y):
// horizontal lerp along the top and bottom edges, then a vertical lerp
// between those two results.
func Bilinear(topLeft, topRight, bottomLeft, bottomRight RGB, x, y float64) RGB {
	top := Lerp(topLeft, topRight, x)
	bottom := Lerp(bottomLeft, bottomRight, x)
	return Lerp(top, bottom, y)
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" (leading '#' optional). Returns false on
// malformed input.
func ParseHex(s string) (RGB, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, false
	}

	var vals [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, false
		}
		vals[i] = hi<<4 | lo
	}
	return RGB{R: vals[0], G: vals[1], B: vals[2]}, true
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// TerminalColor quantizes an RGB color to the nearest platform palette
// color for terminal rendering. Presentation only; puzzle logic always
// compares exact RGB values.
func TerminalColor(c RGB) core.Color {
	type entry struct {
		color core.Color
		r, g, b int
	}
	palette := []entry{
		{core.ColorBrightRed, 255, 0, 0},
		{core.ColorBrightGreen, 0, 255, 0},
		{core.ColorBrightYellow, 255, 255, 0},
		{core.ColorBrightBlue, 64, 64, 255},
		{core.ColorBrightMagenta, 255, 0, 255},
		{core.ColorBrightCyan, 0, 255, 255},
		{core.ColorBrightWhite, 255, 255, 255},
		{core.ColorOrange, 255, 160, 0},
		{core.ColorRed, 160, 0, 0},
		{core.ColorGreen, 0, 160, 0},
		{core.ColorBlue, 0, 0, 160},
		{core.ColorMagenta, 160, 0, 160},
		{core.ColorCyan, 0, 160, 160},
		{core.ColorGray, 128, 128, 128},
		{core.ColorWhite, 200, 200, 200},
	}

	best := palette[0].color
	bestDist := 1 << 30
	for _, e := range palette {
		dr := int(c.R) - e.r
		dg := int(c.G) - e.g
		db := int(c.B) - e.b
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = e.color
		}
	}
	return best
}
