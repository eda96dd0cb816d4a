package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

// ringPalette maps small color indices (ring colors, ball levels) to
// distinct terminal colors. Indices wrap past the palette end.
var ringPalette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorWhite,
	ColorRed,
	ColorGreen,
	ColorYellow,
}

// PaletteColor returns a terminal color for a small color index.
func PaletteColor(idx int) Color {
	if idx < 0 {
		return ColorDefault
	}
	return ringPalette[idx%len(ringPalette)]
}
