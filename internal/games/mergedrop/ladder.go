// Package mergedrop implements the physics merge game. Balls drop into a
// container, same-level balls merge into the next level on contact, and the
// game ends when a ball lingers above the danger line too long.
package mergedrop

import "github.com/vovakirdan/tui-puzzles/internal/core"

// BallLevel describes one rung of the merge ladder.
type BallLevel struct {
	Name   string
	Radius float64 // Field cells
	Color  core.Color
	Points int
}

// Ladder is the fixed ascending merge progression. Merging two balls of
// level k produces one ball of level k+1 and scores its point value; the
// top level never merges.
var Ladder = []BallLevel{
	{Name: "dot", Radius: 0.7, Color: core.ColorBrightRed, Points: 1},
	{Name: "bead", Radius: 1.0, Color: core.ColorOrange, Points: 3},
	{Name: "pebble", Radius: 1.4, Color: core.ColorBrightYellow, Points: 6},
	{Name: "marble", Radius: 1.8, Color: core.ColorBrightGreen, Points: 10},
	{Name: "orb", Radius: 2.3, Color: core.ColorBrightCyan, Points: 15},
	{Name: "globe", Radius: 2.9, Color: core.ColorBrightBlue, Points: 21},
	{Name: "boulder", Radius: 3.5, Color: core.ColorBrightMagenta, Points: 28},
	{Name: "planet", Radius: 4.2, Color: core.ColorMagenta, Points: 36},
	{Name: "giant", Radius: 5.0, Color: core.ColorCyan, Points: 45},
	{Name: "star", Radius: 5.9, Color: core.ColorBrightWhite, Points: 55},
	{Name: "nova", Radius: 7.0, Color: core.ColorBrightYellow, Points: 66},
}

// MaxLevel returns the index of the top ladder rung.
func MaxLevel() int {
	return len(Ladder) - 1
}
