package gradient

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Level defines a gradient puzzle: grid size, the four corner colors, and
// which indices are fixed anchors.
type Level struct {
	ID          string
	Rows        int
	Cols        int
	TopLeft     RGB
	TopRight    RGB
	BottomLeft  RGB
	BottomRight RGB
	Anchors     []int
}

// anchorSet returns the anchor indices as a lookup map.
func (l Level) anchorSet() map[int]bool {
	set := make(map[int]bool, len(l.Anchors))
	for _, idx := range l.Anchors {
		set[idx] = true
	}
	return set
}

// mustHex parses a hex color for the built-in level table.
func mustHex(s string) RGB {
	c, ok := ParseHex(s)
	if !ok {
		panic(fmt.Sprintf("gradient: bad built-in color %q", s))
	}
	return c
}

// builtinLevels is the campaign progression. Early levels pin the corners
// as anchors; later ones remove anchors and grow the grid.
var builtinLevels = []Level{
	{
		ID: "dawn", Rows: 3, Cols: 3,
		TopLeft: mustHex("#ff9a8b"), TopRight: mustHex("#ff6a88"),
		BottomLeft: mustHex("#ffd3a5"), BottomRight: mustHex("#fd6585"),
		Anchors: []int{0, 2, 6, 8},
	},
	{
		ID: "ocean", Rows: 4, Cols: 4,
		TopLeft: mustHex("#2193b0"), TopRight: mustHex("#6dd5ed"),
		BottomLeft: mustHex("#0b486b"), BottomRight: mustHex("#f56217"),
		Anchors: []int{0, 3, 12, 15},
	},
	{
		ID: "forest", Rows: 4, Cols: 5,
		TopLeft: mustHex("#134e5e"), TopRight: mustHex("#71b280"),
		BottomLeft: mustHex("#2c3e50"), BottomRight: mustHex("#fd746c"),
		Anchors: []int{0, 4},
	},
	{
		ID: "violet", Rows: 5, Cols: 5,
		TopLeft: mustHex("#41295a"), TopRight: mustHex("#2f0743"),
		BottomLeft: mustHex("#8e2de2"), BottomRight: mustHex("#4a00e0"),
		Anchors: []int{12},
	},
	{
		ID: "ember", Rows: 5, Cols: 6,
		TopLeft: mustHex("#f12711"), TopRight: mustHex("#f5af19"),
		BottomLeft: mustHex("#c31432"), BottomRight: mustHex("#240b36"),
		Anchors: nil,
	},
	{
		ID: "mono", Rows: 6, Cols: 6,
		TopLeft: mustHex("#000000"), TopRight: mustHex("#555555"),
		BottomLeft: mustHex("#aaaaaa"), BottomRight: mustHex("#ffffff"),
		Anchors: nil,
	},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(builtinLevels)
}

// GetLevel returns the level at index (0-based), or nil when out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(builtinLevels) {
		return nil
	}
	level := builtinLevels[index]
	return &level
}

// yamlLevel is the on-disk level format for user-supplied level packs.
type yamlLevel struct {
	ID          string `yaml:"id"`
	Rows        int    `yaml:"rows"`
	Cols        int    `yaml:"cols"`
	TopLeft     string `yaml:"top_left"`
	TopRight    string `yaml:"top_right"`
	BottomLeft  string `yaml:"bottom_left"`
	BottomRight string `yaml:"bottom_right"`
	Anchors     []int  `yaml:"anchors"`
}

type yamlLevelFile struct {
	Levels []yamlLevel `yaml:"levels"`
}

// LoadLevels reads extra levels from a YAML file. Colors are "#rrggbb".
func LoadLevels(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gradient: cannot read levels %s: %w", path, err)
	}

	var file yamlLevelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("gradient: cannot parse levels %s: %w", path, err)
	}

	levels := make([]Level, 0, len(file.Levels))
	for _, yl := range file.Levels {
		level, err := yl.toLevel()
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func (yl yamlLevel) toLevel() (Level, error) {
	if yl.Rows < 1 || yl.Cols < 1 {
		return Level{}, fmt.Errorf("gradient: level %q has invalid size %dx%d", yl.ID, yl.Rows, yl.Cols)
	}

	corners := [4]RGB{}
	for i, s := range []string{yl.TopLeft, yl.TopRight, yl.BottomLeft, yl.BottomRight} {
		c, ok := ParseHex(s)
		if !ok {
			return Level{}, fmt.Errorf("gradient: level %q has invalid color %q", yl.ID, s)
		}
		corners[i] = c
	}

	size := yl.Rows * yl.Cols
	for _, a := range yl.Anchors {
		if a < 0 || a >= size {
			return Level{}, fmt.Errorf("gradient: level %q anchor %d out of range", yl.ID, a)
		}
	}

	return Level{
		ID:          yl.ID,
		Rows:        yl.Rows,
		Cols:        yl.Cols,
		TopLeft:     corners[0],
		TopRight:    corners[1],
		BottomLeft:  corners[2],
		BottomRight: corners[3],
		Anchors:     yl.Anchors,
	}, nil
}
