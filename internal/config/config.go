// Package config provides YAML-based game configuration loading and
// difficulty management for the puzzle platform.
package config

// TowerPreset defines a single tower-sort board layout.
// Ring pool size is (pegs-2)*height and must divide evenly by colors.
type TowerPreset struct {
	Pegs   int `yaml:"pegs"`
	Height int `yaml:"height"`
	Colors int `yaml:"colors"`
}

// TowerConfig contains all configuration for the Tower Sort game.
type TowerConfig struct {
	Easy   TowerPreset `yaml:"easy"`
	Normal TowerPreset `yaml:"normal"`
	Hard   TowerPreset `yaml:"hard"`
}

// PresetFor returns the board layout for a difficulty preset.
func (c TowerConfig) PresetFor(preset DifficultyPreset) TowerPreset {
	switch preset {
	case DifficultyHard:
		return c.Hard
	case DifficultyNormal:
		return c.Normal
	default:
		return c.Easy
	}
}

// BlockfallConfig contains all configuration for the Blockfall game.
type BlockfallConfig struct {
	Field    BlockfallField    `yaml:"field"`
	Gameplay BlockfallGameplay `yaml:"gameplay"`
}

// BlockfallField defines the playfield dimensions.
// The fallback tiling requires cols divisible by 4 and even rows.
type BlockfallField struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// BlockfallGameplay defines generation and pacing parameters.
type BlockfallGameplay struct {
	LayoutAttempts int `yaml:"layout_attempts"` // Retry budget for the randomized fill
	FallEveryTicks int `yaml:"fall_every_ticks"`
	PiecePoints    int `yaml:"piece_points"` // Score per correctly placed piece
}

// MergeConfig contains all configuration for the Merge Drop game.
type MergeConfig struct {
	Physics  MergePhysics  `yaml:"physics"`
	Gameplay MergeGameplay `yaml:"gameplay"`
}

// MergePhysics defines simulation parameters.
type MergePhysics struct {
	Gravity     float64 `yaml:"gravity"`     // Cells per tick squared
	Damping     float64 `yaml:"damping"`     // Velocity retained per tick (0-1)
	Restitution float64 `yaml:"restitution"` // Bounce energy retained (0-1)
}

// MergeGameplay defines drop gating and loss detection.
type MergeGameplay struct {
	DropCooldownTicks int `yaml:"drop_cooldown_ticks"`
	DangerDelayTicks  int `yaml:"danger_delay_ticks"` // Continuous ticks above the line before game over
	SpawnMaxLevel     int `yaml:"spawn_max_level"`    // Spawn levels drawn from 0..SpawnMaxLevel
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a user-supplied string to a preset, defaulting to easy.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyNormal:
		return DifficultyNormal
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}
