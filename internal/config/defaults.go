package config

import (
	_ "embed"
)

//go:embed defaults/towersort.yaml
var defaultTowerYAML []byte

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

//go:embed defaults/mergedrop.yaml
var defaultMergeYAML []byte

// DefaultTowerConfig returns the default Tower Sort configuration.
// Every preset keeps (pegs-2)*height divisible by colors.
func DefaultTowerConfig() TowerConfig {
	return TowerConfig{
		Easy:   TowerPreset{Pegs: 7, Height: 7, Colors: 5},
		Normal: TowerPreset{Pegs: 8, Height: 6, Colors: 6},
		Hard:   TowerPreset{Pegs: 9, Height: 8, Colors: 7},
	}
}

// DefaultBlockfallConfig returns the default Blockfall configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Field: BlockfallField{
			Cols: 8,
			Rows: 12,
		},
		Gameplay: BlockfallGameplay{
			LayoutAttempts: 30,
			FallEveryTicks: 30,
			PiecePoints:    10,
		},
	}
}

// DefaultMergeConfig returns the default Merge Drop configuration.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		Physics: MergePhysics{
			Gravity:     0.02,
			Damping:     0.99,
			Restitution: 0.3,
		},
		Gameplay: MergeGameplay{
			DropCooldownTicks: 30,
			DangerDelayTicks:  180, // 3 seconds at 60fps
			SpawnMaxLevel:     4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "towersort":
		return defaultTowerYAML
	case "blockfall":
		return defaultBlockfallYAML
	case "mergedrop":
		return defaultMergeYAML
	default:
		return nil
	}
}
