package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTower loads Tower Sort configuration.
// Search order: customPath -> ~/.puzzles/configs/towersort.yaml -> ./configs/towersort.yaml -> embedded default
func LoadTower(customPath string) (TowerConfig, error) {
	var cfg TowerConfig
	if done, err := loadInto(customPath, "towersort.yaml", defaultTowerYAML, &cfg); done {
		return cfg, err
	}
	return DefaultTowerConfig(), nil
}

// LoadBlockfall loads Blockfall configuration.
// Search order: customPath -> ~/.puzzles/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	var cfg BlockfallConfig
	if done, err := loadInto(customPath, "blockfall.yaml", defaultBlockfallYAML, &cfg); done {
		return cfg, err
	}
	return DefaultBlockfallConfig(), nil
}

// LoadMerge loads Merge Drop configuration.
// Search order: customPath -> ~/.puzzles/configs/mergedrop.yaml -> ./configs/mergedrop.yaml -> embedded default
func LoadMerge(customPath string) (MergeConfig, error) {
	var cfg MergeConfig
	if done, err := loadInto(customPath, "mergedrop.yaml", defaultMergeYAML, &cfg); done {
		return cfg, err
	}
	return DefaultMergeConfig(), nil
}

// loadInto resolves the config search order into out.
// Returns done=false only when every source including the embedded default
// failed to parse; the caller then falls back to hardcoded values.
func loadInto(customPath, filename string, embedded []byte, out any) (done bool, err error) {
	// Custom path is authoritative: failures there are reported, not skipped.
	if customPath != "" {
		data, readErr := os.ReadFile(customPath)
		if readErr != nil {
			return true, fmt.Errorf("failed to read config %s: %w", customPath, readErr)
		}
		if parseErr := yaml.Unmarshal(data, out); parseErr != nil {
			return true, fmt.Errorf("failed to parse config %s: %w", customPath, parseErr)
		}
		return true, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, readErr := os.ReadFile(userCfgPath); readErr == nil {
			if parseErr := yaml.Unmarshal(data, out); parseErr == nil {
				return true, nil
			}
		}
	}

	// Try local configs directory
	if data, readErr := os.ReadFile(filepath.Join("configs", filename)); readErr == nil {
		if parseErr := yaml.Unmarshal(data, out); parseErr == nil {
			return true, nil
		}
	}

	// Use embedded default YAML
	if parseErr := yaml.Unmarshal(embedded, out); parseErr == nil {
		return true, nil
	}
	return false, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzles", "configs", filename)
}
