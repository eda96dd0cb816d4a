package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/games/blockfall"
	"github.com/vovakirdan/tui-puzzles/internal/games/gradient"
	"github.com/vovakirdan/tui-puzzles/internal/games/mergedrop"
	"github.com/vovakirdan/tui-puzzles/internal/games/towersort"
	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the collection with a game picker menu",
	Long: `Start the puzzles in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  puzzles menu
  puzzles menu --fps 60
  puzzles menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db)
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Set config path and options for games before creation
		switch gameID {
		case "towersort":
			towersort.SetConfigPath(flagConfig)

			// Show difficulty selector
			selection, updatedCfg, selErr := tui.RunTowersortSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				continue
			}
			towersort.SetDifficultyPreset(string(selection.Preset))

		case "gradient":
			// Show starting level selector
			selection, updatedCfg, selErr := tui.RunGradientSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				continue
			}
			gradient.SetStartLevel(selection.StartLevel)

		case "blockfall":
			blockfall.SetConfigPath(flagConfig)

		case "mergedrop":
			mergedrop.SetConfigPath(flagConfig)
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if _, err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
