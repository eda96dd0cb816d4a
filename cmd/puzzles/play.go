package main

import (
	"fmt"
	"os"

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

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelPack  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move cursor or piece
  Enter       - Select / confirm
  Space       - Hard drop / release ball
  X or Up     - Rotate piece
  U           - Undo move
  H           - Hint
  P           - Pause
  R           - Restart (after game over)
  B/Esc       - Back to menu
  Q/Ctrl+C    - Quit

Examples:
  puzzles play towersort
  puzzles play towersort --difficulty hard
  puzzles play gradient --level 3
  puzzles play gradient --levels ./my-levels.yaml
  puzzles play blockfall --config ./blockfall.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Tower Sort difficulty: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Gradient campaign level to start from (1-based)")
	playCmd.Flags().StringVar(&flagLevelPack, "levels", "", "Path to a custom gradient level pack YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the pre-game selectors
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Set config path and options for games before creation
	switch gameID {
	case "towersort":
		towersort.SetConfigPath(flagConfig)

		if flagDifficulty != "" {
			towersort.SetDifficultyPreset(flagDifficulty)
			break
		}

		// Show difficulty selector
		selection, updatedCfg, selErr := tui.RunTowersortSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		towersort.SetDifficultyPreset(string(selection.Preset))

	case "gradient":
		gradient.SetLevelsPath(flagLevelPack)

		if flagLevel > 0 {
			gradient.SetStartLevel(flagLevel - 1)
			break
		}

		// Show starting level selector
		selection, updatedCfg, selErr := tui.RunGradientSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
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
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
