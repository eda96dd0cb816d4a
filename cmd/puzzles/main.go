// puzzles is a TUI platform for playing picture and sorting puzzles in the terminal.
//
// Usage:
//
//	puzzles list              - List available games
//	puzzles play <game>       - Play a game
//	puzzles menu              - Start menu to pick games interactively
//	puzzles serve             - Start SSH server for remote play
//	puzzles scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.puzzles/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-puzzles/internal/games/blockfall"
	_ "github.com/vovakirdan/tui-puzzles/internal/games/gradient"
	_ "github.com/vovakirdan/tui-puzzles/internal/games/mergedrop"
	_ "github.com/vovakirdan/tui-puzzles/internal/games/towersort"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "TUI Puzzles - Brain teasers in your terminal",
	Long: `TUI Puzzles is a terminal-based collection of picture and sorting
puzzles played directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  puzzles list
  puzzles play towersort
  puzzles menu
  puzzles serve --ssh :2222
  puzzles scores gradient`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puzzles/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
