package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game, plus
per-level progress for campaign games.

Examples:
  puzzles scores towersort
  puzzles scores gradient`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'puzzles play %s' to set the first high score!\n", gameID)
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		// Print scores
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		fmt.Println()
		if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	// Campaign games also have per-level progress
	levels, err := store.AllLevelProgress(gameID)
	if err != nil || len(levels) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Level progress:")
	fmt.Printf("  %-12s  %-6s  %-8s  %s\n", "Level", "Done", "Moves", "Time")
	fmt.Printf("  %-12s  %-6s  %-8s  %s\n", "-----", "----", "-----", "----")
	for _, p := range levels {
		done := "-"
		if p.Completed {
			done = "yes"
		}
		moves := "-"
		if p.BestMoves > 0 {
			moves = fmt.Sprintf("%d", p.BestMoves)
		}
		timeStr := "-"
		if p.BestTime > 0 {
			total := p.BestTime / 1000
			timeStr = fmt.Sprintf("%d:%02d", total/60, total%60)
		}
		fmt.Printf("  %-12s  %-6s  %-8s  %s\n", p.LevelID, done, moves, timeStr)
	}
}
