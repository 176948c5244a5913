package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagTimesLevel  string
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game-id]",
	Short: "Show high scores and best times",
	Long: `Display the top 10 high scores for a mode (default: the campaign),
or the fastest completions of a level with --times.

Examples:
  platformer scores
  platformer scores platformer_practice
  platformer scores --times 01_first_steps
  platformer scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagTimesLevel, "times", "", "Show best completion times for the given level id")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Clear recorded scores and runs")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "platformer"
	if len(args) > 0 {
		gameID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if flagTimesLevel != "" {
			if err := store.ClearRuns(flagTimesLevel); err != nil {
				fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
				os.Exit(1)
			}
		} else {
			if err := store.ClearScores(gameID); err != nil {
				fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Println("Cleared.")
		return
	}

	if flagTimesLevel != "" {
		showBestTimes(store, flagTimesLevel)
		return
	}

	showHighScores(store, gameID)
}

func showBestTimes(store *storage.Store, levelID string) {
	runs, err := store.BestRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s\n", levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No completions recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "Rank", "Time", "Deaths", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "----", "----", "------", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-7d  %s\n", i+1, fmt.Sprintf("%.1fs", run.Millis/1000), run.Deaths, dateStr)
	}
}

func showHighScores(store *storage.Store, gameID string) {
	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
