package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the best runs",
	Long: `Display the best recorded runs with their length and seed.
A seed can be passed back to 'dash play --seed' to replay the course.

Examples:
  dash scores
  dash scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(dash.GameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", gameTitle())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dash' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-20s  %s\n", "Rank", "Score", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-20s  %s\n", "----", "-----", "----", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6s  %-20d  %s\n",
			i+1,
			entry.Score,
			runLength(entry.Ticks, flagFPS),
			entry.Seed,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(dash.GameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d   Best: %d   Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
}

// runLength converts a tick count to m:ss at the given rate.
func runLength(ticks, rate int) string {
	if rate <= 0 {
		rate = 60
	}
	d := time.Duration(ticks) * time.Second / time.Duration(rate)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
