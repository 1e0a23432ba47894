package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/storage"
)

var flagRecent bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 runs for the specified game, followed by totals.

Examples:
  arcade scores neural-hack
  arcade scores word-connect --recent`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	heading := "High Scores"
	load := store.TopScores
	if flagRecent {
		heading = "Recent Runs"
		load = store.RecentRuns
	}

	runs, err := load(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("%s - %s\n", heading, registry.Title(gameID))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-5s  %s\n", "Rank", "Score", "Lvl", "Combo", "Time", "From", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-5s  %s\n", "----", "-----", "---", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-6s  %-5s  %s\n",
			i+1, r.Score, r.Level, r.MaxCombo,
			(time.Duration(r.Duration) * time.Second).String(),
			r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Best combo: %d  |  Played: %s\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestCombo,
		(time.Duration(stats.PlaySecs) * time.Second).String())
}
