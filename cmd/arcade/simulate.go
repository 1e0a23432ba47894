package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/venue-arcade/internal/autoplay"
	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/storage"
)

var (
	flagRuns     int
	flagSeconds  float64
	flagAccuracy float64
	flagWorkers  int
	flagSave     bool
	flagJSON     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Let a bot play a game and summarize the scores",
	Long: `Play batches of headless runs with a bot player. Useful for tuning
configs: every run is seeded, so a batch with the same flags always gives
the same scores.

Examples:
  arcade simulate neural-hack --runs 200
  arcade simulate fruit-slice --accuracy 0.6 --config ./my-fruit.yaml
  arcade simulate word-connect --seconds 300 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 20, "Number of runs to play")
	simulateCmd.Flags().Float64Var(&flagSeconds, "seconds", 120, "Cap on simulated seconds per run")
	simulateCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0.85, "Bot skill between 0 and 1")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel runs (0 = one per CPU)")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Store the runs in the scores database")
	simulateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the summary as JSON")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(_ *cobra.Command, args []string) {
	gameID := args[0]
	logger := newLogger("simulate")

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := autoplay.Simulate(ctx, autoplay.Options{
		GameID:     gameID,
		Runs:       flagRuns,
		Seconds:    flagSeconds,
		TickRate:   flagFPS,
		Seed:       roundSeed(seed()),
		Accuracy:   flagAccuracy,
		ConfigPath: flagConfig,
		Difficulty: preset,
		Workers:    flagWorkers,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSave {
		saveResults(gameID, results, logger)
	}

	sum := autoplay.Summarize(results)
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sum); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%s - %d bot runs\n", registry.Title(gameID), sum.Runs)
	fmt.Println()
	fmt.Printf("  Best:    %d\n", sum.Best)
	fmt.Printf("  Median:  %d\n", sum.Median)
	fmt.Printf("  Mean:    %.1f\n", sum.Mean)
	fmt.Printf("  Worst:   %d\n", sum.Worst)
	fmt.Printf("  Level:   %.2f on average\n", sum.MeanLevel)

	reasons := make([]string, 0, len(sum.Reasons))
	for r := range sum.Reasons {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	fmt.Println()
	fmt.Println("  Ended by:")
	for _, r := range reasons {
		fmt.Printf("    %-6s %d\n", r, sum.Reasons[r])
	}
}

func saveResults(gameID string, results []autoplay.Result, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	saved := 0
	for _, r := range results {
		if r.Final.Score <= 0 {
			continue
		}
		if _, err := store.SaveRun(storage.NewRun(gameID, storage.SourceBot, r.Final)); err != nil {
			logger.Warn("could not save run", "run", r.Run, "error", err)
			continue
		}
		saved++
	}
	logger.Info("runs saved", "count", saved)
}
