package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/platform/tui"
	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. The mouse drives the game: click
to tap, drag to swipe or to trace letters.

Controls:
  Enter/Space  - Start, or retry after game over
  P            - Pause/resume
  R            - Back to the title screen
  Esc/B        - Back to menu (when not playing)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - More lives, slower spawns
  normal  - Configured defaults
  hard    - Fewer lives, faster spawns
  fixed   - No level progression

Examples:
  arcade play neural-hack
  arcade play fruit-slice --difficulty hard
  arcade play word-connect --daily
  arcade play fruit-slice --config ./my-fruit.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	logger := newLogger("play")

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	cfg.Seed = roundSeed(cfg.Seed)
	game, err := registry.Create(gameID, registry.Options{
		Seed:       cfg.Seed,
		ConfigPath: flagConfig,
		Difficulty: preset,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, cfg, tui.GameOptions{
		Store:  store,
		Logger: logger,
		Source: storage.SourceTerminal,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
