// arcade runs the venue minigames: Neural Hack, Fruit Slice and Word Connect.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in this terminal
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Serve the games over SSH and WebSocket
//	arcade scores <game>     - Show high scores for a game
//	arcade simulate <game>   - Let a bot play batches of runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--daily              - Seed from today's date
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/venue-arcade/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/venue-arcade/internal/games/fruitslice"
	_ "github.com/vovakirdan/venue-arcade/internal/games/neuralhack"
	_ "github.com/vovakirdan/venue-arcade/internal/games/wordconnect"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDaily    bool
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Venue Arcade - pointer minigames in your terminal",
	Long: `Venue Arcade runs three short pointer-driven minigames: tap the falling
nodes in Neural Hack, swipe through fruit in Fruit Slice and trace hidden
words in Word Connect. Play locally, or serve them over SSH and WebSocket.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  serve     - Start the SSH and WebSocket servers
  scores    - View high scores
  simulate  - Run bot players and summarize their scores

Examples:
  arcade list
  arcade play fruit-slice
  arcade menu --daily
  arcade serve --ssh :2222 --ws :8080
  arcade simulate neural-hack --runs 100`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDaily, "daily", false, "Use today's shared seed (overrides --seed)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the stderr logger from --log-level. An unknown level
// falls back to info with a warning.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// seed resolves --daily and --seed. Zero leaves seeding to the caller.
func seed() int64 {
	if flagDaily {
		return core.DailySeed(time.Now())
	}
	return flagSeed
}

// roundSeed returns pinned, or a clock seed when nothing was pinned.
func roundSeed(pinned int64) int64 {
	if pinned != 0 {
		return pinned
	}
	return time.Now().UnixNano()
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = seed()
	return cfg
}
