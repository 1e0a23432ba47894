package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/platform/tui"
	"github.com/vovakirdan/venue-arcade/internal/platform/web"
	"github.com/vovakirdan/venue-arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagWSAddr      string
	flagHostKey     string
	flagIdleTimeout int
	flagOrigins     []string
	flagServePreset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH and WebSocket servers",
	Long: `Start the servers that let players connect remotely.

SSH players get their own terminal session with a game picker menu.
WebSocket clients connect to /ws/<game> and drive a session with JSON
messages; each finished run is stored alongside the terminal ones, so all
players share one leaderboard.

Pass an empty address to disable a server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # SSH on :23234, WebSocket on :8080
  arcade serve --ssh :2222 --ws ""       # SSH only, on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --origin https://venue.example

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagWSAddr, "ws", ":8080", "WebSocket server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringSliceVar(&flagOrigins, "origin", nil, "Allowed browser origins for WebSocket clients (default any)")
	serveCmd.Flags().StringVar(&flagServePreset, "difficulty", "", "Difficulty preset for served games")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("serve")

	if flagSSHAddr == "" && flagWSAddr == "" {
		fmt.Fprintln(os.Stderr, "Error: both servers are disabled")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagServePreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		sshServer, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     flagSSHAddr,
			HostKeyPath: flagHostKey,
			IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
			TickRate:    flagFPS,
			Difficulty:  preset,
		}, store, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
			os.Exit(1)
		}
		g.Go(func() error { return sshServer.ListenAndServe(ctx) })
		logger.Info("connect with ssh", "address", flagSSHAddr)
	}

	if flagWSAddr != "" {
		webServer := web.NewServer(web.Config{
			Address:        flagWSAddr,
			TickRate:       flagFPS,
			Seed:           seed(),
			Difficulty:     preset,
			AllowedOrigins: flagOrigins,
		}, store, logger.WithPrefix("web"))
		g.Go(func() error { return webServer.ListenAndServe(ctx) })
	}

	logger.Info("press Ctrl+C to stop")
	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		store.Close()
		os.Exit(1)
	}
	logger.Info("servers stopped")
}
