// Package web bridges engine sessions to browsers over WebSocket.
// Every connection gets its own game and session; the browser sends
// pointer and lifecycle commands and receives a snapshot per tick.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/storage"
)

// Config holds configuration for the WebSocket bridge.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the simulation rate for every session.
	TickRate int

	// Seed, when non-zero, makes sessions reproducible: connection n
	// plays with Seed+n. Zero seeds from the clock.
	Seed int64

	Difficulty config.DifficultyPreset

	// AllowedOrigins restricts browser origins. Empty allows any.
	AllowedOrigins []string
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		TickRate: 60,
	}
}

// RunSaver persists finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(r storage.Run) (storage.Run, error)
}

// Server serves games over WebSocket.
type Server struct {
	config   Config
	store    RunSaver
	logger   *log.Logger
	upgrader websocket.Upgrader
	conns    atomic.Int64
	http     *http.Server
}

// NewServer creates a bridge. store may be nil to skip score saving.
func NewServer(cfg Config, store RunSaver, logger *log.Logger) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// Handler returns the HTTP routes of the bridge.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/{game}", s.handleWebSocket)
	mux.HandleFunc("GET /games", s.handleGames)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting WebSocket bridge", "address", s.config.Address)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: cannot serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down WebSocket bridge")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.config.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, o := range s.config.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}

func (s *Server) nextSeed() int64 {
	n := s.conns.Add(1) - 1
	if s.config.Seed != 0 {
		return s.config.Seed + n
	}
	return time.Now().UnixNano()
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("game")
	if !registry.Exists(id) {
		http.Error(w, fmt.Sprintf("unknown game %q", id), http.StatusNotFound)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already replied.
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c, err := s.newConn(ws, id)
	if err != nil {
		s.logger.Error("cannot create game", "game", id, "error", err)
		_ = ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "cannot create game"))
		ws.Close()
		return
	}

	c.logger.Info("session started", "remote", r.RemoteAddr)
	if err := c.serve(r.Context()); err != nil {
		c.logger.Warn("session failed", "error", err)
	}
	c.logger.Info("session ended", "remote", r.RemoteAddr)
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(registry.List()); err != nil {
		s.logger.Warn("cannot write game list", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}
