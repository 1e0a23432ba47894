package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/storage"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 4096
	sendBuffer = 64
)

// ErrClosed reports that the peer went away.
var ErrClosed = errors.New("web: connection closed")

// Message types on the wire.
const (
	TypeSnapshot = "snapshot"
	TypeError    = "error"
)

// ClientMessage is a command from the browser. X and Y are playfield
// units; W and H are only read by "resize".
type ClientMessage struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// ServerMessage is a frame sent to the browser.
type ServerMessage struct {
	Type     string           `json:"type"`
	Session  string           `json:"session,omitempty"`
	Snapshot *engine.Snapshot `json:"snapshot,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// conn is one browser playing one game.
type conn struct {
	id     string
	ws     *websocket.Conn
	game   registry.Game
	runner *engine.Runner
	store  RunSaver
	logger *log.Logger
	send   chan ServerMessage
}

func (s *Server) newConn(ws *websocket.Conn, gameID string) (*conn, error) {
	id := uuid.NewString()
	logger := s.logger.With("session", id, "game", gameID)

	game, err := registry.Create(gameID, registry.Options{
		Seed:       s.nextSeed(),
		Difficulty: s.config.Difficulty,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	return &conn{
		id:     id,
		ws:     ws,
		game:   game,
		runner: engine.NewRunner(game.Engine(), s.config.TickRate),
		store:  s.store,
		logger: logger,
		send:   make(chan ServerMessage, sendBuffer),
	}, nil
}

// serve runs the session until the peer leaves or ctx ends.
func (c *conn) serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	// Runner is not started yet, so reading the session here is safe.
	c.send <- c.snapshot(c.game.Engine().Snapshot())

	g.Go(func() error { return c.runner.Run(ctx, c.emit(ctx)) })
	g.Go(func() error { return c.writeLoop(ctx) })
	g.Go(func() error { return c.readLoop(ctx) })
	g.Go(func() error {
		<-ctx.Done()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		return c.ws.Close()
	})

	err := g.Wait()
	if errors.Is(err, ErrClosed) {
		return nil
	}
	return err
}

func (c *conn) snapshot(snap engine.Snapshot) ServerMessage {
	return ServerMessage{Type: TypeSnapshot, Session: c.id, Snapshot: &snap}
}

func (c *conn) enqueue(ctx context.Context, msg ServerMessage) error {
	select {
	case c.send <- msg:
		return nil
	case <-ctx.Done():
		return ErrClosed
	}
}

// emit runs on the runner goroutine.
func (c *conn) emit(ctx context.Context) func(engine.Snapshot) {
	return func(snap engine.Snapshot) {
		c.record(snap)
		_ = c.enqueue(ctx, c.snapshot(snap))
	}
}

// record saves the run when snap carries its GameOver. Failures are logged
// and never reach the player.
func (c *conn) record(snap engine.Snapshot) {
	if c.store == nil || snap.Score <= 0 {
		return
	}
	for _, ev := range snap.Events {
		if ev.Kind != engine.EventGameOver {
			continue
		}
		run := storage.NewRun(c.game.ID(), storage.SourceWeb, snap)
		saved, err := c.store.SaveRun(run)
		if err != nil {
			c.logger.Warn("cannot save run", "error", err)
			return
		}
		c.logger.Info("run saved", "run", saved.RunID, "score", saved.Score)
		return
	}
}

func (c *conn) readLoop(ctx context.Context) error {
	c.ws.SetReadLimit(maxMessage)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return ErrClosed
			}
			return fmt.Errorf("web: read: %w", err)
		}

		cmd, err := ParseCommand(data)
		if err != nil {
			if err := c.enqueue(ctx, ServerMessage{Type: TypeError, Session: c.id, Error: err.Error()}); err != nil {
				return err
			}
			continue
		}
		if err := c.runner.Do(ctx, cmd); err != nil {
			return ErrClosed
		}
	}
}

func (c *conn) writeLoop(ctx context.Context) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteJSON(msg); err != nil {
				return fmt.Errorf("web: write: %w", err)
			}
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("web: ping: %w", err)
			}
		}
	}
}

// ParseCommand decodes a client frame into a session command.
func ParseCommand(data []byte) (func(*engine.Session), error) {
	var m ClientMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}

	p := core.V(m.X, m.Y)
	switch m.Type {
	case "start":
		return (*engine.Session).Start, nil
	case "pause":
		return (*engine.Session).Pause, nil
	case "resume":
		return (*engine.Session).Resume, nil
	case "reset":
		return (*engine.Session).Reset, nil
	case "down":
		return func(s *engine.Session) { s.PointerDown(p) }, nil
	case "move":
		return func(s *engine.Session) { s.PointerMove(p) }, nil
	case "up":
		return (*engine.Session).PointerUp, nil
	case "resize":
		if m.W <= 0 || m.H <= 0 {
			return nil, fmt.Errorf("resize needs positive w and h, got %vx%v", m.W, m.H)
		}
		return func(s *engine.Session) { s.Resize(m.W, m.H) }, nil
	case "":
		return nil, errors.New("message has no type")
	default:
		return nil, fmt.Errorf("unknown message type %q", m.Type)
	}
}
