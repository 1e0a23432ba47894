package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/venue-arcade/internal/engine"
	_ "github.com/vovakirdan/venue-arcade/internal/games/fruitslice"
	_ "github.com/vovakirdan/venue-arcade/internal/games/neuralhack"
	_ "github.com/vovakirdan/venue-arcade/internal/games/wordconnect"
	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/storage"
)

type memStore struct {
	mu   sync.Mutex
	runs []storage.Run
	err  error
}

func (m *memStore) SaveRun(r storage.Run) (storage.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return storage.Run{}, m.err
	}
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	m.runs = append(m.runs, r)
	return r, nil
}

func newTestServer(t *testing.T, store RunSaver) *httptest.Server {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	srv := NewServer(Config{TickRate: 60, Seed: 1}, store, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server, game string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/" + game
	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { ws.Close() })
	return ws
}

// readUntil reads frames until match accepts one or the deadline passes.
func readUntil(t *testing.T, ws *websocket.Conn, match func(ServerMessage) bool) ServerMessage {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var msg ServerMessage
		require.NoError(t, ws.ReadJSON(&msg))
		if match(msg) {
			return msg
		}
	}
}

func send(t *testing.T, ws *websocket.Conn, m ClientMessage) {
	t.Helper()
	require.NoError(t, ws.WriteJSON(m))
}

func TestBridgeStartPlaying(t *testing.T) {
	ts := newTestServer(t, nil)
	ws := dial(t, ts, "neural-hack")

	first := readUntil(t, ws, func(ServerMessage) bool { return true })
	require.Equal(t, TypeSnapshot, first.Type)
	require.NotNil(t, first.Snapshot)
	assert.Equal(t, engine.StatusIdle, first.Snapshot.Status)
	_, err := uuid.Parse(first.Session)
	assert.NoError(t, err, "session id should be a uuid")

	send(t, ws, ClientMessage{Type: "start"})
	playing := readUntil(t, ws, func(m ServerMessage) bool {
		return m.Snapshot != nil && m.Snapshot.Status == engine.StatusPlaying
	})
	assert.Equal(t, first.Session, playing.Session)
	assert.Equal(t, 3, playing.Snapshot.Lives)

	// Ticks keep arriving while playing.
	ticked := readUntil(t, ws, func(m ServerMessage) bool {
		return m.Snapshot != nil && m.Snapshot.Elapsed > 0
	})
	assert.Equal(t, engine.StatusPlaying, ticked.Snapshot.Status)

	send(t, ws, ClientMessage{Type: "pause"})
	readUntil(t, ws, func(m ServerMessage) bool {
		return m.Snapshot != nil && m.Snapshot.Status == engine.StatusPaused
	})
}

func TestBridgeResize(t *testing.T) {
	ts := newTestServer(t, nil)
	ws := dial(t, ts, "fruit-slice")
	readUntil(t, ws, func(ServerMessage) bool { return true })

	send(t, ws, ClientMessage{Type: "resize", W: 1200, H: 700})
	msg := readUntil(t, ws, func(m ServerMessage) bool { return m.Snapshot != nil && m.Snapshot.Bounds.W == 1200 })
	assert.Equal(t, 700.0, msg.Snapshot.Bounds.H)
}

func TestBridgeErrorsKeepConnection(t *testing.T) {
	ts := newTestServer(t, nil)
	ws := dial(t, ts, "word-connect")
	readUntil(t, ws, func(ServerMessage) bool { return true })

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte("{not json")))
	msg := readUntil(t, ws, func(m ServerMessage) bool { return m.Type == TypeError })
	assert.Contains(t, msg.Error, "malformed")

	send(t, ws, ClientMessage{Type: "jump"})
	msg = readUntil(t, ws, func(m ServerMessage) bool { return m.Type == TypeError })
	assert.Contains(t, msg.Error, "jump")

	send(t, ws, ClientMessage{Type: "start"})
	started := readUntil(t, ws, func(m ServerMessage) bool {
		return m.Snapshot != nil && m.Snapshot.Status == engine.StatusPlaying
	})
	require.NotNil(t, started.Snapshot.Grid)
}

func TestUnknownGame(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/ws/tetris")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGamesAndHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/games")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var games []registry.GameInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	assert.Subset(t, ids, []string{"fruit-slice", "neural-hack", "word-connect"})

	health, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{`{"type":"start"}`, ""},
		{`{"type":"pause"}`, ""},
		{`{"type":"resume"}`, ""},
		{`{"type":"reset"}`, ""},
		{`{"type":"down","x":10,"y":20}`, ""},
		{`{"type":"move","x":10,"y":20}`, ""},
		{`{"type":"up"}`, ""},
		{`{"type":"resize","w":640,"h":480}`, ""},
		{`{"type":"resize","w":0,"h":480}`, "positive"},
		{`{}`, "no type"},
		{`[1,2]`, "malformed"},
		{`{"type":"fly"}`, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cmd, err := ParseCommand([]byte(tt.in))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, cmd)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParsedPointerCommandsDriveSession(t *testing.T) {
	s := engine.NewSession(engine.Config{Lives: 1, HitMode: engine.HitByPath, ResampleDistance: 5, TrailLifetime: 1}, 1)
	for _, raw := range []string{`{"type":"start"}`, `{"type":"down","x":10,"y":10}`, `{"type":"move","x":40,"y":10}`} {
		cmd, err := ParseCommand([]byte(raw))
		require.NoError(t, err)
		cmd(s)
	}
	snap := s.Snapshot()
	require.NotNil(t, snap.Trail)
	assert.Len(t, snap.Trail.Points, 2)
}

func TestRecordSavesOnGameOver(t *testing.T) {
	store := &memStore{}
	c := &conn{store: store, logger: NewServer(Config{}, nil, nil).logger, game: stubGame{}}

	over := engine.Snapshot{
		Status:  engine.StatusOver,
		Score:   150,
		Level:   2,
		Elapsed: 31,
		Events:  []engine.Event{{Kind: engine.EventGameOver, Reason: "lives", Points: 150}},
	}
	c.record(engine.Snapshot{Score: 10})
	c.record(over)
	c.record(engine.Snapshot{Events: over.Events}) // zero score is not kept

	require.Len(t, store.runs, 1)
	run := store.runs[0]
	assert.Equal(t, "stub", run.GameID)
	assert.Equal(t, storage.SourceWeb, run.Source)
	assert.Equal(t, 150, run.Score)
	assert.Equal(t, 31, run.Duration)
	assert.NotEmpty(t, run.RunID)

	store.err = errors.New("disk full")
	assert.NotPanics(t, func() { c.record(over) })
}

type stubGame struct{ registry.Game }

func (stubGame) ID() string { return "stub" }
