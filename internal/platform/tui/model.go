package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/storage"
)

// popupTTL is how long an event stays drawn, in seconds of play.
const popupTTL = 0.8

// GameOptions configure a GameModel.
type GameOptions struct {
	Store    *storage.Store // May be nil
	Logger   *log.Logger
	Renderer *ScreenRenderer
	Source   string // Recorded with saved runs
	Embedded bool   // Back returns to a parent model instead of quitting
}

type popup struct {
	event engine.Event
	ttl   float64
}

// GameModel is the Bubble Tea model for one game: it feeds mouse input to
// the session, drives its ticks and draws its snapshots.
type GameModel struct {
	game       registry.Game
	session    *engine.Session
	screen     *core.Screen
	viewport   core.Viewport
	config     core.RuntimeConfig
	opts       GameOptions
	keyMapper  *KeyMapper
	popups     []popup
	pressed    bool
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewGameModel creates a model for game sized to cfg.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = NewScreenRenderer(nil)
	}
	if opts.Source == "" {
		opts.Source = storage.SourceTerminal
	}

	m := GameModel{
		game:      game,
		session:   game.Engine(),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		viewport:  core.DefaultViewport(),
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
	}
	m.session.Resize(m.viewport.Bounds(cfg.ScreenW, cfg.ScreenH))
	return m
}

// Init starts ticking if the session is already playing.
func (m GameModel) Init() tea.Cmd {
	return m.schedule()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// schedule returns the next tick if the session is playing.
func (m GameModel) schedule() tea.Cmd {
	if m.session.Status() != engine.StatusPlaying {
		return nil
	}
	return tickCmd(m.config.TickRate, m.session.Epoch())
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	status := m.session.Status()
	epoch := m.session.Epoch()
	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if status == engine.StatusIdle || status == engine.StatusOver {
			m.session.Start()
			m.popups = nil
			m.runSaved = false
		}

	case core.ActionPause:
		switch status {
		case engine.StatusPlaying:
			m.session.Pause()
			m.pressed = false
		case engine.StatusPaused:
			m.session.Resume()
		}

	case core.ActionRestart:
		m.session.Reset()
		m.popups = nil
		m.pressed = false

	case core.ActionBack:
		if status == engine.StatusPlaying {
			return m, nil
		}
		m.backToMenu = true
		if !m.opts.Embedded {
			return m, tea.Quit
		}
		return m, nil

	default:
		return m, nil
	}

	m.absorb(m.session.Flush(), 0)
	// A new epoch retires the old tick chain; start a fresh one.
	if m.session.Epoch() == epoch {
		return m, nil
	}
	return m, m.schedule()
}

// handleMouse turns left-button gestures into pointer input.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := pointerEvent(msg, m.viewport, m.pressed)
	if !ok {
		return m, nil
	}

	switch ev.Kind {
	case core.PointerDown:
		m.pressed = true
		m.session.PointerDown(ev.At)
	case core.PointerMove:
		m.session.PointerMove(ev.At)
	case core.PointerUp:
		m.pressed = false
		m.session.PointerUp()
	}

	m.absorb(m.session.Flush(), 0)
	return m, nil
}

// pointerEvent maps a mouse message to a playfield pointer event. Only the
// left button plays; motion counts while it is held.
func pointerEvent(msg tea.MouseMsg, vp core.Viewport, pressed bool) (core.PointerEvent, bool) {
	at := vp.ToUnits(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Kind: core.PointerDown, At: at}, true
	case tea.MouseActionMotion:
		if !pressed {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Kind: core.PointerMove, At: at}, true
	case tea.MouseActionRelease:
		if !pressed {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Kind: core.PointerUp, At: at}, true
	}
	return core.PointerEvent{}, false
}

// handleResize processes window resize events. The session keeps running;
// only its bounds change.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(m.viewport.Bounds(msg.Width, msg.Height))
	return m, nil
}

// handleTick advances the session. Ticks from an older epoch belong to a
// paused or finished run and are dropped.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.session.Epoch() || m.session.Status() != engine.StatusPlaying {
		return m, nil
	}

	dt := m.config.TickDuration()
	m.absorb(m.session.Tick(dt), dt)
	return m, m.schedule()
}

// absorb ages the visible pop-ups by dt, adds snap's events and records
// the run once it is over.
func (m *GameModel) absorb(snap engine.Snapshot, dt float64) {
	kept := m.popups[:0]
	for _, p := range m.popups {
		p.ttl -= dt
		if p.ttl > 0 {
			kept = append(kept, p)
		}
	}
	m.popups = kept

	for _, ev := range snap.Events {
		if ev.Kind == engine.EventGameOver {
			m.pressed = false
			m.saveRun(snap)
			continue
		}
		m.popups = append(m.popups, popup{event: ev, ttl: popupTTL})
	}
}

// saveRun stores a finished run once. Best-effort: the game continues
// regardless.
func (m *GameModel) saveRun(snap engine.Snapshot) {
	if m.runSaved || snap.Score <= 0 {
		return
	}
	m.runSaved = true
	if m.opts.Store == nil {
		return
	}
	run, err := m.opts.Store.SaveRun(storage.NewRun(m.game.ID(), m.opts.Source, snap))
	if err != nil {
		m.opts.Logger.Warn("cannot save run", "game", m.game.ID(), "error", err)
		return
	}
	m.opts.Logger.Debug("run saved", "game", m.game.ID(), "run", run.RunID, "score", run.Score)
}

// frame renders the current snapshot with live pop-ups into the screen.
func (m GameModel) frame() *core.Screen {
	snap := m.session.Snapshot()
	snap.Events = snap.Events[:0:0]
	for _, p := range m.popups {
		snap.Events = append(snap.Events, p.event)
	}

	m.screen.Clear()
	m.game.Render(m.screen, snap, m.viewport)
	return m.screen
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	scr := m.frame()

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(scr.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return m.opts.Renderer.Render(m.frame())
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game. It returns true when the
// player asked to go back to the menu rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	opts.Embedded = false
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag reports motion while a button is held
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
