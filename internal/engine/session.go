package engine

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/wordgrid"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
	StatusOver
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status from its name.
func (s *Status) UnmarshalText(text []byte) error {
	return parseName(s, text, StatusOver, "status")
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithBounds sets the initial playfield size.
func WithBounds(w, h float64) Option {
	return func(s *Session) {
		s.bounds = Bounds{W: w, H: h}
	}
}

// Session is the state machine shared by every minigame.
// It is not safe for concurrent use; see Runner.
type Session struct {
	cfg     Config
	log     *log.Logger
	seed    int64
	starts  int64
	rng     *rand.Rand
	spawner *Spawner

	status   Status
	epoch    uint64
	tally    Tally
	level    int
	timeLeft float64
	elapsed  float64
	bounds   Bounds
	entities []Entity

	trail  *Trail
	fading []fadingTrail

	grid      *wordgrid.Grid
	layout    wordgrid.Layout
	selection wordgrid.Selection
	found     []string
	verdict   WordVerdict
	clearIn   float64
	advanceIn float64

	events []Event
}

// NewSession creates an Idle session for cfg. Each Start reseeds the
// random source from seed, so a seed plus an input sequence fully
// determines a run.
func NewSession(cfg Config, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg.withDefaults(),
		log:    log.New(io.Discard),
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		bounds: Bounds{W: 800, H: 460},
	}
	s.spawner = NewSpawner(s.cfg.Spawn, s.rng)
	for _, opt := range opts {
		opt(s)
	}
	s.resetCounters()
	return s
}

// Config returns the effective configuration.
func (s *Session) Config() Config { return s.cfg }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Epoch changes on every status transition. Presenters tag scheduled
// ticks with it and drop ticks whose epoch is stale.
func (s *Session) Epoch() uint64 { return s.epoch }

// Bounds returns the current playfield size.
func (s *Session) Bounds() Bounds { return s.bounds }

// Placements returns where the current level's words were hidden, or nil
// outside word-connect play. Bots and hint overlays read it; presenters
// showing the board to a player should not.
func (s *Session) Placements() []wordgrid.Placement {
	if s.grid == nil {
		return nil
	}
	return s.grid.Placements()
}

// Start begins a new run from Idle or Over.
func (s *Session) Start() {
	if s.status != StatusIdle && s.status != StatusOver {
		return
	}
	s.clearTransient()
	s.resetCounters()
	s.rng.Seed(s.seed + s.starts)
	s.starts++
	s.spawner.ResetIDs()
	if s.cfg.HitMode == HitByGrid {
		s.beginLevel()
	}
	s.setStatus(StatusPlaying)
}

// Pause freezes a running session.
func (s *Session) Pause() {
	if s.status == StatusPlaying {
		s.setStatus(StatusPaused)
	}
}

// Resume continues a paused session.
func (s *Session) Resume() {
	if s.status == StatusPaused {
		s.setStatus(StatusPlaying)
	}
}

// Reset returns to Idle from any state, dropping the run.
func (s *Session) Reset() {
	s.clearTransient()
	s.resetCounters()
	s.grid = nil
	s.setStatus(StatusIdle)
}

// Resize updates the playfield size. Valid in every state.
func (s *Session) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.bounds = Bounds{W: w, H: h}
	if s.grid != nil {
		s.layout = wordgrid.NewLayout(w, h, s.grid.Size())
	}
}

// Tick advances a Playing session by dt seconds and returns the snapshot,
// flushing pending events. In any other state it changes nothing.
func (s *Session) Tick(dt float64) Snapshot {
	if s.status != StatusPlaying || dt <= 0 {
		return s.Flush()
	}

	s.elapsed += dt
	if s.cfg.TimeLimit > 0 {
		s.timeLeft -= dt
		if s.timeLeft <= 0 {
			s.timeLeft = 0
			s.over("time")
			return s.Flush()
		}
	}

	s.countdown(dt)

	if s.cfg.HitMode != HitByGrid {
		s.stepEntities(dt)
		if s.status != StatusPlaying {
			return s.Flush()
		}
		s.progressLevel()
	}
	return s.Flush()
}

// PointerDown handles the start of a pointer gesture.
func (s *Session) PointerDown(p core.Vec2) {
	if s.status != StatusPlaying {
		return
	}
	switch s.cfg.HitMode {
	case HitByPoint:
		s.strike(p)
	case HitByPath:
		s.trail = NewTrail(p, s.cfg.ResampleDistance)
		s.strike(p)
	case HitByGrid:
		s.beginSelection(p)
	}
}

// PointerMove handles pointer motion while a gesture is in progress.
func (s *Session) PointerMove(p core.Vec2) {
	if s.status != StatusPlaying {
		return
	}
	switch s.cfg.HitMode {
	case HitByPath:
		if s.trail != nil && s.trail.Add(p) {
			s.strike(p)
		}
	case HitByGrid:
		s.extendSelection(p)
	}
}

// PointerUp ends the current gesture.
func (s *Session) PointerUp() {
	if s.status != StatusPlaying {
		return
	}
	switch s.cfg.HitMode {
	case HitByPath:
		if s.trail != nil {
			if s.trail.Len() > 2 {
				s.fading = append(s.fading, fadingTrail{points: s.trail.Points()})
			}
			s.trail = nil
		}
	case HitByGrid:
		s.submitSelection()
	}
}

func (s *Session) setStatus(st Status) {
	if s.status == st {
		return
	}
	s.log.Debug("session transition", "from", s.status, "to", st)
	s.status = st
	s.epoch++
}

func (s *Session) resetCounters() {
	s.tally = Tally{Lives: s.cfg.Lives}
	s.level = 1
	s.timeLeft = s.cfg.TimeLimit
	s.elapsed = 0
}

func (s *Session) clearTransient() {
	s.entities = nil
	s.trail = nil
	s.fading = nil
	s.selection.Clear()
	s.found = nil
	s.verdict = WordNone
	s.clearIn = 0
	s.advanceIn = 0
	s.events = nil
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) livesOut() bool {
	return s.cfg.Lives > 0 && s.tally.Lives <= 0
}

func (s *Session) over(reason string) {
	s.entities = nil
	s.trail = nil
	s.selection.Release()
	s.clearIn = 0
	s.advanceIn = 0
	s.emit(Event{Kind: EventGameOver, Reason: reason, Points: s.tally.Score})
	s.log.Info("session over", "reason", reason, "score", s.tally.Score, "level", s.level, "max_combo", s.tally.MaxCombo)
	s.setStatus(StatusOver)
}

// countdown runs the delayed actions that are measured in Playing time.
func (s *Session) countdown(dt float64) {
	if len(s.fading) > 0 {
		kept := s.fading[:0]
		for _, f := range s.fading {
			f.age += dt
			if f.age < s.cfg.TrailLifetime {
				kept = append(kept, f)
			}
		}
		s.fading = kept
	}
	if s.clearIn > 0 {
		s.clearIn -= dt
		if s.clearIn <= 0 {
			s.clearSelection()
		}
	}
	if s.advanceIn > 0 {
		s.advanceIn -= dt
		if s.advanceIn <= 0 {
			s.advanceLevel()
		}
	}
}

func (s *Session) stepEntities(dt float64) {
	if e, ok := s.spawner.Maybe(s.level, s.bounds); ok {
		s.entities = append(s.entities, e)
	}

	kept, culled := Integrate(s.entities, dt, s.cfg.Gravity, s.bounds)
	s.entities = kept

	if !s.cfg.MissCostsLife {
		return
	}
	for _, e := range culled {
		if e.Hazard {
			continue
		}
		s.cfg.Scoring.Miss(&s.tally)
		s.emit(Event{Kind: EventMiss, Pos: e.Pos, Category: e.Category})
		if s.livesOut() {
			s.over("lives")
			return
		}
	}
}

func (s *Session) progressLevel() {
	if s.cfg.FixedLevel || s.cfg.LevelUpScore <= 0 {
		return
	}
	if s.tally.Score > s.level*s.cfg.LevelUpScore {
		s.level++
		s.emit(Event{Kind: EventLevelUp, Level: s.level})
	}
}

// strike resolves one pointer sample against the entity set.
func (s *Session) strike(p core.Vec2) {
	hits := Slice(s.entities, p)
	if len(hits) == 0 {
		return
	}
	for _, i := range hits {
		e := s.entities[i]
		if e.Hazard {
			delta := s.cfg.Scoring.Hazard(&s.tally, e.Points)
			s.emit(Event{Kind: EventHazard, Pos: e.Pos, Points: delta, Category: e.Category})
			if s.livesOut() {
				s.over("lives")
				return
			}
			continue
		}
		pts := s.cfg.Scoring.Reward(&s.tally, e.Points)
		s.emit(Event{Kind: EventHit, Pos: e.Pos, Points: pts, Category: e.Category})
	}
	s.entities = slices.DeleteFunc(s.entities, func(e Entity) bool { return !e.Alive })
}

func (s *Session) beginLevel() {
	words := wordgrid.PickTargets(s.rng, s.cfg.Word.Tiers, s.level, s.cfg.Word.BaseWords)
	grid, dropped := wordgrid.Generate(s.rng, s.cfg.Word.GridSize, words, wordgrid.Options{
		Attempts: s.cfg.Word.Attempts,
		Alphabet: s.cfg.Word.Alphabet,
	})
	if len(dropped) > 0 {
		s.log.Debug("words dropped from grid", "level", s.level, "dropped", dropped)
	}
	s.grid = grid
	s.layout = wordgrid.NewLayout(s.bounds.W, s.bounds.H, grid.Size())
	s.found = nil
	s.selection.Clear()
	s.verdict = WordNone
}

func (s *Session) advanceLevel() {
	s.level++
	if s.cfg.TimeLimit > 0 {
		s.timeLeft += s.cfg.Word.BonusTime
	}
	s.beginLevel()
	s.emit(Event{Kind: EventLevelUp, Level: s.level})
}

func (s *Session) beginSelection(p core.Vec2) {
	if s.grid == nil || s.advanceIn > 0 {
		return
	}
	c, ok := s.layout.CellAt(p)
	if !ok {
		return
	}
	s.clearSelection()
	s.selection.Begin(c)
	s.grid.SetSelected(s.selection.Path())
}

func (s *Session) extendSelection(p core.Vec2) {
	if !s.selection.Held() {
		return
	}
	c, ok := s.layout.CellAt(p)
	if !ok {
		return
	}
	if s.selection.Extend(c) {
		s.grid.SetSelected(s.selection.Path())
	}
}

func (s *Session) submitSelection() {
	if !s.selection.Held() {
		return
	}
	s.selection.Release()
	if s.selection.Len() < s.cfg.Scoring.MinWordLen {
		s.clearSelection()
		return
	}

	path := s.selection.Path()
	word := s.grid.Word(path)
	verdict, pts := s.cfg.Scoring.Word(&s.tally, word, s.level, s.grid.Words(), s.found)
	s.verdict = verdict
	at := s.layout.Center(path[len(path)-1])

	if verdict != WordAccepted {
		s.emit(Event{Kind: EventWordRejected, Pos: at, Word: word, Reason: verdict.String()})
		s.scheduleClear(s.cfg.Word.RejectClearDelay)
		return
	}

	s.found = append(s.found, word)
	s.grid.Connect(path)
	s.emit(Event{Kind: EventWordFound, Pos: at, Word: word, Points: pts})
	s.scheduleClear(s.cfg.Word.AcceptClearDelay)

	if len(s.found) >= len(s.grid.Words()) {
		if s.cfg.Word.LevelAdvanceDelay > 0 {
			s.advanceIn = s.cfg.Word.LevelAdvanceDelay
		} else {
			s.advanceLevel()
		}
	}
}

func (s *Session) scheduleClear(delay float64) {
	if delay <= 0 {
		s.clearSelection()
		return
	}
	s.clearIn = delay
}

func (s *Session) clearSelection() {
	s.selection.Clear()
	s.clearIn = 0
	s.verdict = WordNone
	if s.grid != nil {
		s.grid.ClearSelection()
	}
}
