package engine

import "github.com/vovakirdan/venue-arcade/internal/wordgrid"

// Snapshot is a read-only copy of session state for presenters.
// It shares no memory with the session.
type Snapshot struct {
	Status   Status       `json:"status"`
	Score    int          `json:"score"`
	Combo    int          `json:"combo"`
	MaxCombo int          `json:"max_combo"`
	Lives    int          `json:"lives"`
	TimeLeft float64      `json:"time_left"`
	Level    int          `json:"level"`
	Elapsed  float64      `json:"elapsed"`
	Bounds   Bounds       `json:"bounds"`
	Entities []EntityView `json:"entities"`
	Trail    *TrailView   `json:"trail,omitempty"`
	Fading   []TrailView  `json:"fading,omitempty"`
	Grid     *GridView    `json:"grid,omitempty"`
	Events   []Event      `json:"events,omitempty"`
}

// GridView is the word-grid part of a snapshot.
type GridView struct {
	Layout      wordgrid.Layout     `json:"layout"`
	Rows        [][]wordgrid.Letter `json:"rows"`
	Selection   []wordgrid.Cell     `json:"selection"`
	Word        string              `json:"word"`
	Verdict     WordVerdict         `json:"verdict"`
	TargetWords []string            `json:"target_words"`
	FoundWords  []string            `json:"found_words"`
}

// Snapshot returns the current state including events not yet flushed.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:   s.status,
		Score:    s.tally.Score,
		Combo:    s.tally.Combo,
		MaxCombo: s.tally.MaxCombo,
		Lives:    s.tally.Lives,
		TimeLeft: s.timeLeft,
		Level:    s.level,
		Elapsed:  s.elapsed,
		Bounds:   s.bounds,
		Entities: make([]EntityView, 0, len(s.entities)),
		Events:   append([]Event(nil), s.events...),
	}
	for _, e := range s.entities {
		if e.Alive {
			snap.Entities = append(snap.Entities, e.View())
		}
	}
	if s.trail != nil {
		snap.Trail = &TrailView{Points: s.trail.Points(), Fade: 1}
	}
	for _, f := range s.fading {
		snap.Fading = append(snap.Fading, TrailView{
			Points: append(f.points[:0:0], f.points...),
			Fade:   1 - f.age/s.cfg.TrailLifetime,
		})
	}
	if s.grid != nil {
		path := s.selection.Path()
		snap.Grid = &GridView{
			Layout:      s.layout,
			Rows:        s.grid.Rows(),
			Selection:   path,
			Word:        s.grid.Word(path),
			Verdict:     s.verdict,
			TargetWords: s.grid.Words(),
			FoundWords:  append([]string(nil), s.found...),
		}
	}
	return snap
}

// Flush returns the current snapshot and drops the pending events.
func (s *Session) Flush() Snapshot {
	snap := s.Snapshot()
	s.events = s.events[:0]
	return snap
}
