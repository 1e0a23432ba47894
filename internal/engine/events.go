package engine

import (
	"fmt"

	"github.com/vovakirdan/venue-arcade/internal/core"
)

// EventKind identifies something a presenter may want to animate.
type EventKind int

const (
	EventHit EventKind = iota
	EventHazard
	EventMiss
	EventWordFound
	EventWordRejected
	EventLevelUp
	EventGameOver
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventHazard:
		return "hazard"
	case EventMiss:
		return "miss"
	case EventWordFound:
		return "word_found"
	case EventWordRejected:
		return "word_rejected"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name.
func (k *EventKind) UnmarshalText(text []byte) error {
	return parseName(k, text, EventGameOver, "event kind")
}

// parseName finds the enum value in [0, last] whose String is text.
func parseName[T interface {
	~int
	String() string
}](dst *T, text []byte, last T, what string) error {
	for v := T(0); v <= last; v++ {
		if v.String() == string(text) {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("engine: unknown %s %q", what, text)
}

// Event is a one-shot notification produced during a tick or input call.
type Event struct {
	Kind     EventKind `json:"kind"`
	Pos      core.Vec2 `json:"pos"`
	Points   int       `json:"points,omitempty"`
	Category string    `json:"category,omitempty"`
	Word     string    `json:"word,omitempty"`
	Level    int       `json:"level,omitempty"`
	Reason   string    `json:"reason,omitempty"`
}
