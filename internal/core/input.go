package core

// Action represents a semantic platform action, abstracted from physical key presses.
// Gameplay itself is pointer driven; keys only steer the session lifecycle.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter, Space - start or retry a session
	ActionPause          // P - pause/resume
	ActionRestart        // R - reset to the title screen
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the phases of a pointer gesture.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// String returns a human-readable name for the pointer phase.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer gesture sample in playfield units.
type PointerEvent struct {
	Kind PointerKind
	At   Vec2
}
