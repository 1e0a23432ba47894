// Package engine implements the session engine shared by every minigame:
// the Idle/Playing/Paused/Over state machine, the spawner, the physics
// step, pointer hit-testing and the scoring/combo policy.
//
// A Session is driven from a single goroutine. Presenters call its input
// methods and Tick, and read Snapshots; nothing else mutates it.
package engine

import "github.com/vovakirdan/venue-arcade/internal/core"

// Category describes one kind of entity the spawner can emit.
type Category struct {
	Name   string
	Points int     // Reward points, or the penalty magnitude for hazards
	Size   float64 // Diameter in playfield units
	Weight float64 // Relative spawn weight within its group
}

// Entity is a moving, clickable game object owned by a session.
type Entity struct {
	ID       uint64
	Pos      core.Vec2 // Centre
	Vel      core.Vec2 // Units per second
	Rotation float64   // Degrees
	Spin     float64   // Degrees per second
	Size     float64   // Diameter
	Category string
	Hazard   bool
	Points   int // Signed: hazards carry their penalty as a negative value
	Alive    bool
}

// Radius returns half the entity size.
func (e Entity) Radius() float64 {
	return e.Size / 2
}

// Contains reports whether p falls inside the entity's circular hit region.
func (e Entity) Contains(p core.Vec2) bool {
	return e.Pos.Dist(p) < e.Radius()
}

// EntityView is the read-only projection of an Entity handed to presenters.
type EntityView struct {
	ID       uint64  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Rotation float64 `json:"rotation"`
	Category string  `json:"category"`
	Hazard   bool    `json:"hazard"`
	Points   int     `json:"points"`
}

// View returns the presenter projection of e.
func (e Entity) View() EntityView {
	return EntityView{
		ID:       e.ID,
		X:        e.Pos.X,
		Y:        e.Pos.Y,
		Size:     e.Size,
		Rotation: e.Rotation,
		Category: e.Category,
		Hazard:   e.Hazard,
		Points:   e.Points,
	}
}

// Bounds is the measured size of the presentation surface in playfield units.
type Bounds struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}
