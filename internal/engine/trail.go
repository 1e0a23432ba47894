package engine

import "github.com/vovakirdan/venue-arcade/internal/core"

// Trail is the in-progress path of a drag gesture. Points are only
// appended once the pointer has moved far enough from the previous sample.
type Trail struct {
	points  []core.Vec2
	minStep float64
}

// NewTrail starts a trail at p.
func NewTrail(p core.Vec2, minStep float64) *Trail {
	return &Trail{points: []core.Vec2{p}, minStep: minStep}
}

// Add appends p when it is more than minStep away from the last sample.
// It reports whether the point was kept.
func (t *Trail) Add(p core.Vec2) bool {
	if n := len(t.points); n > 0 && t.points[n-1].Dist(p) <= t.minStep {
		return false
	}
	t.points = append(t.points, p)
	return true
}

// Len returns the number of retained samples.
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy of the retained samples.
func (t *Trail) Points() []core.Vec2 {
	out := make([]core.Vec2, len(t.points))
	copy(out, t.points)
	return out
}

// fadingTrail is a finished gesture kept on screen until it expires.
type fadingTrail struct {
	points []core.Vec2
	age    float64
}

// TrailView is a trail as exposed to presenters. Fade runs from 1 (fresh)
// down to 0 (about to disappear).
type TrailView struct {
	Points []core.Vec2 `json:"points"`
	Fade   float64     `json:"fade"`
}
