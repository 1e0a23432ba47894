package engine

import "github.com/vovakirdan/venue-arcade/internal/core"

// HitMode selects how pointer input is resolved against the playfield.
type HitMode int

const (
	// HitByPoint resolves a single pointer-down against entity circles.
	HitByPoint HitMode = iota
	// HitByPath resolves every resampled point of a drag against entity circles.
	HitByPath
	// HitByGrid resolves pointer input to letter-grid cells.
	HitByGrid
)

// String returns the config name of the mode.
func (m HitMode) String() string {
	switch m {
	case HitByPoint:
		return "point"
	case HitByPath:
		return "path"
	case HitByGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// HitPoint returns the indices of all alive entities whose hit circle
// contains p. Overlapping entities are all reported.
func HitPoint(entities []Entity, p core.Vec2) []int {
	var hits []int
	for i := range entities {
		if entities[i].Alive && entities[i].Contains(p) {
			hits = append(hits, i)
		}
	}
	return hits
}

// Slice tests one gesture sample and marks every entity it hits as not
// alive, so later samples of the same gesture cannot hit it again.
func Slice(entities []Entity, p core.Vec2) []int {
	hits := HitPoint(entities, p)
	for _, i := range hits {
		entities[i].Alive = false
	}
	return hits
}
