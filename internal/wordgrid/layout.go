package wordgrid

import (
	"math"

	"github.com/vovakirdan/venue-arcade/internal/core"
)

// Layout places an N×N grid centred inside the playfield.
type Layout struct {
	Origin   core.Vec2 `json:"origin"` // Top-left corner of the grid
	CellSize float64   `json:"cell_size"`
	N        int       `json:"n"`
}

// NewLayout centres an n×n grid of square cells in a w×h playfield.
func NewLayout(w, h float64, n int) Layout {
	if n < 1 {
		n = 1
	}
	cs := math.Max(math.Min(w, h)/float64(n), 0)
	side := cs * float64(n)
	return Layout{
		Origin:   core.V((w-side)/2, (h-side)/2),
		CellSize: cs,
		N:        n,
	}
}

// CellAt maps a playfield point to the grid cell under it.
func (l Layout) CellAt(p core.Vec2) (Cell, bool) {
	if l.CellSize <= 0 {
		return Cell{}, false
	}
	col := int(math.Floor((p.X - l.Origin.X) / l.CellSize))
	row := int(math.Floor((p.Y - l.Origin.Y) / l.CellSize))
	if row < 0 || row >= l.N || col < 0 || col >= l.N {
		return Cell{}, false
	}
	return Cell{Row: row, Col: col}, true
}

// Center returns the playfield point at the middle of c.
func (l Layout) Center(c Cell) core.Vec2 {
	return core.V(
		l.Origin.X+(float64(c.Col)+0.5)*l.CellSize,
		l.Origin.Y+(float64(c.Row)+0.5)*l.CellSize,
	)
}
