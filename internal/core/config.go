package core

import "math"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated seconds covered by one tick.
func (c RuntimeConfig) TickDuration() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// HUDRows is the number of screen rows reserved for the status line.
const HUDRows = 1

// Viewport maps playfield units to terminal cells.
// Terminal cells are roughly twice as tall as they are wide, so the
// default maps one column to 10 units and one row to 20 units.
type Viewport struct {
	UnitsPerCol float64
	UnitsPerRow float64
	OffsetRows  int // Rows above the playfield (HUD)
}

// DefaultViewport returns the viewport used by the terminal presenter.
func DefaultViewport() Viewport {
	return Viewport{UnitsPerCol: 10, UnitsPerRow: 20, OffsetRows: HUDRows}
}

// Bounds returns the playfield size in units for a screen of cols x rows.
func (v Viewport) Bounds(cols, rows int) (w, h float64) {
	rows -= v.OffsetRows
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return float64(cols) * v.UnitsPerCol, float64(rows) * v.UnitsPerRow
}

// ToUnits converts a screen cell to the playfield point at its centre.
func (v Viewport) ToUnits(col, row int) Vec2 {
	return Vec2{
		X: (float64(col) + 0.5) * v.UnitsPerCol,
		Y: (float64(row-v.OffsetRows) + 0.5) * v.UnitsPerRow,
	}
}

// ToCell converts a playfield point to the screen cell containing it.
func (v Viewport) ToCell(p Vec2) (col, row int) {
	col = int(math.Floor(p.X / v.UnitsPerCol))
	row = int(math.Floor(p.Y/v.UnitsPerRow)) + v.OffsetRows
	return col, row
}

