package engine

import (
	"math/rand"

	"github.com/vovakirdan/venue-arcade/internal/core"
)

// LaunchMode selects where entities enter the playfield.
type LaunchMode int

const (
	// LaunchFall spawns entities above the top edge moving down.
	LaunchFall LaunchMode = iota
	// LaunchUp spawns entities below the bottom edge thrown upward.
	LaunchUp
)

// SpawnConfig parameterizes the spawner for one game variant.
type SpawnConfig struct {
	BaseChance   float64 // Spawn probability per tick at level 1
	PerLevel     float64 // Added per level above 1
	MaxChance    float64 // Cap on the per-tick probability (0 = no cap)
	HazardChance float64 // Probability that a spawn is a hazard, independent of level

	Launch   LaunchMode
	SpeedMin float64 // Vertical launch speed band (units/s, magnitude)
	SpeedMax float64
	DriftMax float64 // Horizontal drift is drawn from [-DriftMax, DriftMax]
	SpinMax  float64 // Spin is drawn from [-SpinMax, SpinMax]
	Stagger  float64 // Extra random distance above the top edge for LaunchFall

	Rewards []Category
	Hazards []Category
}

// Spawner decides each tick whether a new entity enters the playfield.
// All randomness in the simulation lives here.
type Spawner struct {
	cfg    SpawnConfig
	rng    *rand.Rand
	nextID uint64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg SpawnConfig, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, nextID: 1}
}

// ResetIDs restarts entity numbering for a fresh session.
func (s *Spawner) ResetIDs() {
	s.nextID = 1
}

// Chance returns the per-tick spawn probability at the given level.
// It is non-decreasing in level and never exceeds MaxChance.
func (s *Spawner) Chance(level int) float64 {
	if level < 1 {
		level = 1
	}
	p := s.cfg.BaseChance + s.cfg.PerLevel*float64(level-1)
	if s.cfg.MaxChance > 0 && p > s.cfg.MaxChance {
		p = s.cfg.MaxChance
	}
	return core.ClampF(p, 0, 1)
}

// Maybe runs one Bernoulli trial and spawns an entity when it fires.
func (s *Spawner) Maybe(level int, b Bounds) (Entity, bool) {
	if s.rng.Float64() >= s.Chance(level) {
		return Entity{}, false
	}
	return s.Spawn(b)
}

// Spawn creates a new entity placed inside the current bounds.
// Returns false when no category is configured.
func (s *Spawner) Spawn(b Bounds) (Entity, bool) {
	hazard := len(s.cfg.Hazards) > 0 && s.rng.Float64() < s.cfg.HazardChance
	group := s.cfg.Rewards
	if hazard || len(group) == 0 {
		group = s.cfg.Hazards
		hazard = true
	}
	cat, ok := s.pick(group)
	if !ok {
		return Entity{}, false
	}

	e := Entity{
		ID:       s.nextID,
		Size:     cat.Size,
		Category: cat.Name,
		Hazard:   hazard,
		Points:   cat.Points,
		Alive:    true,
	}
	if hazard {
		e.Points = -cat.Points
	}
	s.nextID++

	r := cat.Size / 2
	e.Pos.X = r + s.rng.Float64()*max(b.W-cat.Size, 0)
	speed := s.uniform(s.cfg.SpeedMin, s.cfg.SpeedMax)

	switch s.cfg.Launch {
	case LaunchUp:
		e.Pos.Y = b.H + cat.Size
		e.Vel.Y = -speed
	default:
		e.Pos.Y = -r - s.rng.Float64()*s.cfg.Stagger
		e.Vel.Y = speed
	}
	e.Vel.X = s.uniform(-s.cfg.DriftMax, s.cfg.DriftMax)
	e.Spin = s.uniform(-s.cfg.SpinMax, s.cfg.SpinMax)

	return e, true
}

// pick draws a category from group proportionally to its weight.
func (s *Spawner) pick(group []Category) (Category, bool) {
	if len(group) == 0 {
		return Category{}, false
	}
	total := 0.0
	for _, c := range group {
		total += max(c.Weight, 0)
	}
	if total <= 0 {
		return group[s.rng.Intn(len(group))], true
	}
	roll := s.rng.Float64() * total
	for _, c := range group {
		roll -= max(c.Weight, 0)
		if roll < 0 {
			return c, true
		}
	}
	return group[len(group)-1], true
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
