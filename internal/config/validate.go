package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/venue-arcade/internal/core"
)

// Validate reports every problem in the config at once.
func (c ArcadeConfig) Validate() error {
	var errs []error
	errs = append(errs, c.Session.validate()...)

	switch c.Physics.Launch {
	case "fall", "up":
	default:
		errs = append(errs, fmt.Errorf("physics.launch: %q is not fall or up", c.Physics.Launch))
	}
	if c.Physics.SpeedMin < 0 || c.Physics.SpeedMax < c.Physics.SpeedMin {
		errs = append(errs, fmt.Errorf("physics: speed band [%g, %g] is invalid", c.Physics.SpeedMin, c.Physics.SpeedMax))
	}

	for name, p := range map[string]float64{
		"spawn.base_chance":   c.Spawn.BaseChance,
		"spawn.max_chance":    c.Spawn.MaxChance,
		"spawn.hazard_chance": c.Spawn.HazardChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s: %g is not a probability", name, p))
		}
	}
	if c.Spawn.PerLevel < 0 {
		errs = append(errs, fmt.Errorf("spawn.per_level: must not be negative"))
	}

	switch c.Input.HitMode {
	case "point", "path":
	default:
		errs = append(errs, fmt.Errorf("input.hit_mode: %q is not point or path", c.Input.HitMode))
	}
	if _, err := parseMultiplier(c.Scoring.Multiplier); err != nil {
		errs = append(errs, err)
	}

	if len(c.Rewards) == 0 {
		errs = append(errs, errors.New("rewards: at least one category is required"))
	}
	if c.Spawn.HazardChance > 0 && len(c.Hazards) == 0 {
		errs = append(errs, errors.New("hazards: hazard_chance is set but no hazard category exists"))
	}
	for i, cat := range c.Rewards {
		errs = append(errs, cat.validate(fmt.Sprintf("rewards[%d]", i))...)
	}
	for i, cat := range c.Hazards {
		errs = append(errs, cat.validate(fmt.Sprintf("hazards[%d]", i))...)
	}

	return wrap(errs)
}

// Validate reports every problem in the config at once.
func (c WordConnectConfig) Validate() error {
	var errs []error
	errs = append(errs, c.Session.validate()...)

	if c.Grid.Size < 3 || c.Grid.Size > 26 {
		errs = append(errs, fmt.Errorf("grid.size: %d is outside 3..26", c.Grid.Size))
	}
	if c.Grid.Attempts < 0 {
		errs = append(errs, errors.New("grid.attempts: must not be negative"))
	}
	if strings.TrimSpace(c.Grid.Alphabet) != c.Grid.Alphabet {
		errs = append(errs, errors.New("grid.alphabet: must not contain surrounding spaces"))
	}
	if c.Words.BaseCount < 1 {
		errs = append(errs, errors.New("words.base_count: must be at least 1"))
	}
	if len(c.Words.Tiers) == 0 {
		errs = append(errs, errors.New("words.tiers: at least one tier is required"))
	}
	for i, tier := range c.Words.Tiers {
		if len(tier) == 0 {
			errs = append(errs, fmt.Errorf("words.tiers[%d]: empty tier", i))
		}
		for _, w := range tier {
			if n := len([]rune(w)); n < c.Scoring.MinWordLen || n > c.Grid.Size {
				errs = append(errs, fmt.Errorf("words.tiers[%d]: %q cannot be found on a %d grid", i, w, c.Grid.Size))
			}
		}
	}
	if c.Scoring.PerChar <= 0 {
		errs = append(errs, errors.New("scoring.per_char: must be positive"))
	}
	if c.Scoring.MinWordLen < 1 {
		errs = append(errs, errors.New("scoring.min_word_len: must be at least 1"))
	}
	for name, d := range map[string]float64{
		"timing.bonus_time":          c.Timing.BonusTime,
		"timing.accept_clear_delay":  c.Timing.AcceptClearDelay,
		"timing.reject_clear_delay":  c.Timing.RejectClearDelay,
		"timing.level_advance_delay": c.Timing.LevelAdvanceDelay,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s: must not be negative", name))
		}
	}

	return wrap(errs)
}

func (s SessionConfig) validate() []error {
	var errs []error
	if s.Lives < 0 {
		errs = append(errs, errors.New("session.lives: must not be negative"))
	}
	if s.TimeLimit < 0 {
		errs = append(errs, errors.New("session.time_limit: must not be negative"))
	}
	if s.Lives == 0 && s.TimeLimit == 0 {
		// Nothing would ever end the run.
		errs = append(errs, errors.New("session: needs lives or a time limit"))
	}
	return errs
}

func (c CategoryConfig) validate(path string) []error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name: required", path))
	}
	if c.Size <= 0 {
		errs = append(errs, fmt.Errorf("%s.size: must be positive", path))
	}
	if c.Weight < 0 {
		errs = append(errs, fmt.Errorf("%s.weight: must not be negative", path))
	}
	if c.Color != "" {
		if _, ok := core.ColorByName(c.Color); !ok {
			errs = append(errs, fmt.Errorf("%s.color: unknown color %q", path, c.Color))
		}
	}
	return errs
}

func wrap(errs []error) error {
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
