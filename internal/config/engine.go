package config

import (
	"fmt"

	"github.com/vovakirdan/venue-arcade/internal/engine"
)

func parseMultiplier(s string) (engine.Multiplier, error) {
	switch s {
	case "", "flat":
		return engine.MultiplierFlat, nil
	case "linear":
		return engine.MultiplierLinear, nil
	default:
		return 0, fmt.Errorf("scoring.multiplier: %q is not flat or linear", s)
	}
}

// EngineConfig translates the YAML shape into the session parameters,
// applying the difficulty scales. The config must be valid.
func (c ArcadeConfig) EngineConfig() engine.Config {
	mult, _ := parseMultiplier(c.Scoring.Multiplier)
	mode := engine.HitByPoint
	if c.Input.HitMode == "path" {
		mode = engine.HitByPath
	}
	launch := engine.LaunchFall
	if c.Physics.Launch == "up" {
		launch = engine.LaunchUp
	}
	d := c.Difficulty

	return engine.Config{
		Lives:            c.Session.Lives,
		TimeLimit:        scale(c.Session.TimeLimit, d.TimeScale),
		Gravity:          c.Physics.Gravity,
		MissCostsLife:    c.Session.MissCostsLife,
		LevelUpScore:     c.Session.LevelUpScore,
		FixedLevel:       !d.Enabled,
		HitMode:          mode,
		ResampleDistance: c.Input.ResampleDistance,
		TrailLifetime:    c.Input.TrailLifetime,
		Spawn: engine.SpawnConfig{
			BaseChance:   clampF(scale(c.Spawn.BaseChance, d.SpawnScale), 0, 1),
			PerLevel:     scale(c.Spawn.PerLevel, d.SpawnScale),
			MaxChance:    clampF(scale(c.Spawn.MaxChance, d.SpawnScale), 0, 1),
			HazardChance: c.Spawn.HazardChance,
			Launch:       launch,
			SpeedMin:     scale(c.Physics.SpeedMin, d.SpeedScale),
			SpeedMax:     scale(c.Physics.SpeedMax, d.SpeedScale),
			DriftMax:     c.Physics.DriftMax,
			SpinMax:      c.Physics.SpinMax,
			Stagger:      c.Physics.Stagger,
			Rewards:      categories(c.Rewards),
			Hazards:      categories(c.Hazards),
		},
		Scoring: engine.Scoring{Multiplier: mult},
	}
}

// EngineConfig translates the YAML shape into the session parameters.
func (c WordConnectConfig) EngineConfig() engine.Config {
	mult, _ := parseMultiplier(c.Scoring.Multiplier)
	tiers := c.Words.Tiers
	if !c.Difficulty.Enabled && len(tiers) > 1 {
		tiers = tiers[:1]
	}
	return engine.Config{
		Lives:     c.Session.Lives,
		TimeLimit: scale(c.Session.TimeLimit, c.Difficulty.TimeScale),
		HitMode:   engine.HitByGrid,
		Scoring: engine.Scoring{
			Multiplier: mult,
			PerChar:    c.Scoring.PerChar,
			ComboBonus: c.Scoring.ComboBonus,
			MinWordLen: c.Scoring.MinWordLen,
		},
		Word: engine.WordConfig{
			GridSize:          c.Grid.Size,
			Tiers:             tiers,
			BaseWords:         c.Words.BaseCount,
			Attempts:          c.Grid.Attempts,
			Alphabet:          c.Grid.Alphabet,
			BonusTime:         c.Timing.BonusTime,
			AcceptClearDelay:  c.Timing.AcceptClearDelay,
			RejectClearDelay:  c.Timing.RejectClearDelay,
			LevelAdvanceDelay: c.Timing.LevelAdvanceDelay,
		},
	}
}

func categories(in []CategoryConfig) []engine.Category {
	out := make([]engine.Category, len(in))
	for i, c := range in {
		out[i] = engine.Category{Name: c.Name, Points: c.Points, Size: c.Size, Weight: c.Weight}
	}
	return out
}
