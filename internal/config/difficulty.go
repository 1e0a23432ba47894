package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// presetScales returns the spawn, speed and time multipliers and the
// change to starting lives for a preset.
func presetScales(preset DifficultyPreset) (spawn, speed, time float64, lives int) {
	switch preset {
	case DifficultyEasy:
		return 0.75, 0.8, 1.25, 2
	case DifficultyHard:
		return 1.35, 1.25, 0.8, -1
	default:
		return 1, 1, 1, 0
	}
}

// ApplyArcadePreset modifies the config based on a difficulty preset.
func ApplyArcadePreset(cfg *ArcadeConfig, preset DifficultyPreset) {
	spawn, speed, time, lives := presetScales(preset)
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	cfg.Difficulty.SpawnScale = spawn
	cfg.Difficulty.SpeedScale = speed
	cfg.Difficulty.TimeScale = time
	if cfg.Session.Lives > 0 {
		cfg.Session.Lives = max(cfg.Session.Lives+lives, 1)
	}
}

// ApplyWordConnectPreset modifies the config based on a difficulty preset.
// With progression disabled the word game stays on the first tier.
func ApplyWordConnectPreset(cfg *WordConnectConfig, preset DifficultyPreset) {
	_, _, time, _ := presetScales(preset)
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	cfg.Difficulty.TimeScale = time
}

// scale returns v*k, treating an unset k as 1.
func scale(v, k float64) float64 {
	if k <= 0 {
		return v
	}
	return v * k
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
