package config

import (
	_ "embed"
)

// Game IDs with embedded defaults.
const (
	NeuralHackID  = "neural-hack"
	FruitSliceID  = "fruit-slice"
	WordConnectID = "word-connect"
)

//go:embed defaults/neural-hack.yaml
var defaultNeuralHackYAML []byte

//go:embed defaults/fruit-slice.yaml
var defaultFruitSliceYAML []byte

//go:embed defaults/word-connect.yaml
var defaultWordConnectYAML []byte

// DefaultNeuralHackConfig returns the default Neural Hack configuration.
func DefaultNeuralHackConfig() ArcadeConfig {
	return ArcadeConfig{
		Session: SessionConfig{
			Lives:         3,
			MissCostsLife: true,
			LevelUpScore:  1000,
		},
		Physics: ArcadePhysics{
			Launch:   "fall",
			SpeedMin: 18,
			SpeedMax: 48,
			Stagger:  100,
		},
		Spawn: SpawnRates{
			BaseChance:   0.012,
			PerLevel:     0.002,
			MaxChance:    0.05,
			HazardChance: 0.1,
		},
		Input:   InputConfig{HitMode: "point"},
		Scoring: ScoringConfig{Multiplier: "flat"},
		Rewards: []CategoryConfig{
			{Name: "core", Glyph: "◆", Color: "cyan", Points: 14, Size: 24, Weight: 1},
			{Name: "relay", Glyph: "●", Color: "magenta", Points: 12, Size: 40, Weight: 1},
			{Name: "cluster", Glyph: "■", Color: "orange", Points: 11, Size: 56, Weight: 1},
			{Name: "link", Glyph: "▲", Color: "green", Points: 13, Size: 32, Weight: 1},
		},
		Hazards: []CategoryConfig{
			{Name: "virus", Glyph: "✖", Color: "red", Points: 30, Size: 36, Weight: 1},
		},
		Difficulty: DifficultyConfig{Enabled: true, SpawnScale: 1, SpeedScale: 1, TimeScale: 1},
	}
}

// DefaultFruitSliceConfig returns the default Fruit Slice configuration.
func DefaultFruitSliceConfig() ArcadeConfig {
	return ArcadeConfig{
		Session: SessionConfig{
			Lives:        3,
			TimeLimit:    60,
			LevelUpScore: 500,
		},
		Physics: ArcadePhysics{
			Gravity:  1080, // 0.3 px/frame² at 60 fps
			Launch:   "up",
			SpeedMin: 900,
			SpeedMax: 1200,
			DriftMax: 120,
			SpinMax:  300,
		},
		Spawn: SpawnRates{
			BaseChance:   0.02,
			PerLevel:     0.004,
			MaxChance:    0.06,
			HazardChance: 0.15,
		},
		Input: InputConfig{
			HitMode:          "path",
			ResampleDistance: 5,
			TrailLifetime:    1,
		},
		Scoring: ScoringConfig{Multiplier: "linear"},
		Rewards: []CategoryConfig{
			{Name: "apple", Glyph: "@", Color: "bright_red", Points: 10, Size: 60, Weight: 1},
			{Name: "orange", Glyph: "O", Color: "orange", Points: 15, Size: 55, Weight: 1},
			{Name: "banana", Glyph: ")", Color: "bright_yellow", Points: 20, Size: 70, Weight: 1},
			{Name: "strawberry", Glyph: "v", Color: "red", Points: 25, Size: 45, Weight: 1},
			{Name: "grape", Glyph: "%", Color: "magenta", Points: 30, Size: 50, Weight: 1},
			{Name: "watermelon", Glyph: "W", Color: "green", Points: 35, Size: 80, Weight: 1},
			{Name: "kiwi", Glyph: "o", Color: "bright_green", Points: 40, Size: 40, Weight: 1},
			{Name: "pineapple", Glyph: "#", Color: "yellow", Points: 45, Size: 65, Weight: 1},
		},
		Hazards: []CategoryConfig{
			{Name: "bomb", Glyph: "*", Color: "gray", Points: 50, Size: 50, Weight: 1},
		},
		Difficulty: DifficultyConfig{Enabled: true, SpawnScale: 1, SpeedScale: 1, TimeScale: 1},
	}
}

// DefaultWordConnectConfig returns the default Word Connect configuration.
func DefaultWordConnectConfig() WordConnectConfig {
	return WordConnectConfig{
		Session: SessionConfig{TimeLimit: 180},
		Grid: GridConfig{
			Size:     8,
			Attempts: 200,
			Alphabet: "EEEEEEEAAAAAIIIIIOOOOOUUTTTTTNNNNSSSSRRRRLLLHHHDDDCCMMPPBGGFWYVKJXQZ",
		},
		Words: WordsConfig{
			BaseCount: 3,
			Tiers: [][]string{
				{"CAT", "DOG", "SUN", "FUN", "RUN", "WIN", "BIG", "RED", "HOT", "TOP"},
				{"GAME", "PLAY", "FAST", "JUMP", "COOL", "STAR", "BLUE", "FIRE", "ROCK", "GOLD"},
				{"BRAIN", "QUICK", "SMART", "POWER", "MAGIC", "HEART", "DREAM", "LIGHT", "STORM", "FLASH"},
				{"PUZZLE", "CLEVER", "GENIUS", "WONDER", "BRIGHT", "STRONG", "ENERGY", "MASTER", "LEGEND", "COSMIC"},
				{"CONNECT", "VICTORY", "AMAZING", "PERFECT", "DIAMOND", "THUNDER", "CRYSTAL", "SUPREME", "ULTIMATE", "INFINITY"},
			},
		},
		Scoring: ScoringConfig{PerChar: 10, ComboBonus: 5, MinWordLen: 3},
		Timing: WordTiming{
			BonusTime:         30,
			AcceptClearDelay:  1.0,
			RejectClearDelay:  0.5,
			LevelAdvanceDelay: 1.5,
		},
		Difficulty: DifficultyConfig{Enabled: true, TimeScale: 1},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case NeuralHackID:
		return defaultNeuralHackYAML
	case FruitSliceID:
		return defaultFruitSliceYAML
	case WordConnectID:
		return defaultWordConnectYAML
	default:
		return nil
	}
}
