// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// ArcadeConfig contains all configuration for the entity games
// (neural-hack and fruit-slice): things spawn, move and get hit.
type ArcadeConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Physics    ArcadePhysics    `yaml:"physics"`
	Spawn      SpawnRates       `yaml:"spawn"`
	Input      InputConfig      `yaml:"input"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Rewards    []CategoryConfig `yaml:"rewards"`
	Hazards    []CategoryConfig `yaml:"hazards"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SessionConfig defines the run limits shared by every game.
type SessionConfig struct {
	Lives         int     `yaml:"lives"`           // 0 = no lives rule
	TimeLimit     float64 `yaml:"time_limit"`      // Seconds, 0 = untimed
	MissCostsLife bool    `yaml:"miss_costs_life"` // Unhit rewards leaving the screen cost a life
	LevelUpScore  int     `yaml:"level_up_score"`  // Level advances past level*level_up_score
}

// ArcadePhysics defines how entities enter and move.
type ArcadePhysics struct {
	Gravity  float64 `yaml:"gravity"` // Units/s², positive is down
	Launch   string  `yaml:"launch"`  // "fall" or "up"
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	DriftMax float64 `yaml:"drift_max"`
	SpinMax  float64 `yaml:"spin_max"`
	Stagger  float64 `yaml:"stagger"`
}

// SpawnRates defines the per-tick spawn gate.
type SpawnRates struct {
	BaseChance   float64 `yaml:"base_chance"`
	PerLevel     float64 `yaml:"per_level"`
	MaxChance    float64 `yaml:"max_chance"`
	HazardChance float64 `yaml:"hazard_chance"`
}

// InputConfig defines how pointer gestures are interpreted.
type InputConfig struct {
	HitMode          string  `yaml:"hit_mode"`          // "point", "path" or "grid"
	ResampleDistance float64 `yaml:"resample_distance"` // Units between trail samples
	TrailLifetime    float64 `yaml:"trail_lifetime"`    // Seconds a finished trail stays visible
}

// ScoringConfig defines the score and combo rules.
type ScoringConfig struct {
	Multiplier string `yaml:"multiplier"` // "flat" or "linear"
	PerChar    int    `yaml:"per_char"`
	ComboBonus int    `yaml:"combo_bonus"`
	MinWordLen int    `yaml:"min_word_len"`
}

// CategoryConfig defines one kind of spawned entity and how it is drawn.
type CategoryConfig struct {
	Name   string  `yaml:"name"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
	Points int     `yaml:"points"` // Reward value, or penalty magnitude for hazards
	Size   float64 `yaml:"size"`
	Weight float64 `yaml:"weight"`
}

// WordConnectConfig contains all configuration for the word-connect game.
type WordConnectConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Grid       GridConfig       `yaml:"grid"`
	Words      WordsConfig      `yaml:"words"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     WordTiming       `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the letter board.
type GridConfig struct {
	Size     int    `yaml:"size"`
	Attempts int    `yaml:"attempts"` // Random placement tries per word
	Alphabet string `yaml:"alphabet"` // Weighted filler letters
}

// WordsConfig defines the target word pool.
type WordsConfig struct {
	BaseCount int        `yaml:"base_count"` // Targets per level: base_count + level/2
	Tiers     [][]string `yaml:"tiers"`
}

// WordTiming defines the delays of the word game, in seconds of play time.
type WordTiming struct {
	BonusTime         float64 `yaml:"bonus_time"`
	AcceptClearDelay  float64 `yaml:"accept_clear_delay"`
	RejectClearDelay  float64 `yaml:"reject_clear_delay"`
	LevelAdvanceDelay float64 `yaml:"level_advance_delay"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled"`     // Score-based level progression
	SpawnScale float64 `yaml:"spawn_scale"` // Multiplier on spawn chances
	SpeedScale float64 `yaml:"speed_scale"` // Multiplier on launch speeds
	TimeScale  float64 `yaml:"time_scale"`  // Multiplier on the time limit
}
