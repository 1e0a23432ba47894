package engine

import "github.com/vovakirdan/venue-arcade/internal/wordgrid"

// Defaults applied when a Config leaves the field zero.
const (
	DefaultResampleDistance = 5.0
	DefaultTrailLifetime    = 1.0
	DefaultMinWordLen       = 3
)

// Config parameterizes one game variant. The same Session runs every
// minigame; only the Config differs.
type Config struct {
	Lives         int     // Starting lives; 0 disables the lives rule
	TimeLimit     float64 // Starting time in seconds; 0 disables the timer
	Gravity       float64 // Units per second squared, positive is down
	MissCostsLife bool    // A reward leaving the playfield unhit costs a life
	LevelUpScore  int     // Level advances when score > level*LevelUpScore; 0 disables
	FixedLevel    bool    // Disable score-based level progression

	HitMode          HitMode
	ResampleDistance float64 // Minimum distance between trail samples
	TrailLifetime    float64 // Seconds a finished trail stays visible

	Spawn   SpawnConfig
	Scoring Scoring
	Word    WordConfig
}

// WordConfig parameterizes the letter-grid variant.
type WordConfig struct {
	GridSize  int
	Tiers     [][]string // Word lists by difficulty tier
	BaseWords int        // Targets per level are BaseWords + level/2
	Attempts  int        // Random placement tries per word
	Alphabet  string     // Weighted filler letters
	BonusTime float64    // Seconds added on level completion

	AcceptClearDelay  float64
	RejectClearDelay  float64
	LevelAdvanceDelay float64
}

func (c Config) withDefaults() Config {
	if c.ResampleDistance <= 0 {
		c.ResampleDistance = DefaultResampleDistance
	}
	if c.TrailLifetime <= 0 {
		c.TrailLifetime = DefaultTrailLifetime
	}
	if c.Scoring.MinWordLen <= 0 {
		c.Scoring.MinWordLen = DefaultMinWordLen
	}
	if c.Word.GridSize <= 0 {
		c.Word.GridSize = 8
	}
	if c.Word.Attempts <= 0 {
		c.Word.Attempts = wordgrid.DefaultAttempts
	}
	if c.Word.BaseWords <= 0 {
		c.Word.BaseWords = 3
	}
	return c
}
