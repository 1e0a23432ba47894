package engine

import (
	"slices"
	"unicode/utf8"
)

// Multiplier selects how the combo streak scales reward points.
type Multiplier int

const (
	// MultiplierFlat ignores the combo: every reward is worth its base points.
	MultiplierFlat Multiplier = iota
	// MultiplierLinear scales rewards by combo+1.
	MultiplierLinear
)

// Factor returns the multiplier for a combo streak. It is non-decreasing in combo.
func (m Multiplier) Factor(combo int) int {
	if m == MultiplierLinear && combo > 0 {
		return combo + 1
	}
	return 1
}

// Scoring parameterizes the score/combo policy for a game variant.
type Scoring struct {
	Multiplier Multiplier
	PerChar    int // Points per letter of an accepted word
	ComboBonus int // Extra points per combo step for accepted words
	MinWordLen int // Shorter gestures never reach the dictionary check
}

// Tally is the mutable score state of one session.
type Tally struct {
	Score    int `json:"score"`
	Combo    int `json:"combo"`
	MaxCombo int `json:"max_combo"`
	Lives    int `json:"lives"`
}

// Reward credits a reward hit worth base points and returns the points awarded.
func (sc Scoring) Reward(t *Tally, base int) int {
	pts := base * sc.Multiplier.Factor(t.Combo)
	t.Score += pts
	t.Combo++
	t.MaxCombo = max(t.MaxCombo, t.Combo)
	return pts
}

// Hazard applies a hazard hit carrying penalty points. The score never
// drops below zero. Returns the change actually applied to the score.
func (sc Scoring) Hazard(t *Tally, penalty int) int {
	if penalty < 0 {
		penalty = -penalty
	}
	before := t.Score
	t.Score = max(t.Score-penalty, 0)
	t.Combo = 0
	t.Lives = max(t.Lives-1, 0)
	return t.Score - before
}

// Miss applies the cost of a reward leaving the playfield unhit.
func (sc Scoring) Miss(t *Tally) {
	t.Combo = 0
	t.Lives = max(t.Lives-1, 0)
}

// WordVerdict is the outcome of submitting a letter-grid selection.
type WordVerdict int

const (
	WordNone WordVerdict = iota
	WordAccepted
	WordTooShort
	WordNotTarget
	WordAlreadyFound
)

// String returns the wire name of the verdict.
func (v WordVerdict) String() string {
	switch v {
	case WordAccepted:
		return "accepted"
	case WordTooShort:
		return "too_short"
	case WordNotTarget:
		return "not_target"
	case WordAlreadyFound:
		return "already_found"
	default:
		return ""
	}
}

// MarshalText encodes the verdict by name.
func (v WordVerdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a verdict from its name.
func (v *WordVerdict) UnmarshalText(text []byte) error {
	return parseName(v, text, WordAlreadyFound, "word verdict")
}

// Word judges a submitted word against the level's targets and the words
// already found, updating t on acceptance. Any rejection resets the combo.
func (sc Scoring) Word(t *Tally, word string, level int, targets, found []string) (WordVerdict, int) {
	n := utf8.RuneCountInString(word)
	switch {
	case n < sc.MinWordLen:
		t.Combo = 0
		return WordTooShort, 0
	case !slices.Contains(targets, word):
		t.Combo = 0
		return WordNotTarget, 0
	case slices.Contains(found, word):
		t.Combo = 0
		return WordAlreadyFound, 0
	}
	pts := n*sc.PerChar*max(level, 1) + t.Combo*sc.ComboBonus
	t.Score += pts
	t.Combo++
	t.MaxCombo = max(t.MaxCombo, t.Combo)
	return WordAccepted, pts
}
