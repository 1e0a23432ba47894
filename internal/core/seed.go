package core

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// SeedFromString derives a deterministic RNG seed from an arbitrary phrase.
// The same phrase always yields the same session layout.
func SeedFromString(phrase string) int64 {
	return int64(xxhash.Sum64String(phrase) & 0x7fffffffffffffff)
}

// DailySeed returns the seed shared by every session started on day t (UTC).
func DailySeed(t time.Time) int64 {
	return SeedFromString("daily:" + t.UTC().Format("2006-01-02"))
}
