package wordgrid

import (
	"math/rand"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultAlphabet is the filler letter pool. Letters appear as often as
// they should be drawn, so common vowels and consonants dominate.
const DefaultAlphabet = "EEEEEEEAAAAAIIIIIOOOOOUUTTTTTNNNNSSSSRRRRLLLHHHDDDCCMMPPBGGFWYVKJXQZ"

// DefaultAttempts is the number of random placements tried per word.
const DefaultAttempts = 200

// Options controls grid generation.
type Options struct {
	Attempts int    // Random placement tries per word before the scan fallback
	Alphabet string // Weighted filler pool; empty means DefaultAlphabet
}

// Generate builds a size×size grid with as many of words hidden in it as
// fit. Words that cannot be placed are returned in dropped. Generation
// always terminates and never fails.
func Generate(rng *rand.Rand, size int, words []string, opts Options) (g *Grid, dropped []string) {
	if size < 1 {
		size = 1
	}
	if opts.Attempts <= 0 {
		opts.Attempts = DefaultAttempts
	}
	pool := []rune(opts.Alphabet)
	if len(pool) == 0 {
		pool = []rune(DefaultAlphabet)
	}

	g = newGrid(size)
	for r := range g.letters {
		for c := range g.letters[r] {
			g.letters[r][c].Char = pool[rng.Intn(len(pool))]
		}
	}

	claimed := make(map[Cell]bool)
	for _, w := range words {
		letters := []rune(w)
		if len(letters) == 0 || len(letters) > size {
			dropped = append(dropped, w)
			continue
		}
		p, ok := g.placeRandom(rng, letters, claimed, opts.Attempts)
		if !ok {
			p, ok = g.placeScan(letters, claimed)
		}
		if !ok {
			dropped = append(dropped, w)
			continue
		}
		p.Word = w
		for i, c := range p.Cells {
			claimed[c] = true
			g.letters[c.Row][c.Col] = Letter{Char: letters[i], Target: true}
		}
		g.placements = append(g.placements, p)
	}
	return g, dropped
}

func (g *Grid) placeRandom(rng *rand.Rand, letters []rune, claimed map[Cell]bool, attempts int) (Placement, bool) {
	for range attempts {
		dir := Directions[rng.Intn(len(Directions))]
		start := Cell{Row: rng.Intn(g.size), Col: rng.Intn(g.size)}
		if cells, ok := g.fit(start, dir, len(letters), claimed); ok {
			return Placement{Start: start, Dir: dir, Cells: cells}, true
		}
	}
	return Placement{}, false
}

// placeScan tries every horizontal slot row by row, then every vertical
// slot column by column, and takes the first free one.
func (g *Grid) placeScan(letters []rune, claimed map[Cell]bool) (Placement, bool) {
	n := len(letters)
	for _, dir := range []Direction{{0, 1}, {1, 0}} {
		for a := 0; a < g.size; a++ {
			for b := 0; b <= g.size-n; b++ {
				start := Cell{Row: a, Col: b}
				if dir.DR == 1 {
					start = Cell{Row: b, Col: a}
				}
				if cells, ok := g.fit(start, dir, n, claimed); ok {
					return Placement{Start: start, Dir: dir, Cells: cells}, true
				}
			}
		}
	}
	return Placement{}, false
}

func (g *Grid) fit(start Cell, dir Direction, n int, claimed map[Cell]bool) ([]Cell, bool) {
	cells := make([]Cell, n)
	for i := range n {
		c := Cell{Row: start.Row + dir.DR*i, Col: start.Col + dir.DC*i}
		if !g.InBounds(c) || claimed[c] {
			return nil, false
		}
		cells[i] = c
	}
	return cells, true
}

// PickTargets chooses the target words for a level: the tier for the level
// (the last tier once levels outrun them) is shuffled and the first
// base+level/2 distinct words are taken, upper-cased.
func PickTargets(rng *rand.Rand, tiers [][]string, level, base int) []string {
	if len(tiers) == 0 {
		return nil
	}
	level = max(level, 1)
	tier := tiers[min(level, len(tiers))-1]

	pool := make([]string, 0, len(tier))
	for _, w := range tier {
		w = strings.ToUpper(strings.TrimSpace(w))
		if utf8.RuneCountInString(w) > 0 && !slices.Contains(pool, w) {
			pool = append(pool, w)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	n := min(base+level/2, len(pool))
	return pool[:n]
}
