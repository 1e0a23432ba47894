package wordgrid

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/venue-arcade/internal/core"
)

func TestGeneratePlacementIsLegal(t *testing.T) {
	words := []string{"NEURAL", "CYBER", "GRID", "HACK", "CODE", "BYTE", "DATA"}

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, dropped := Generate(rng, 8, words, Options{})

		claimed := make(map[Cell]string)
		for _, p := range g.Placements() {
			require.Len(t, p.Cells, len([]rune(p.Word)), "seed %d word %s", seed, p.Word)
			for i, c := range p.Cells {
				require.True(t, g.InBounds(c), "seed %d: %s out of bounds at %v", seed, p.Word, c)
				if i > 0 {
					prev := p.Cells[i-1]
					assert.Equal(t, p.Dir, Direction{c.Row - prev.Row, c.Col - prev.Col}, "seed %d: %s not straight", seed, p.Word)
				}
				if other, ok := claimed[c]; ok {
					t.Fatalf("seed %d: cell %v claimed by %s and %s", seed, c, other, p.Word)
				}
				claimed[c] = p.Word
				assert.True(t, g.At(c).Target)
			}
			assert.Equal(t, p.Word, g.Word(p.Cells))
		}
		assert.Equal(t, len(words), len(g.Placements())+len(dropped))
	}
}

func TestGenerateDropsOversizedWords(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, dropped := Generate(rng, 4, []string{"TOOLONG", "FIT"}, Options{})

	assert.Equal(t, []string{"TOOLONG"}, dropped)
	assert.Equal(t, []string{"FIT"}, g.Words())
}

func TestPlaceScanFirstFit(t *testing.T) {
	g := newGrid(3)

	claimed := map[Cell]bool{{0, 0}: true, {0, 1}: true, {0, 2}: true}
	p, ok := g.placeScan([]rune("ABC"), claimed)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 0}, p.Start, "first free row wins")
	assert.Equal(t, Direction{0, 1}, p.Dir)

	// Column 0 blocked in every row: no horizontal slot remains.
	claimed = map[Cell]bool{{0, 0}: true, {1, 0}: true, {2, 0}: true}
	p, ok = g.placeScan([]rune("ABC"), claimed)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 0, Col: 1}, p.Start)
	assert.Equal(t, Direction{1, 0}, p.Dir)

	claimed = map[Cell]bool{{1, 1}: true}
	_, ok = g.placeScan([]rune("ABC"), claimed)
	assert.True(t, ok)

	claimed = map[Cell]bool{{0, 0}: true, {1, 1}: true, {2, 2}: true}
	_, ok = g.placeScan([]rune("ABC"), claimed)
	assert.False(t, ok, "diagonal block leaves no straight slot")
}

func TestGenerateFullBoardDrops(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, dropped := Generate(rng, 2, []string{"AB", "CD", "EF"}, Options{})

	assert.LessOrEqual(t, len(g.Placements()), 2)
	assert.Contains(t, dropped, "EF")
	assert.Equal(t, 3, len(g.Placements())+len(dropped))
}

func TestGenerateFillerFromAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, _ := Generate(rng, 6, nil, Options{Alphabet: "XY"})

	for _, row := range g.Rows() {
		for _, l := range row {
			assert.Contains(t, "XY", string(l.Char))
			assert.False(t, l.Target)
		}
	}
}

func TestPickTargets(t *testing.T) {
	tiers := [][]string{
		{"cat", "dog", "sun", "map", "cat"},
		{"plane", "river", "stone", "cloud", "light", "tiger"},
	}

	tests := []struct {
		name  string
		level int
		want  int
		tier  int
	}{
		{"level one", 1, 3, 0},
		{"level two", 2, 4, 1},
		{"beyond tiers", 4, 5, 1},
		{"capped by pool", 9, 6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			got := PickTargets(rng, tiers, tt.level, 3)
			assert.Len(t, got, tt.want)
			seen := map[string]bool{}
			for _, w := range got {
				assert.Equal(t, strings.ToUpper(w), w)
				assert.False(t, seen[w], "duplicate %s", w)
				seen[w] = true
				found := false
				for _, src := range tiers[tt.tier] {
					if strings.EqualFold(src, w) {
						found = true
					}
				}
				assert.True(t, found, "%s not from tier %d", w, tt.tier)
			}
		})
	}
}

func TestSelectionPath(t *testing.T) {
	var s Selection
	s.Begin(Cell{0, 0})

	assert.True(t, s.Extend(Cell{1, 1}), "diagonal neighbour extends")
	assert.False(t, s.Extend(Cell{3, 3}), "non-adjacent is ignored")
	assert.True(t, s.Extend(Cell{1, 2}))
	assert.True(t, s.Extend(Cell{2, 2}))
	assert.Equal(t, []Cell{{0, 0}, {1, 1}, {1, 2}, {2, 2}}, s.Path())

	assert.True(t, s.Extend(Cell{1, 1}), "revisiting truncates")
	assert.Equal(t, []Cell{{0, 0}, {1, 1}}, s.Path())
	assert.False(t, s.Extend(Cell{1, 1}), "head is a no-op")

	s.Release()
	assert.False(t, s.Extend(Cell{2, 1}), "released path is frozen")
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestSelectionAlwaysValid(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	var s Selection
	s.Begin(Cell{3, 3})
	for range 500 {
		s.Extend(Cell{Row: rng.Intn(7), Col: rng.Intn(7)})
		require.True(t, ValidPath(s.Path()), "path %v", s.Path())
	}
}

func TestValidPath(t *testing.T) {
	assert.True(t, ValidPath(nil))
	assert.True(t, ValidPath([]Cell{{0, 0}, {0, 1}, {1, 2}}))
	assert.False(t, ValidPath([]Cell{{0, 0}, {0, 2}}))
	assert.False(t, ValidPath([]Cell{{0, 0}, {0, 1}, {0, 0}}))
}

func TestLayout(t *testing.T) {
	l := NewLayout(800, 400, 8)

	assert.InDelta(t, 50, l.CellSize, 1e-9)
	assert.InDelta(t, 200, l.Origin.X, 1e-9)
	assert.InDelta(t, 0, l.Origin.Y, 1e-9)

	c, ok := l.CellAt(core.V(225, 75))
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 0}, c)
	assert.Equal(t, core.V(225, 75), l.Center(c))

	_, ok = l.CellAt(core.V(100, 100))
	assert.False(t, ok, "left margin is outside the grid")
	_, ok = l.CellAt(core.V(600, 10))
	assert.False(t, ok, "right edge is exclusive")
}
