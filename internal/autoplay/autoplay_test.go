package autoplay

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	_ "github.com/vovakirdan/venue-arcade/internal/games/fruitslice"
	_ "github.com/vovakirdan/venue-arcade/internal/games/neuralhack"
	_ "github.com/vovakirdan/venue-arcade/internal/games/wordconnect"
	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/wordgrid"
)

func TestNewBotByMode(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.IsType(t, &Clicker{}, NewBot(engine.HitByPoint, 1, rng))
	assert.IsType(t, &Slicer{}, NewBot(engine.HitByPath, 1, rng))
	assert.IsType(t, &WordFinder{}, NewBot(engine.HitByGrid, 1, rng))
}

func TestPacerWaitsForReaction(t *testing.T) {
	p := pacer{reaction: 0.5, rng: rand.New(rand.NewSource(1))}
	assert.True(t, p.ready(0.1), "first gesture is immediate")
	assert.False(t, p.ready(0.2))
	assert.False(t, p.ready(0.2))
	assert.True(t, p.ready(0.2))
}

type recorder struct {
	downs, moves, ups []core.Vec2
	placed            []wordgrid.Placement
}

func (r *recorder) PointerDown(p core.Vec2)          { r.downs = append(r.downs, p) }
func (r *recorder) PointerMove(p core.Vec2)          { r.moves = append(r.moves, p) }
func (r *recorder) PointerUp()                       { r.ups = append(r.ups, core.Vec2{}) }
func (r *recorder) Placements() []wordgrid.Placement { return r.placed }

var playing = engine.Snapshot{Status: engine.StatusPlaying, Bounds: engine.Bounds{W: 800, H: 460}}

func TestClickerTapsLowestReward(t *testing.T) {
	snap := playing
	snap.Entities = []engine.EntityView{
		{ID: 1, X: 100, Y: 50, Size: 20},
		{ID: 2, X: 200, Y: 300, Size: 20},
		{ID: 3, X: 300, Y: 400, Size: 20, Hazard: true},
		{ID: 4, X: 400, Y: 600, Size: 20}, // below the playfield
	}

	rec := &recorder{}
	NewBot(engine.HitByPoint, 1, rand.New(rand.NewSource(1))).Step(rec, snap, 1.0/60)
	require.Len(t, rec.downs, 1)
	assert.Equal(t, core.V(200, 300), rec.downs[0])
	assert.Len(t, rec.ups, 1)
}

func TestBotsIgnoreNonPlaying(t *testing.T) {
	snap := playing
	snap.Status = engine.StatusPaused
	snap.Entities = []engine.EntityView{{ID: 1, X: 100, Y: 100, Size: 20}}

	for _, mode := range []engine.HitMode{engine.HitByPoint, engine.HitByPath, engine.HitByGrid} {
		rec := &recorder{}
		NewBot(mode, 1, rand.New(rand.NewSource(1))).Step(rec, snap, 1)
		assert.Empty(t, rec.downs, mode.String())
	}
}

func TestSlicerAvoidsBombs(t *testing.T) {
	snap := playing
	snap.Entities = []engine.EntityView{
		{ID: 1, X: 100, Y: 100, Size: 40},
		{ID: 2, X: 120, Y: 110, Size: 40, Hazard: true},
		{ID: 3, X: 500, Y: 200, Size: 40},
	}

	rec := &recorder{}
	NewBot(engine.HitByPath, 1, rand.New(rand.NewSource(1))).Step(rec, snap, 1.0/60)
	require.Len(t, rec.downs, 1)
	assert.Equal(t, core.V(460, 200), rec.downs[0], "swipe starts left of the safe fruit")
	require.NotEmpty(t, rec.moves)
	last := rec.moves[len(rec.moves)-1]
	assert.GreaterOrEqual(t, last.X, 530.0)
	for _, p := range rec.moves {
		assert.Equal(t, 200.0, p.Y)
	}
}

func TestWordFinderTracesPlacement(t *testing.T) {
	layout := wordgrid.NewLayout(800, 400, 8)
	snap := playing
	snap.Grid = &engine.GridView{Layout: layout, FoundWords: []string{"CAT"}}

	cells := []wordgrid.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}
	rec := &recorder{placed: []wordgrid.Placement{
		{Word: "CAT", Cells: []wordgrid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}},
		{Word: "DOG", Cells: cells},
	}}

	NewBot(engine.HitByGrid, 1, rand.New(rand.NewSource(1))).Step(rec, snap, 1.0/60)
	require.Len(t, rec.downs, 1)
	assert.Equal(t, layout.Center(cells[0]), rec.downs[0])
	assert.Equal(t, []core.Vec2{layout.Center(cells[1]), layout.Center(cells[2])}, rec.moves)

	sloppy := &recorder{placed: rec.placed[1:]}
	NewBot(engine.HitByGrid, 0, rand.New(rand.NewSource(1))).Step(sloppy, snap, 1.0/60)
	require.Len(t, sloppy.downs, 1)
	assert.Equal(t, layout.Center(cells[2]), sloppy.downs[0], "sloppy trace runs backwards")
}

func TestWordFinderClearsLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	res, err := Simulate(context.Background(), Options{
		GameID:   "word-connect",
		Runs:     1,
		Seconds:  20,
		Seed:     3,
		Accuracy: 1,
	})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.GreaterOrEqual(t, res[0].Final.Level, 2, "a perfect finder clears the first grid")
	assert.Positive(t, res[0].Final.Score)
	assert.Equal(t, "cap", res[0].Reason)
}

func TestSimulateDeterministic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	opts := Options{GameID: "fruit-slice", Runs: 4, Seconds: 30, Seed: 77, Accuracy: 0.8, Workers: 2}

	a, err := Simulate(context.Background(), opts)
	require.NoError(t, err)
	b, err := Simulate(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, a, 4)
	for i := range a {
		assert.Equal(t, i, a[i].Run)
		assert.Equal(t, int64(77+i), a[i].Seed)
		assert.Equal(t, a[i].Final.Score, b[i].Final.Score, "run %d", i)
		assert.Equal(t, a[i].Reason, b[i].Reason, "run %d", i)
	}
}

func TestSimulateEndsOnLives(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	// A sloppy clicker eventually taps viruses or lets nodes through.
	res, err := Simulate(context.Background(), Options{
		GameID:   "neural-hack",
		Runs:     1,
		Seconds:  600,
		Seed:     5,
		Accuracy: 0,
		TickRate: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, engine.StatusOver, res[0].Final.Status)
	assert.Equal(t, "lives", res[0].Reason)
}

func TestSimulateErrors(t *testing.T) {
	_, err := Simulate(context.Background(), Options{GameID: "nope"})
	assert.ErrorIs(t, err, registry.ErrUnknownGame)

	t.Setenv("HOME", t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Simulate(ctx, Options{GameID: "neural-hack", Runs: 3})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Reason: "time", Final: engine.Snapshot{Score: 30, Level: 1}},
		{Reason: "lives", Final: engine.Snapshot{Score: 10, Level: 1}},
		{Reason: "time", Final: engine.Snapshot{Score: 20, Level: 4}},
	}
	sum := Summarize(results)
	assert.Equal(t, 3, sum.Runs)
	assert.Equal(t, 30, sum.Best)
	assert.Equal(t, 10, sum.Worst)
	assert.Equal(t, 20, sum.Median)
	assert.InDelta(t, 20.0, sum.Mean, 1e-9)
	assert.InDelta(t, 2.0, sum.MeanLevel, 1e-9)
	assert.Equal(t, map[string]int{"time": 2, "lives": 1}, sum.Reasons)

	assert.Equal(t, 0, Summarize(nil).Runs)
}

func TestOnScreen(t *testing.T) {
	snap := engine.Snapshot{
		Bounds: engine.Bounds{W: 100, H: 100},
		Entities: []engine.EntityView{
			{ID: 1, X: 50, Y: -5},
			{ID: 2, X: 50, Y: 50},
			{ID: 3, X: 150, Y: 50},
		},
	}
	got := onScreen(snap)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(2), got[0].ID)
}
