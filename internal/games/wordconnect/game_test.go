package wordconnect

import (
	"strings"
	"testing"

	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/wordgrid"
)

func newTestGame(t *testing.T, opts registry.Options) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestStartBuildsGrid(t *testing.T) {
	g := newTestGame(t, registry.Options{Seed: 9})
	if g.Snapshot().Grid != nil {
		t.Fatal("idle game should have no grid")
	}

	g.Start()
	snap := g.Snapshot()
	if snap.Grid == nil {
		t.Fatal("playing game should have a grid")
	}
	if len(snap.Grid.Rows) != 8 {
		t.Errorf("grid rows = %d, want 8", len(snap.Grid.Rows))
	}
	if n := len(snap.Grid.TargetWords); n != 3 {
		t.Errorf("level one targets = %d, want 3", n)
	}
	if snap.TimeLeft != 180 {
		t.Errorf("time left = %v, want 180", snap.TimeLeft)
	}
}

func TestFindWordThroughPointer(t *testing.T) {
	g := newTestGame(t, registry.Options{Seed: 10})
	g.Start()
	snap := g.Snapshot()

	word := snap.Grid.TargetWords[0]
	var cells []wordgrid.Cell
	for _, p := range g.Placements() {
		if p.Word == word {
			cells = p.Cells
		}
	}

	layout := snap.Grid.Layout
	g.PointerDown(layout.Center(cells[0]))
	for _, c := range cells[1:] {
		g.PointerMove(layout.Center(c))
	}
	g.PointerUp()

	after := g.Snapshot()
	if len(after.Grid.FoundWords) != 1 || after.Grid.FoundWords[0] != word {
		t.Fatalf("found = %v, want [%s]", after.Grid.FoundWords, word)
	}
	if want := len(word) * 10; after.Score != want {
		t.Errorf("score = %d, want %d", after.Score, want)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr, after, core.DefaultViewport())
	if !strings.Contains(scr.String(), word) {
		t.Error("found word should be listed")
	}
	if !strings.Contains(scr.String(), "found!") {
		t.Error("verdict should be shown")
	}
}

func TestFixedPresetStaysOnFirstTier(t *testing.T) {
	g := newTestGame(t, registry.Options{Seed: 11, Difficulty: config.DifficultyFixed})
	if tiers := len(g.Config().Word.Tiers); tiers != 1 {
		t.Errorf("tiers = %d, want 1", tiers)
	}
	g.Start()
	for _, w := range g.Snapshot().Grid.TargetWords {
		if len(w) != 3 {
			t.Errorf("first tier word %q should have three letters", w)
		}
	}
}

func TestPauseHidesNothing(t *testing.T) {
	g := newTestGame(t, registry.Options{Seed: 12})
	g.Start()
	g.Pause()

	scr := core.NewScreen(80, 24)
	g.Render(scr, g.Snapshot(), core.DefaultViewport())
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
	if g.Tick(1).TimeLeft != 180 {
		t.Error("timer ran while paused")
	}
	if g.Status() != engine.StatusPaused {
		t.Error("tick changed the status")
	}
}
