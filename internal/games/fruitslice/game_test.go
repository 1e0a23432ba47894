package fruitslice

import (
	"strings"
	"testing"

	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	"github.com/vovakirdan/venue-arcade/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g, err := New(registry.Options{Seed: seed})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestFruitIsThrownUpward(t *testing.T) {
	g := newTestGame(t, 3)
	g.Start()

	for i := 0; i < 1000; i++ {
		snap := g.Tick(1.0 / 60)
		if len(snap.Entities) == 0 {
			continue
		}
		e := snap.Entities[0]
		if e.Y < snap.Bounds.H {
			// Already on screen: it came from below.
			return
		}
	}
	t.Fatal("no fruit reached the playfield")
}

func TestSliceAcrossFruit(t *testing.T) {
	g := newTestGame(t, 4)
	g.Start()

	var target engine.EntityView
	for i := 0; i < 2000; i++ {
		snap := g.Tick(1.0 / 60)
		for _, e := range snap.Entities {
			if !e.Hazard && e.Y > 0 && e.Y < snap.Bounds.H {
				target = e
				break
			}
		}
		if target.ID != 0 {
			break
		}
	}
	if target.ID == 0 {
		t.Fatal("no fruit to slice")
	}

	g.PointerDown(core.V(target.X-target.Size, target.Y))
	for x := target.X - target.Size; x <= target.X+target.Size; x += 6 {
		g.PointerMove(core.V(x, target.Y))
	}
	g.PointerUp()

	snap := g.Snapshot()
	if snap.Score < target.Points {
		t.Errorf("score = %d, want at least %d", snap.Score, target.Points)
	}
	for _, e := range snap.Entities {
		if e.ID == target.ID {
			t.Error("sliced fruit is still alive")
		}
	}
	if len(snap.Fading) != 1 {
		t.Errorf("fading trails = %d, want 1", len(snap.Fading))
	}
}

func TestTimerRunsOut(t *testing.T) {
	g := newTestGame(t, 5)
	g.Start()
	// Stay clear of bombs by never touching anything.
	var snap engine.Snapshot
	for i := 0; i < 61*60 && g.Status() == engine.StatusPlaying; i++ {
		snap = g.Tick(1.0 / 60)
	}
	if snap.Status != engine.StatusOver {
		t.Fatalf("status = %v after the time limit", snap.Status)
	}
}

func TestRenderTrails(t *testing.T) {
	g := newTestGame(t, 6)
	g.Start()
	g.PointerDown(core.V(100, 100))
	g.PointerMove(core.V(300, 100))

	scr := core.NewScreen(80, 24)
	g.Render(scr, g.Snapshot(), core.DefaultViewport())
	if !strings.ContainsRune(scr.Row(6), '•') {
		t.Errorf("expected the active trail on row 6, got %q", scr.Row(6))
	}
	if !strings.Contains(scr.Row(0), "FRUIT SLICE") {
		t.Errorf("HUD missing: %q", scr.Row(0))
	}
}
