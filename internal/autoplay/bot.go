// Package autoplay drives sessions without a human: bots that play each
// hit mode with a tunable skill, and a batch simulator used for tuning
// configs and smoke-testing presets.
package autoplay

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	"github.com/vovakirdan/venue-arcade/internal/wordgrid"
)

// DefaultReaction is the pause between bot gestures, in seconds.
const DefaultReaction = 0.4

// Controls is the part of a session a bot may touch. *engine.Session
// implements it.
type Controls interface {
	PointerDown(p core.Vec2)
	PointerMove(p core.Vec2)
	PointerUp()
	Placements() []wordgrid.Placement
}

// Bot plays a session through its pointer methods.
type Bot interface {
	// Step is called after every tick with the snapshot that tick produced.
	Step(s Controls, snap engine.Snapshot, dt float64)
}

// NewBot returns the bot for the session's hit mode. accuracy in [0,1] is
// the chance each gesture is played well; the rest are sloppy.
func NewBot(mode engine.HitMode, accuracy float64, rng *rand.Rand) Bot {
	p := pacer{reaction: DefaultReaction, accuracy: core.ClampF(accuracy, 0, 1), rng: rng}
	switch mode {
	case engine.HitByPath:
		return &Slicer{pacer: p}
	case engine.HitByGrid:
		return &WordFinder{pacer: p}
	default:
		return &Clicker{pacer: p}
	}
}

// pacer spaces gestures out by the reaction time, like the CPU paddle
// that only moves a fraction of the way each frame.
type pacer struct {
	reaction float64
	wait     float64
	accuracy float64
	rng      *rand.Rand
}

func (p *pacer) ready(dt float64) bool {
	p.wait -= dt
	if p.wait > 0 {
		return false
	}
	p.wait = p.reaction
	return true
}

func (p *pacer) skilled() bool {
	return p.rng.Float64() < p.accuracy
}

// onScreen returns the entities inside the playfield.
func onScreen(snap engine.Snapshot) []engine.EntityView {
	var out []engine.EntityView
	for _, e := range snap.Entities {
		if e.X >= 0 && e.X <= snap.Bounds.W && e.Y >= 0 && e.Y <= snap.Bounds.H {
			out = append(out, e)
		}
	}
	return out
}

// Clicker taps targets. A skilled tap hits the reward closest to falling
// out; a sloppy one taps near a random entity, hazards included.
type Clicker struct {
	pacer
}

func (b *Clicker) Step(s Controls, snap engine.Snapshot, dt float64) {
	if snap.Status != engine.StatusPlaying || !b.ready(dt) {
		return
	}
	visible := onScreen(snap)
	if len(visible) == 0 {
		return
	}

	if b.skilled() {
		var best *engine.EntityView
		for i, e := range visible {
			if e.Hazard {
				continue
			}
			if best == nil || e.Y > best.Y {
				best = &visible[i]
			}
		}
		if best != nil {
			s.PointerDown(core.V(best.X, best.Y))
			s.PointerUp()
		}
		return
	}

	e := visible[b.rng.Intn(len(visible))]
	jitter := core.V(b.rng.Float64()-0.5, b.rng.Float64()-0.5).Scale(e.Size)
	s.PointerDown(core.V(e.X, e.Y).Add(jitter))
	s.PointerUp()
}

// Slicer swipes horizontally through fruit. A skilled swipe skips fruit
// with a hazard nearby; a sloppy one does not look.
type Slicer struct {
	pacer
}

func (b *Slicer) Step(s Controls, snap engine.Snapshot, dt float64) {
	if snap.Status != engine.StatusPlaying || !b.ready(dt) {
		return
	}
	visible := onScreen(snap)
	careful := b.skilled()

	for _, e := range visible {
		if e.Hazard {
			continue
		}
		if careful && hazardNear(visible, e) {
			continue
		}
		swipe(s, core.V(e.X, e.Y), e.Size)
		return
	}
}

func hazardNear(visible []engine.EntityView, target engine.EntityView) bool {
	at := core.V(target.X, target.Y)
	for _, h := range visible {
		if h.Hazard && at.Dist(core.V(h.X, h.Y)) < 2*(target.Size+h.Size) {
			return true
		}
	}
	return false
}

func swipe(s Controls, centre core.Vec2, size float64) {
	step := max(size/4, 1)
	from := centre.X - size
	s.PointerDown(core.V(from, centre.Y))
	for x := from + step; x <= centre.X+size; x += step {
		s.PointerMove(core.V(x, centre.Y))
	}
	s.PointerUp()
}

// WordFinder traces hidden words. It knows where every word was placed;
// a sloppy trace runs the word backwards and is rejected.
type WordFinder struct {
	pacer
}

func (b *WordFinder) Step(s Controls, snap engine.Snapshot, dt float64) {
	if snap.Status != engine.StatusPlaying || snap.Grid == nil || !b.ready(dt) {
		return
	}

	for _, p := range s.Placements() {
		if slices.Contains(snap.Grid.FoundWords, p.Word) {
			continue
		}
		path := p.Cells
		if !b.skilled() {
			path = slices.Clone(path)
			slices.Reverse(path)
		}
		trace(s, snap.Grid.Layout, path)
		return
	}
}

func trace(s Controls, layout wordgrid.Layout, path []wordgrid.Cell) {
	if len(path) == 0 {
		return
	}
	s.PointerDown(layout.Center(path[0]))
	for _, c := range path[1:] {
		s.PointerMove(layout.Center(c))
	}
	s.PointerUp()
}
