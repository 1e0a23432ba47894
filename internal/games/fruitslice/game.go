// Package fruitslice implements Fruit Slice, an arcade slicer.
// Fruit is thrown up from below the screen and falls back under gravity;
// dragging across it slices it. Consecutive slices build a combo
// multiplier. Bombs cost a life and points.
package fruitslice

import (
	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	"github.com/vovakirdan/venue-arcade/internal/games"
	"github.com/vovakirdan/venue-arcade/internal/registry"
)

// ID is the registry and score-storage identifier.
const ID = config.FruitSliceID

const (
	title = "Fruit Slice"
	howTo = "Drag across the fruit to slice it. Chain slices for a combo. Avoid bombs!"
)

// Game binds the engine session to the Fruit Slice configuration and look.
type Game struct {
	*engine.Session
	palette games.Palette
}

// New loads the configuration and creates an idle game.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadFruitSlice(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Difficulty != "" {
		config.ApplyArcadePreset(&cfg, opts.Difficulty)
	}
	return &Game{
		Session: engine.NewSession(cfg.EngineConfig(), opts.Seed, engine.WithLogger(opts.Logger)),
		palette: games.NewPalette(cfg.Rewards, cfg.Hazards),
	}, nil
}

func (g *Game) ID() string              { return ID }
func (g *Game) Title() string           { return title }
func (g *Game) Engine() *engine.Session { return g.Session }

// Render draws the fruit, the slicing trails and the HUD.
func (g *Game) Render(dst *core.Screen, snap engine.Snapshot, vp core.Viewport) {
	games.DrawEntities(dst, snap, vp, g.palette)
	games.DrawTrails(dst, snap, vp)
	games.DrawEvents(dst, snap.Events, vp)
	games.DrawHUD(dst, title, snap)
	games.DrawOverlay(dst, title, howTo, snap)
}

func init() {
	registry.Register(ID, title, func(opts registry.Options) (registry.Game, error) {
		g, err := New(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
