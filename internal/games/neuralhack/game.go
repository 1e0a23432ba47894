// Package neuralhack implements Neural Hack, a reaction clicker.
// Data nodes fall through the grid and the player clicks them before they
// reach the bottom edge. Viruses cost a life.
package neuralhack

import (
	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	"github.com/vovakirdan/venue-arcade/internal/games"
	"github.com/vovakirdan/venue-arcade/internal/registry"
)

// ID is the registry and score-storage identifier.
const ID = config.NeuralHackID

const (
	title     = "Neural Hack"
	howTo     = "Click the nodes before they fall through. Avoid the viruses."
	gridChar  = '·'
	gridEvery = 4
)

// Game binds the engine session to the Neural Hack configuration and look.
type Game struct {
	*engine.Session
	palette games.Palette
}

// New loads the configuration and creates an idle game.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadNeuralHack(opts.ConfigPath)
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

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return title }

// Engine returns the session.
func (g *Game) Engine() *engine.Session { return g.Session }

// Render draws the circuit backdrop, the nodes and the HUD.
func (g *Game) Render(dst *core.Screen, snap engine.Snapshot, vp core.Viewport) {
	for y := core.HUDRows + 1; y < dst.Height(); y += gridEvery / 2 {
		for x := 0; x < dst.Width(); x += gridEvery {
			dst.SetColored(x, y, gridChar, core.ColorGray)
		}
	}

	games.DrawEntities(dst, snap, vp, g.palette)
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
