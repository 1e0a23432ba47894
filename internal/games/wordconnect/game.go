// Package wordconnect implements Word Connect, a timed word search.
// Target words hide in a letter grid along straight lines; the player
// drags across adjacent letters to spell them. Finding every word
// advances the level and adds bonus time.
package wordconnect

import (
	"strings"

	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	"github.com/vovakirdan/venue-arcade/internal/games"
	"github.com/vovakirdan/venue-arcade/internal/registry"
	"github.com/vovakirdan/venue-arcade/internal/wordgrid"
)

// ID is the registry and score-storage identifier.
const ID = config.WordConnectID

const (
	title       = "Word Connect"
	howTo       = "Drag across adjacent letters to spell the hidden words."
	hiddenChar  = '_'
	listHeading = "WORDS"
)

// Game binds the engine session to the Word Connect configuration and look.
type Game struct {
	*engine.Session
}

// New loads the configuration and creates an idle game.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadWordConnect(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Difficulty != "" {
		config.ApplyWordConnectPreset(&cfg, opts.Difficulty)
	}
	return &Game{
		Session: engine.NewSession(cfg.EngineConfig(), opts.Seed, engine.WithLogger(opts.Logger)),
	}, nil
}

func (g *Game) ID() string              { return ID }
func (g *Game) Title() string           { return title }
func (g *Game) Engine() *engine.Session { return g.Session }

// Render draws the letter grid, the word list and the current selection.
func (g *Game) Render(dst *core.Screen, snap engine.Snapshot, vp core.Viewport) {
	if grid := snap.Grid; grid != nil {
		drawGrid(dst, grid, vp)
		drawWordList(dst, grid)
		drawSelection(dst, grid, vp)
	}
	games.DrawEvents(dst, snap.Events, vp)
	games.DrawHUD(dst, title, snap)
	games.DrawOverlay(dst, title, howTo, snap)
}

func drawGrid(dst *core.Screen, grid *engine.GridView, vp core.Viewport) {
	for r, row := range grid.Rows {
		for c, l := range row {
			col, y := vp.ToCell(grid.Layout.Center(wordgrid.Cell{Row: r, Col: c}))
			dst.SetColored(col, y, l.Char, letterColor(l))
		}
	}
}

func letterColor(l wordgrid.Letter) core.Color {
	switch {
	case l.Selected:
		return core.ColorBrightYellow
	case l.Connected:
		return core.ColorBrightGreen
	default:
		return core.ColorWhite
	}
}

// drawWordList lists the targets in the left margin, hiding the ones not
// found yet.
func drawWordList(dst *core.Screen, grid *engine.GridView) {
	x := 1
	y := core.HUDRows + 1
	dst.DrawTextColored(x, y, listHeading, core.ColorBrightCyan)
	for i, w := range grid.TargetWords {
		text := strings.Repeat(string(hiddenChar), len([]rune(w)))
		c := core.ColorGray
		for _, f := range grid.FoundWords {
			if f == w {
				text, c = w, core.ColorBrightGreen
				break
			}
		}
		dst.DrawTextColored(x, y+2+i, text, c)
	}
}

// drawSelection shows the word being spelled and the last verdict in the
// right margin.
func drawSelection(dst *core.Screen, grid *engine.GridView, vp core.Viewport) {
	right, _ := vp.ToCell(core.V(grid.Layout.Origin.X+grid.Layout.CellSize*float64(grid.Layout.N), 0))
	x := right + 2
	y := core.HUDRows + 1
	if grid.Word != "" {
		dst.DrawTextColored(x, y, grid.Word, core.ColorBrightYellow)
	}
	switch grid.Verdict {
	case engine.WordAccepted:
		dst.DrawTextColored(x, y+1, "found!", core.ColorBrightGreen)
	case engine.WordNotTarget:
		dst.DrawTextColored(x, y+1, "not a word here", core.ColorRed)
	case engine.WordAlreadyFound:
		dst.DrawTextColored(x, y+1, "already found", core.ColorOrange)
	}
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
