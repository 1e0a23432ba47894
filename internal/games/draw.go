// Package games holds the terminal drawing helpers shared by the minigames.
// Each game lives in its own subpackage and registers itself in init().
package games

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/core"
	"github.com/vovakirdan/venue-arcade/internal/engine"
)

// Visual characters shared by the games.
const (
	TrailChar     = '•'
	TrailFadeChar = '·'
	LifeChar      = '♥'
	HUDSeparator  = "  │  "
)

// Glyph is how one entity category is drawn.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Palette maps category names to glyphs.
type Palette map[string]Glyph

// NewPalette builds a palette from config categories. Unknown colors fall
// back to the default color; empty glyphs to '●'.
func NewPalette(groups ...[]config.CategoryConfig) Palette {
	p := make(Palette)
	for _, group := range groups {
		for _, c := range group {
			g := Glyph{Rune: '●'}
			if r := []rune(c.Glyph); len(r) > 0 {
				g.Rune = r[0]
			}
			if col, ok := core.ColorByName(c.Color); ok {
				g.Color = col
			}
			p[c.Name] = g
		}
	}
	return p
}

// Lookup returns the glyph for a category.
func (p Palette) Lookup(category string) Glyph {
	if g, ok := p[category]; ok {
		return g
	}
	return Glyph{Rune: '?', Color: core.ColorWhite}
}

// DrawEntities draws every entity as a filled disc scaled to its size.
func DrawEntities(dst *core.Screen, snap engine.Snapshot, vp core.Viewport, pal Palette) {
	for _, e := range snap.Entities {
		g := pal.Lookup(e.Category)
		col, row := vp.ToCell(core.V(e.X, e.Y))
		radius := e.Size / 2 / vp.UnitsPerCol
		if radius < 1 {
			dst.SetColored(col, row, g.Rune, g.Color)
			continue
		}
		dst.DrawDisc(col, row, radius, g.Rune, g.Color)
	}
}

// DrawTrails draws the active gesture and the fading ones.
func DrawTrails(dst *core.Screen, snap engine.Snapshot, vp core.Viewport) {
	for _, t := range snap.Fading {
		ch, c := TrailChar, core.ColorBrightWhite
		if t.Fade < 0.5 {
			ch, c = TrailFadeChar, core.ColorGray
		}
		drawPolyline(dst, t.Points, vp, ch, c)
	}
	if snap.Trail != nil {
		drawPolyline(dst, snap.Trail.Points, vp, TrailChar, core.ColorBrightCyan)
	}
}

func drawPolyline(dst *core.Screen, pts []core.Vec2, vp core.Viewport, ch rune, c core.Color) {
	for i := range pts {
		if i == 0 {
			col, row := vp.ToCell(pts[0])
			dst.SetColored(col, row, ch, c)
			continue
		}
		a, b := pts[i-1], pts[i]
		steps := int(math.Ceil(math.Max(
			math.Abs(b.X-a.X)/vp.UnitsPerCol,
			math.Abs(b.Y-a.Y)/vp.UnitsPerRow,
		)))
		for s := 1; s <= steps; s++ {
			p := a.Add(b.Sub(a).Scale(float64(s) / float64(steps)))
			col, row := vp.ToCell(p)
			dst.SetColored(col, row, ch, c)
		}
	}
}

// DrawEvents draws score pop-ups for hits and found words.
func DrawEvents(dst *core.Screen, events []engine.Event, vp core.Viewport) {
	for _, ev := range events {
		var text string
		var c core.Color
		switch ev.Kind {
		case engine.EventHit, engine.EventWordFound:
			text, c = fmt.Sprintf("+%d", ev.Points), core.ColorBrightYellow
		case engine.EventHazard:
			text, c = fmt.Sprintf("%d", ev.Points), core.ColorBrightRed
		case engine.EventMiss:
			text, c = "miss", core.ColorRed
		case engine.EventLevelUp:
			dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf(" LEVEL %d ", ev.Level))
			continue
		default:
			continue
		}
		col, row := vp.ToCell(ev.Pos)
		row = max(row-1, core.HUDRows)
		dst.DrawTextColored(col-len(text)/2, row, text, c)
	}
}

// DrawHUD draws the status line on the top row.
func DrawHUD(dst *core.Screen, title string, snap engine.Snapshot) {
	parts := []string{
		" " + strings.ToUpper(title),
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Level: %d", snap.Level),
	}
	if snap.Combo > 1 {
		parts = append(parts, fmt.Sprintf("Combo x%d", snap.Combo))
	}
	if snap.Lives > 0 || snap.Status == engine.StatusOver {
		parts = append(parts, strings.Repeat(string(LifeChar), snap.Lives))
	}
	if snap.TimeLeft > 0 {
		parts = append(parts, FormatClock(snap.TimeLeft))
	}
	dst.DrawText(0, 0, strings.Join(parts, HUDSeparator))
}

// FormatClock renders seconds as m:ss, rounding up so 0:00 means time is out.
func FormatClock(seconds float64) string {
	s := int(math.Ceil(seconds))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// DrawOverlay draws the title, pause and game-over boxes.
func DrawOverlay(dst *core.Screen, title, howTo string, snap engine.Snapshot) {
	switch snap.Status {
	case engine.StatusIdle:
		DrawCenteredMessage(dst, strings.ToUpper(title), howTo, "Press Enter to start")
	case engine.StatusPaused:
		DrawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case engine.StatusOver:
		DrawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best combo: %d  |  Level: %d", snap.Score, snap.MaxCombo, snap.Level),
			"Enter to retry  |  R for title  |  Q to quit")
	}
}

// DrawCenteredMessage draws a message box in the center of the screen.
func DrawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
