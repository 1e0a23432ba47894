// Package wordgrid implements the letter-grid board of the word-connect game:
// generation with hidden target words, adjacency-constrained selection paths
// and the mapping between playfield units and grid cells.
package wordgrid

import "strings"

// Cell addresses one square of the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Adjacent reports whether o is one of the 8 neighbours of c.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Direction is a unit step along a row, column or diagonal.
type Direction struct {
	DR, DC int
}

// Directions lists the 8 straight-line directions a word may run in.
var Directions = [8]Direction{
	{0, 1}, {1, 0}, {1, 1}, {-1, 1},
	{0, -1}, {-1, 0}, {-1, -1}, {1, -1},
}

// Letter is the state of one grid square.
type Letter struct {
	Char      rune `json:"char"`
	Selected  bool `json:"selected"`
	Connected bool `json:"connected"`
	Target    bool `json:"target"`
}

// Placement records where a target word was hidden.
type Placement struct {
	Word  string
	Start Cell
	Dir   Direction
	Cells []Cell
}

// Grid is an N×N board of letters with target words hidden in it.
type Grid struct {
	size       int
	letters    [][]Letter
	placements []Placement
}

func newGrid(size int) *Grid {
	g := &Grid{size: size, letters: make([][]Letter, size)}
	for r := range g.letters {
		g.letters[r] = make([]Letter, size)
	}
	return g
}

// Size returns N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies on the board.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// At returns the letter at c. Out-of-range cells yield the zero Letter.
func (g *Grid) At(c Cell) Letter {
	if !g.InBounds(c) {
		return Letter{}
	}
	return g.letters[c.Row][c.Col]
}

// Placements returns the placed words in placement order.
func (g *Grid) Placements() []Placement {
	return g.placements
}

// Words returns the target words that made it onto the board.
func (g *Grid) Words() []string {
	words := make([]string, len(g.placements))
	for i, p := range g.placements {
		words[i] = p.Word
	}
	return words
}

// Word spells the letters along path.
func (g *Grid) Word(path []Cell) string {
	var b strings.Builder
	for _, c := range path {
		if g.InBounds(c) {
			b.WriteRune(g.letters[c.Row][c.Col].Char)
		}
	}
	return b.String()
}

// SetSelected marks exactly the cells of path as selected.
func (g *Grid) SetSelected(path []Cell) {
	g.ClearSelection()
	for _, c := range path {
		if g.InBounds(c) {
			g.letters[c.Row][c.Col].Selected = true
		}
	}
}

// ClearSelection unmarks every selected cell.
func (g *Grid) ClearSelection() {
	for r := range g.letters {
		for c := range g.letters[r] {
			g.letters[r][c].Selected = false
		}
	}
}

// Connect marks the cells of a found word.
func (g *Grid) Connect(path []Cell) {
	for _, c := range path {
		if g.InBounds(c) {
			g.letters[c.Row][c.Col].Connected = true
		}
	}
}

// Rows returns a copy of the board for presenters.
func (g *Grid) Rows() [][]Letter {
	out := make([][]Letter, g.size)
	for r := range g.letters {
		out[r] = append([]Letter(nil), g.letters[r]...)
	}
	return out
}
