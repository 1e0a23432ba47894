package wordgrid

import "slices"

// Selection is the path a player drags across the grid.
type Selection struct {
	path []Cell
	held bool
}

// Begin starts a new path at c, discarding any previous one.
func (s *Selection) Begin(c Cell) {
	s.path = append(s.path[:0], c)
	s.held = true
}

// Extend moves the head of the path onto c. A neighbouring unselected cell
// is appended; a cell already in the path truncates back to it. Anything
// else is ignored. Reports whether the path changed.
func (s *Selection) Extend(c Cell) bool {
	if !s.held || len(s.path) == 0 {
		return false
	}
	if i := slices.Index(s.path, c); i >= 0 {
		if i == len(s.path)-1 {
			return false
		}
		s.path = s.path[:i+1]
		return true
	}
	if !s.path[len(s.path)-1].Adjacent(c) {
		return false
	}
	s.path = append(s.path, c)
	return true
}

// Release ends the drag. The path stays readable until Clear.
func (s *Selection) Release() {
	s.held = false
}

// Held reports whether a drag is in progress.
func (s *Selection) Held() bool {
	return s.held
}

// Clear drops the path.
func (s *Selection) Clear() {
	s.path = s.path[:0]
	s.held = false
}

// Len returns the number of cells in the path.
func (s *Selection) Len() int {
	return len(s.path)
}

// Path returns a copy of the selected cells in order.
func (s *Selection) Path() []Cell {
	return append([]Cell(nil), s.path...)
}

// ValidPath reports whether path is a legal selection: consecutive cells
// are neighbours and no cell repeats.
func ValidPath(path []Cell) bool {
	seen := make(map[Cell]bool, len(path))
	for i, c := range path {
		if seen[c] {
			return false
		}
		seen[c] = true
		if i > 0 && !path[i-1].Adjacent(c) {
			return false
		}
	}
	return true
}
