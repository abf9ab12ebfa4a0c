package life

import (
	"iter"
	"maps"

	"life-ca/internal/core"
)

// LiveSet holds the coordinates of every live cell. A coordinate is present
// iff the cell is alive.
type LiveSet map[core.Coord]struct{}

// NewLiveSet returns a set containing the provided cells.
func NewLiveSet(cells ...core.Coord) LiveSet {
	s := make(LiveSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is alive.
func (s LiveSet) Contains(c core.Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of live cells.
func (s LiveSet) Len() int { return len(s) }

// All iterates the live coordinates in no particular order.
func (s LiveSet) All() iter.Seq[core.Coord] { return maps.Keys(s) }

// Clone returns an independent copy of s.
func (s LiveSet) Clone() LiveSet {
	if s == nil {
		return LiveSet{}
	}
	return maps.Clone(s)
}

// Equal reports whether both sets hold exactly the same coordinates.
func (s LiveSet) Equal(o LiveSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Within returns the subset of s that lies inside r.
func (s LiveSet) Within(r core.Rect) LiveSet {
	out := make(LiveSet, len(s))
	for c := range s {
		if r.Contains(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Bounds returns the smallest rectangle containing every live cell. The
// second result is false for an empty set.
func (s LiveSet) Bounds() (core.Rect, bool) {
	var r core.Rect
	first := true
	for c := range s {
		if first {
			r = core.Rect{Min: c, Max: c.Add(1, 1)}
			first = false
			continue
		}
		r.Min.Row = min(r.Min.Row, c.Row)
		r.Min.Col = min(r.Min.Col, c.Col)
		r.Max.Row = max(r.Max.Row, c.Row+1)
		r.Max.Col = max(r.Max.Col, c.Col+1)
	}
	return r, !first
}
