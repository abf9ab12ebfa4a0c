package core

import "iter"

// Coord addresses a single cell on the unbounded integer plane.
type Coord struct {
	Row int
	Col int
}

// Add returns the coordinate offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord { return Coord{Row: c.Row + dr, Col: c.Col + dc} }

// Size describes the dimensions of the logical region of interest in cells.
type Size struct {
	W int
	H int
}

// Rect is a half-open cell range [Min, Max).
type Rect struct {
	Min Coord
	Max Coord
}

// RectFromSize returns the rectangle anchored at (0,0) covering s.
func RectFromSize(s Size) Rect {
	return Rect{Max: Coord{Row: s.H, Col: s.W}}
}

// Rows returns the number of rows covered by r.
func (r Rect) Rows() int {
	if r.Max.Row <= r.Min.Row {
		return 0
	}
	return r.Max.Row - r.Min.Row
}

// Cols returns the number of columns covered by r.
func (r Rect) Cols() int {
	if r.Max.Col <= r.Min.Col {
		return 0
	}
	return r.Max.Col - r.Min.Col
}

// Empty reports whether r contains no cells.
func (r Rect) Empty() bool { return r.Rows() == 0 || r.Cols() == 0 }

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.Row >= r.Min.Row && c.Row < r.Max.Row && c.Col >= r.Min.Col && c.Col < r.Max.Col
}

// Sim defines the contract the frame loop drives: a live-cell state with the
// editing commands exposed to the input layer.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()

	Toggle(c Coord)
	Stamp(cells iter.Seq[Coord])
	Clear()
	Randomize(density float64)
	Save()
	Load()

	Alive(c Coord) bool
	LiveCells() iter.Seq[Coord]
	Population() int
	Generation() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
