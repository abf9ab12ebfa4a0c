package render

import "math"

// GridLines describes the pre-rendered grid-line tile for one cell size. The
// tile covers the screen plus one cell of margin so it can be shifted by up to
// a cell in either axis while panning.
type GridLines struct {
	Cell int
	W, H int
}

// GridLinesFor returns the tile needed for a screenW×screenH screen.
func GridLinesFor(cell, screenW, screenH int) GridLines {
	cell = max(cell, 1)
	return GridLines{Cell: cell, W: screenW + cell, H: screenH + cell}
}

// Positions returns the tile-local x and y coordinates of every line.
func (g GridLines) Positions() (xs, ys []float64) {
	for x := 0; x <= g.W; x += g.Cell {
		xs = append(xs, float64(x))
	}
	for y := 0; y <= g.H; y += g.Cell {
		ys = append(ys, float64(y))
	}
	return xs, ys
}

// Offset returns where to draw the tile so its lines coincide with cell edges
// for the given origin. Both results are in [-cell, 0).
func (g GridLines) Offset(originX, originY float64) (x, y float64) {
	cs := float64(g.Cell)
	return floorMod(originX, cs) - cs, floorMod(originY, cs) - cs
}

func floorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	return r
}

// GridLineCache tracks whether a rendered tile still matches the camera. The
// tile depends on the cell size and the screen size only; panning never
// invalidates it.
type GridLineCache struct {
	lines    GridLines
	revision uint64
	valid    bool
}

// Stale reports whether the cached tile must be rebuilt for lines at the given
// viewport revision.
func (c *GridLineCache) Stale(lines GridLines, revision uint64) bool {
	return !c.valid || c.revision != revision || c.lines != lines
}

// Store records that the tile for lines at revision has been rendered.
func (c *GridLineCache) Store(lines GridLines, revision uint64) {
	c.lines = lines
	c.revision = revision
	c.valid = true
}

// Invalidate forces the next Stale check to report true.
func (c *GridLineCache) Invalidate() { c.valid = false }
