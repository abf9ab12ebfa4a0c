// Package view maps between logical grid cells and screen pixels under pan
// and zoom.
package view

import (
	"math"

	"life-ca/internal/core"
)

// Config holds the initial camera state and the zoom clamp. MinCell must not
// exceed MaxCell and both must be positive.
type Config struct {
	CellSize int
	MinCell  int
	MaxCell  int
	OriginX  float64
	OriginY  float64
}

// DefaultConfig returns 10px cells, zoomable between 2px and 64px.
func DefaultConfig() Config {
	return Config{CellSize: 10, MinCell: 2, MaxCell: 64}
}

// Viewport is the affine camera: cell (row, col) has its top-left corner at
// (originX + col*cellSize, originY + row*cellSize).
type Viewport struct {
	cellSize int
	minCell  int
	maxCell  int
	originX  float64
	originY  float64
	revision uint64
}

// New constructs a Viewport, clamping the initial cell size into range.
func New(cfg Config) *Viewport {
	v := &Viewport{
		minCell: cfg.MinCell,
		maxCell: cfg.MaxCell,
		originX: cfg.OriginX,
		originY: cfg.OriginY,
	}
	v.cellSize = min(max(cfg.CellSize, cfg.MinCell), cfg.MaxCell)
	return v
}

// CellSize returns the current edge length of a cell in pixels.
func (v *Viewport) CellSize() int { return v.cellSize }

// Limits returns the zoom clamp.
func (v *Viewport) Limits() (minCell, maxCell int) { return v.minCell, v.maxCell }

// Origin returns the screen position of cell (0,0)'s top-left corner.
func (v *Viewport) Origin() (x, y float64) { return v.originX, v.originY }

// Revision increments every time the cell size changes. Caches derived from
// the cell size compare revisions to detect invalidation.
func (v *Viewport) Revision() uint64 { return v.revision }

// WorldToScreen returns the top-left pixel of cell c.
func (v *Viewport) WorldToScreen(c core.Coord) (x, y float64) {
	cs := float64(v.cellSize)
	return v.originX + float64(c.Col)*cs, v.originY + float64(c.Row)*cs
}

// ScreenToWorld returns the cell under pixel (x, y). Division floors, so
// pixels left of or above the origin map to negative cells.
func (v *Viewport) ScreenToWorld(x, y float64) core.Coord {
	col, row := v.worldPoint(x, y)
	return core.Coord{Row: int(math.Floor(row)), Col: int(math.Floor(col))}
}

// worldPoint returns the fractional world position under pixel (x, y).
func (v *Viewport) worldPoint(x, y float64) (col, row float64) {
	cs := float64(v.cellSize)
	return (x - v.originX) / cs, (y - v.originY) / cs
}

// Pan shifts the origin by a pixel delta. The plane is unbounded so there is
// no clamp.
func (v *Viewport) Pan(dx, dy float64) {
	v.originX += dx
	v.originY += dy
}

// ZoomAt changes the cell size by one step in the sign of direction while
// keeping the world point under (x, y) fixed on screen. It reports false and
// leaves the state untouched when the step would leave the clamp range.
func (v *Viewport) ZoomAt(x, y float64, direction int) bool {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	default:
		return false
	}
	next := v.cellSize + direction
	if next < v.minCell || next > v.maxCell {
		return false
	}
	col, row := v.worldPoint(x, y)
	v.cellSize = next
	cs := float64(next)
	v.originX = x - col*cs
	v.originY = y - row*cs
	v.revision++
	return true
}

// VisibleRect returns the cells that intersect a w×h pixel screen.
func (v *Viewport) VisibleRect(w, h int) core.Rect {
	cs := float64(v.cellSize)
	return core.Rect{
		Min: core.Coord{
			Row: int(math.Floor(-v.originY / cs)),
			Col: int(math.Floor(-v.originX / cs)),
		},
		Max: core.Coord{
			Row: int(math.Ceil((float64(h) - v.originY) / cs)),
			Col: int(math.Ceil((float64(w) - v.originX) / cs)),
		},
	}
}
