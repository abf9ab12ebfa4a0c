package render

import (
	"iter"

	"life-ca/internal/core"
)

// Rasterize writes the live cells that fall inside window into dst as 0/1
// values. dst is resized and re-anchored to window first. Cost is linear in
// the number of live cells plus the window area.
func Rasterize(dst *core.ByteGrid, cells iter.Seq[core.Coord], window core.Rect) {
	dst.Resize(window.Cols(), window.Rows())
	dst.Origin = window.Min
	dst.Clear()
	for c := range cells {
		dst.Set(c, 1)
	}
}
