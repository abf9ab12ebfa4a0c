//go:build ebiten

package render

import (
	"image/color"

	"life-ca/internal/core"
	"life-ca/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads the visible window of live cells into a one-pixel-per-cell
// image and draws it scaled by the camera.
type GridPainter struct {
	raster *core.ByteGrid
	img    *ebiten.Image
	buf    []byte

	on  color.Color
	off color.Color
}

// NewGridPainter allocates a painter drawing live cells in on over off.
func NewGridPainter(on, off color.Color) *GridPainter {
	return &GridPainter{raster: core.NewByteGrid(1, 1), on: on, off: off}
}

// Draw paints every live cell visible through vp onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, sim core.Sim, vp *view.Viewport) {
	b := dst.Bounds()
	window := vp.VisibleRect(b.Dx(), b.Dy())
	if window.Empty() {
		return
	}
	Rasterize(gp.raster, sim.LiveCells(), window)

	w, h := gp.raster.W, gp.raster.H
	if gp.img == nil || gp.img.Bounds().Dx() != w || gp.img.Bounds().Dy() != h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
	}
	fillBinaryRGBA(gp.buf, gp.raster.Cells(), gp.on, gp.off)
	gp.img.WritePixels(gp.buf)

	x, y := vp.WorldToScreen(window.Min)
	cs := float64(vp.CellSize())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cs, cs)
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}
