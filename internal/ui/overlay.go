//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/render"
	"life-ca/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	helpText   = "Space - pause/play  C - clear  R - randomize  F - step forward  S - save grid  L - load grid  G - grid lines"
	pausedText = "Paused - click to edit cell"
)

var (
	gridLineColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	textColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	statusColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// Overlay draws grid lines and the status/help text on top of the cells.
type Overlay struct {
	tile  *ebiten.Image
	cache render.GridLineCache
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// DrawGrid draws the grid-line tile aligned with vp's cell edges. The tile is
// rebuilt only when the cell size or the screen size changes.
func (o *Overlay) DrawGrid(screen *ebiten.Image, vp *view.Viewport) {
	b := screen.Bounds()
	lines := render.GridLinesFor(vp.CellSize(), b.Dx(), b.Dy())
	if o.cache.Stale(lines, vp.Revision()) {
		o.rebuild(lines)
		o.cache.Store(lines, vp.Revision())
	}
	x, y := lines.Offset(vp.Origin())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x+float64(b.Min.X), y+float64(b.Min.Y))
	screen.DrawImage(o.tile, op)
}

func (o *Overlay) rebuild(lines render.GridLines) {
	if o.tile != nil {
		o.tile.Dispose()
	}
	o.tile = ebiten.NewImage(lines.W+1, lines.H+1)
	xs, ys := lines.Positions()
	for _, x := range xs {
		fx := float32(x) + 0.5
		vector.StrokeLine(o.tile, fx, 0, fx, float32(lines.H), 1, gridLineColor, false)
	}
	for _, y := range ys {
		fy := float32(y) + 0.5
		vector.StrokeLine(o.tile, 0, fy, float32(lines.W), fy, 1, gridLineColor, false)
	}
}

// DrawText renders the status line, the key help and, while paused, the
// editing banner.
func (o *Overlay) DrawText(screen *ebiten.Image, status string, paused bool) {
	b := screen.Bounds()
	face := basicfont.Face7x13
	text.Draw(screen, status, face, b.Min.X+8, b.Min.Y+18, statusColor)
	drawCentered(screen, helpText, b.Min.X+b.Dx()/2, b.Max.Y-30, textColor)
	if paused {
		drawCentered(screen, pausedText, b.Min.X+b.Dx()/2, b.Max.Y-60, textColor)
	}
}

func drawCentered(screen *ebiten.Image, s string, cx, baseline int, col color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, baseline, col)
}
