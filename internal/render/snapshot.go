package render

import (
	"fmt"
	"image/color"
	"io"
	"iter"

	"life-ca/internal/core"
	"life-ca/internal/view"

	"github.com/gogpu/gg"
)

// SnapshotOptions controls ExportPNG.
type SnapshotOptions struct {
	Width, Height int
	Alive         color.Color
	Dead          color.Color
	Lines         color.Color
	GridLines     bool
}

// DefaultSnapshotOptions matches the on-screen palette.
func DefaultSnapshotOptions(w, h int) SnapshotOptions {
	return SnapshotOptions{
		Width:     w,
		Height:    h,
		Alive:     color.White,
		Dead:      color.Black,
		Lines:     color.RGBA{R: 30, G: 30, B: 30, A: 255},
		GridLines: true,
	}
}

// ExportPNG renders the cells visible through vp into a PNG written to w.
func ExportPNG(w io.Writer, cells iter.Seq[core.Coord], vp *view.Viewport, opts SnapshotOptions) (err error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("snapshot size %dx%d", opts.Width, opts.Height)
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	defer func() {
		if cerr := dc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close context: %w", cerr)
		}
	}()

	dc.ClearWithColor(gg.FromColor(opts.Dead))

	window := vp.VisibleRect(opts.Width, opts.Height)
	cs := float64(vp.CellSize())
	drawn := 0
	for c := range cells {
		if !window.Contains(c) {
			continue
		}
		x, y := vp.WorldToScreen(c)
		dc.DrawRectangle(x, y, cs, cs)
		drawn++
	}
	if drawn > 0 {
		dc.SetColor(opts.Alive)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill cells: %w", err)
		}
	}

	if opts.GridLines {
		lines := GridLinesFor(vp.CellSize(), opts.Width, opts.Height)
		ox, oy := lines.Offset(vp.Origin())
		xs, ys := lines.Positions()
		for _, x := range xs {
			dc.DrawLine(ox+x+0.5, 0, ox+x+0.5, float64(opts.Height))
		}
		for _, y := range ys {
			dc.DrawLine(0, oy+y+0.5, float64(opts.Width), oy+y+0.5)
		}
		dc.SetColor(opts.Lines)
		dc.SetLineWidth(1)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke grid lines: %w", err)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
