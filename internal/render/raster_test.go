package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"slices"
	"testing"

	"life-ca/internal/core"
	"life-ca/internal/sims/life"
	"life-ca/internal/view"
)

func TestRasterizeWindow(t *testing.T) {
	live := life.NewLiveSet(
		core.Coord{Row: -1, Col: -1},
		core.Coord{Row: 0, Col: 2},
		core.Coord{Row: 5, Col: 5}, // outside
	)
	window := core.Rect{Min: core.Coord{Row: -1, Col: -1}, Max: core.Coord{Row: 1, Col: 3}}
	g := core.NewByteGrid(1, 1)
	g.Cells()[0] = 7
	Rasterize(g, live.All(), window)

	if g.W != 4 || g.H != 2 {
		t.Fatalf("raster size %dx%d, expected 4x2", g.W, g.H)
	}
	want := []uint8{
		1, 0, 0, 0,
		0, 0, 0, 1,
	}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("raster=%v, expected %v", g.Cells(), want)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	want := []byte{255, 255, 255, 255, 1, 2, 3, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf=%v, expected %v", buf, want)
	}
	// A short buffer must not panic.
	fillBinaryRGBA(make([]byte, 3), []uint8{1}, color.White, color.Black)
}

func TestGridLinesTileCoversScreen(t *testing.T) {
	lines := GridLinesFor(10, 95, 40)
	if lines.W != 105 || lines.H != 50 {
		t.Fatalf("tile %dx%d, expected 105x50", lines.W, lines.H)
	}
	xs, ys := lines.Positions()
	if len(xs) != 11 || xs[10] != 100 || len(ys) != 6 {
		t.Fatalf("unexpected positions xs=%v ys=%v", xs, ys)
	}

	for _, origin := range []float64{0, 3, -3, 10, -27.5, 1234} {
		ox, oy := lines.Offset(origin, origin)
		if ox >= 0 || ox < -10 || oy >= 0 || oy < -10 {
			t.Fatalf("offset (%v,%v) for origin %v out of [-cell, 0)", ox, oy, origin)
		}
		// The first line lands on a cell edge.
		if r := floorMod(ox-origin, 10); r > 1e-9 && r < 10-1e-9 {
			t.Fatalf("line at %v is not aligned with origin %v", ox, origin)
		}
		if ox+float64(lines.W) < 95 {
			t.Fatalf("tile at %v does not reach the right edge", ox)
		}
	}
}

func TestGridLineCacheInvalidation(t *testing.T) {
	vp := view.New(view.DefaultConfig())
	var cache GridLineCache

	lines := GridLinesFor(vp.CellSize(), 900, 600)
	if !cache.Stale(lines, vp.Revision()) {
		t.Fatal("empty cache must be stale")
	}
	cache.Store(lines, vp.Revision())

	vp.Pan(37, -12)
	if cache.Stale(GridLinesFor(vp.CellSize(), 900, 600), vp.Revision()) {
		t.Fatal("panning must reuse the tile")
	}

	vp.ZoomAt(100, 100, 1)
	if !cache.Stale(GridLinesFor(vp.CellSize(), 900, 600), vp.Revision()) {
		t.Fatal("zooming must invalidate the tile")
	}
	cache.Store(GridLinesFor(vp.CellSize(), 900, 600), vp.Revision())

	if !cache.Stale(GridLinesFor(vp.CellSize(), 1024, 600), vp.Revision()) {
		t.Fatal("resizing the screen must invalidate the tile")
	}

	cache.Invalidate()
	if !cache.Stale(GridLinesFor(vp.CellSize(), 900, 600), vp.Revision()) {
		t.Fatal("explicit invalidation must be honoured")
	}
}

func TestExportPNG(t *testing.T) {
	vp := view.New(view.DefaultConfig())
	vp.Pan(20, 20)
	live := life.NewLiveSet(core.Coord{Row: 0, Col: 0}, core.Coord{Row: -1, Col: 3})

	opts := DefaultSnapshotOptions(64, 48)
	opts.GridLines = false
	var buf bytes.Buffer
	if err := ExportPNG(&buf, live.All(), vp, opts); err != nil {
		t.Fatalf("export: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	if !isBright(img.At(25, 25)) {
		t.Fatal("cell (0,0) should be drawn at (20..30, 20..30)")
	}
	if !isBright(img.At(55, 15)) {
		t.Fatal("cell (-1,3) should be drawn at (50..60, 10..20)")
	}
	if isBright(img.At(5, 40)) {
		t.Fatal("dead area should stay dark")
	}
}

func TestExportPNGRejectsEmptyCanvas(t *testing.T) {
	vp := view.New(view.DefaultConfig())
	var buf bytes.Buffer
	if err := ExportPNG(&buf, life.LiveSet{}.All(), vp, DefaultSnapshotOptions(0, 10)); err == nil {
		t.Fatal("expected an error for a zero-width snapshot")
	}
}

func isBright(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xc000 && g > 0xc000 && b > 0xc000
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExportPNGReportsWriteError(t *testing.T) {
	vp := view.New(view.DefaultConfig())
	live := life.NewLiveSet(core.Coord{Row: 1, Col: 1})
	err := ExportPNG(failingWriter{}, live.All(), vp, DefaultSnapshotOptions(40, 40))
	if err == nil {
		t.Fatal("expected the write error to surface")
	}
	// A second export after a failed one must still work.
	var buf bytes.Buffer
	if err := ExportPNG(&buf, live.All(), vp, DefaultSnapshotOptions(40, 40)); err != nil || buf.Len() == 0 {
		t.Fatalf("export after failure: err=%v len=%d", err, buf.Len())
	}
}
