package core

// ByteGrid stores a dense window of byte-sized cell values in row-major order.
// Origin is the world coordinate of the first element.
type ByteGrid struct {
	W, H   int
	Origin Coord
	data   []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for local coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored for the world coordinate c, or 0 when c falls
// outside the window.
func (g *ByteGrid) At(c Coord) uint8 {
	x, y := c.Col-g.Origin.Col, c.Row-g.Origin.Row
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set stores v for the world coordinate c. Coordinates outside the window are ignored.
func (g *ByteGrid) Set(c Coord, v uint8) {
	x, y := c.Col-g.Origin.Col, c.Row-g.Origin.Row
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.data[g.Index(x, y)] = v
}

// Bounds returns the world rectangle covered by the grid.
func (g *ByteGrid) Bounds() Rect {
	return Rect{Min: g.Origin, Max: g.Origin.Add(g.H, g.W)}
}

// Resize reallocates the backing store when the dimensions change. The
// contents are undefined afterwards; callers are expected to Clear.
func (g *ByteGrid) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if g.W == w && g.H == h && len(g.data) == w*h {
		return
	}
	g.W, g.H = w, h
	if cap(g.data) >= w*h {
		g.data = g.data[:w*h]
		return
	}
	g.data = make([]uint8, w*h)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
