package life

import (
	"iter"
	"strconv"

	"life-ca/internal/core"
)

// Config holds parameters for a Life grid.
type Config struct {
	Rows    int
	Cols    int
	Seed    int64
	Bounded bool
}

// DefaultConfig returns the default configuration: a 900x600 window of 10px cells.
func DefaultConfig() Config {
	return Config{Rows: 60, Cols: 90, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["bounded"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Bounded = parsed
		}
	}
	return c
}

// Grid is the live-cell state of Conway's Game of Life on the integer plane.
//
// Rows×Cols is only a region of interest: Randomize fills it and, for the
// bounded variant, Step and Toggle drop cells outside it. The step rule itself
// never consults it.
type Grid struct {
	cfg        Config
	live       LiveSet
	saved      LiveSet
	savedGen   int
	generation int
	rng        *core.RNG
}

// New returns an empty grid seeded from cfg.
func New(cfg Config) *Grid {
	g := &Grid{cfg: cfg}
	g.Reset(cfg.Seed)
	return g
}

// Name returns the simulation identifier.
func (g *Grid) Name() string {
	if g.cfg.Bounded {
		return "life-bounded"
	}
	return "life"
}

// Size returns the region of interest.
func (g *Grid) Size() core.Size { return core.Size{W: g.cfg.Cols, H: g.cfg.Rows} }

// Region returns the region of interest as a rectangle anchored at (0,0).
func (g *Grid) Region() core.Rect { return core.RectFromSize(g.Size()) }

// Reset reseeds the random source and empties both the grid and the snapshot.
func (g *Grid) Reset(seed int64) {
	g.rng = core.NewRNG(seed)
	g.live = LiveSet{}
	g.saved = LiveSet{}
	g.savedGen = 0
	g.generation = 0
}

// Step advances the grid by one generation and swaps the result in.
func (g *Grid) Step() {
	next := Advance(g.live)
	if g.cfg.Bounded {
		next = next.Within(g.Region())
	}
	g.live = next
	g.generation++
}

// Toggle flips the state of a single cell.
func (g *Grid) Toggle(c core.Coord) {
	if g.live.Contains(c) {
		delete(g.live, c)
		return
	}
	if g.cfg.Bounded && !g.Region().Contains(c) {
		return
	}
	g.live[c] = struct{}{}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	g.live = LiveSet{}
	g.generation = 0
}

// Randomize replaces the grid with a random soup over the region of interest,
// each cell alive independently with probability density.
func (g *Grid) Randomize(density float64) {
	region := g.Region()
	next := LiveSet{}
	for r := region.Min.Row; r < region.Max.Row; r++ {
		for c := region.Min.Col; c < region.Max.Col; c++ {
			if g.rng.Chance(density) {
				next[core.Coord{Row: r, Col: c}] = struct{}{}
			}
		}
	}
	g.live = next
	g.generation = 0
}

// Stamp brings every cell in cells to life. Live cells stay alive.
func (g *Grid) Stamp(cells iter.Seq[core.Coord]) {
	for c := range cells {
		if g.cfg.Bounded && !g.Region().Contains(c) {
			continue
		}
		g.live[c] = struct{}{}
	}
}

// Save copies the current cells into the snapshot slot, replacing any
// previous snapshot.
func (g *Grid) Save() {
	g.saved = g.live.Clone()
	g.savedGen = g.generation
}

// Load replaces the grid with a copy of the snapshot. Without a prior Save
// the snapshot is empty.
func (g *Grid) Load() {
	g.live = g.saved.Clone()
	g.generation = g.savedGen
}

// Alive reports whether c is alive.
func (g *Grid) Alive(c core.Coord) bool { return g.live.Contains(c) }

// LiveCells iterates the cells alive at the time of the call. The sequence can
// be ranged over repeatedly; a later Step does not affect it.
func (g *Grid) LiveCells() iter.Seq[core.Coord] { return g.live.All() }

// Cells returns the current live set. Callers must treat it as read-only.
func (g *Grid) Cells() LiveSet { return g.live }

// Population returns the number of live cells.
func (g *Grid) Population() int { return len(g.live) }

// Generation returns the number of steps since the grid was last cleared,
// randomized or reset.
func (g *Grid) Generation() int { return g.generation }

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c)
	})
	core.Register("life-bounded", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Bounded = true
		return New(c)
	})
}
