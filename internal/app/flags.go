package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"life-ca/internal/view"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Cell    int
	MinCell int
	MaxCell int

	Tick     time.Duration
	MaxFrame time.Duration
	Density  float64
	Drag     float64
	TPS      int
	Seed     int64

	Pattern string
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Width:    900,
		Height:   600,
		Cell:     10,
		MinCell:  2,
		MaxCell:  64,
		Tick:     200 * time.Millisecond,
		MaxFrame: 100 * time.Millisecond,
		Density:  0.25,
		Drag:     4,
		TPS:      60,
		Seed:     42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation variant to run (life, life-bounded)")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Cell, "cell", c.Cell, "initial cell size in pixels")
	fs.IntVar(&c.MinCell, "min-cell", c.MinCell, "smallest cell size reachable by zooming")
	fs.IntVar(&c.MaxCell, "max-cell", c.MaxCell, "largest cell size reachable by zooming")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulated time per generation")
	fs.DurationVar(&c.MaxFrame, "max-frame", c.MaxFrame, "cap on the frame time fed to the simulation clock")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of a live cell when randomizing")
	fs.Float64Var(&c.Drag, "drag", c.Drag, "pointer travel in pixels before a click becomes a pan")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext pattern file to place at start")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// Validate checks the preconditions the engine relies on.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.MinCell <= 0 || c.MinCell > c.MaxCell:
		return fmt.Errorf("cell clamp [%d, %d]: %w", c.MinCell, c.MaxCell, ErrInvalidConfig)
	case c.Cell <= 0:
		return fmt.Errorf("cell size %d: %w", c.Cell, ErrInvalidConfig)
	case c.Tick <= 0:
		return fmt.Errorf("tick %v: %w", c.Tick, ErrInvalidConfig)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density %v: %w", c.Density, ErrInvalidConfig)
	case c.Drag < 0:
		return fmt.Errorf("drag threshold %v: %w", c.Drag, ErrInvalidConfig)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d: %w", c.TPS, ErrInvalidConfig)
	}
	return nil
}

// SimOptions returns the key/value map handed to the variant factory. The
// region of interest is the window measured in initial cells.
func (c *Config) SimOptions() map[string]string {
	cell := max(c.Cell, 1)
	return map[string]string{
		"rows": strconv.Itoa(max(c.Height/cell, 1)),
		"cols": strconv.Itoa(max(c.Width/cell, 1)),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}

// ViewConfig returns the initial camera.
func (c *Config) ViewConfig() view.Config {
	return view.Config{CellSize: c.Cell, MinCell: c.MinCell, MaxCell: c.MaxCell}
}
