package app

import (
	"fmt"
	"os"

	"life-ca/internal/core"
	"life-ca/internal/sims/life"
)

// PlacePattern reads a plaintext pattern file and brings its cells to life
// with the top-left corner at at.
func PlacePattern(sim core.Sim, path string, at core.Coord) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()

	cells, err := life.Parse(f, at)
	if err != nil {
		return fmt.Errorf("pattern %s: %w", path, err)
	}
	sim.Stamp(cells.All())
	Logger().Debug("pattern placed", "path", path, "cells", cells.Len())
	return nil
}
