package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"life-ca/internal/render"
	"life-ca/internal/report"
	"life-ca/internal/view"
)

func main() {
	opts := report.DefaultOptions()
	seeds := flag.Int("seeds", 16, "number of soups to run")
	base := flag.Int64("seed", 42, "first seed")
	flag.IntVar(&opts.Rows, "rows", opts.Rows, "soup height in cells")
	flag.IntVar(&opts.Cols, "cols", opts.Cols, "soup width in cells")
	flag.Float64Var(&opts.Density, "density", opts.Density, "probability of a live cell in the soup")
	flag.IntVar(&opts.Generations, "generations", opts.Generations, "generations to simulate per soup")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "number of worker goroutines")
	flag.BoolVar(&opts.Bounded, "bounded", opts.Bounded, "drop cells that leave the soup region")
	pngPath := flag.String("png", "", "write the final state of the first soup to this PNG file")
	cell := flag.Int("cell", 8, "cell size in pixels for -png")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := opts.Validate(); err != nil {
		log.Fatal(err)
	}
	if *seeds <= 0 {
		log.Fatalf("seeds %d must be positive", *seeds)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("surveying", "seeds", *seeds, "rows", opts.Rows, "cols", opts.Cols, "generations", opts.Generations, "workers", opts.Workers)
	start := time.Now()
	results, err := report.Survey(ctx, opts, report.Seeds(*base, *seeds))
	if err != nil {
		log.Fatal(err)
	}
	logger.Debug("survey done", "elapsed", time.Since(start).Round(time.Millisecond))

	if err := report.Write(os.Stdout, opts, results); err != nil {
		log.Fatal(err)
	}

	if *pngPath != "" {
		if err := writePNG(*pngPath, results[0], opts, *cell); err != nil {
			log.Fatal(err)
		}
		logger.Info("wrote snapshot", "path", *pngPath, "seed", results[0].Seed)
	}
}

// writePNG frames the soup region, or the live cells when they have wandered
// outside it.
func writePNG(path string, res report.Result, opts report.Options, cell int) error {
	cell = max(cell, 1)
	rows, cols := opts.Rows, opts.Cols
	vcfg := view.Config{CellSize: cell, MinCell: cell, MaxCell: cell}
	if b, ok := res.Cells.Bounds(); ok {
		minRow, minCol := min(b.Min.Row, 0), min(b.Min.Col, 0)
		rows = max(b.Max.Row, rows) - minRow
		cols = max(b.Max.Col, cols) - minCol
		vcfg.OriginX = -float64(minCol * cell)
		vcfg.OriginY = -float64(minRow * cell)
	}
	vp := view.New(vcfg)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	if err := render.ExportPNG(f, res.Cells.All(), vp, render.DefaultSnapshotOptions(cols*cell, rows*cell)); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}
