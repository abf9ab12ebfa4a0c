//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"life-ca/internal/app"
	"life-ca/internal/core"
	_ "life-ca/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	app.SetLogger(logger)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	if cfg.Pattern != "" {
		if err := app.PlacePattern(sim, cfg.Pattern, core.Coord{Row: 1, Col: 1}); err != nil {
			log.Fatal(err)
		}
	}

	session := app.NewSession(sim, cfg)
	game := app.New(session, cfg)

	logger.Info("starting", "sim", sim.Name(), "rows", sim.Size().H, "cols", sim.Size().W, "tick", cfg.Tick)

	ebiten.SetWindowTitle("life-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+app.HUDWidth, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
