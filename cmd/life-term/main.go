package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"life-ca/internal/app"
	"life-ca/internal/core"
	_ "life-ca/internal/sims/life"
	"life-ca/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file (the terminal is owned by the UI)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	app.SetLogger(logger)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	cols, rows := screen.Size()
	term.Configure(cfg, flag.CommandLine, cols, rows)
	if err := cfg.Validate(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	sim := factory(cfg.SimOptions())
	if cfg.Pattern != "" {
		if err := app.PlacePattern(sim, cfg.Pattern, core.Coord{Row: 1, Col: 1}); err != nil {
			screen.Fini()
			log.Fatal(err)
		}
	}
	session := app.NewSession(sim, cfg)
	ui := term.New(screen, session)

	logger.Info("starting", "sim", sim.Name(), "rows", sim.Size().H, "cols", sim.Size().W, "tick", cfg.Tick)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = ui.Run(ctx, time.Second/time.Duration(max(cfg.TPS, 1)))
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
