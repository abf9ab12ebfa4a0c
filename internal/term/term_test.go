package term

import (
	"flag"
	"testing"

	"life-ca/internal/app"
	"life-ca/internal/core"
	"life-ca/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newTestUI(t *testing.T, cols, rows int) (*UI, *app.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	cfg := app.NewConfig()
	Configure(cfg, nil, cols, rows)
	sim := life.New(life.FromMap(cfg.SimOptions()))
	session := app.NewSession(sim, cfg)
	return New(screen, session), session
}

func isAlive(t *testing.T, u *UI, col, row int) bool {
	t.Helper()
	_, _, style, _ := u.screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg == tcell.ColorWhite
}

func TestDrawLiveCells(t *testing.T) {
	u, s := newTestUI(t, 20, 8)
	s.Sim().Toggle(core.Coord{Row: 1, Col: 3})
	u.Draw()

	if !isAlive(t, u, 6, 1) || !isAlive(t, u, 7, 1) {
		t.Fatal("cell (1,3) should cover columns 6-7 of row 1")
	}
	if isAlive(t, u, 5, 1) || isAlive(t, u, 8, 1) || isAlive(t, u, 6, 0) {
		t.Fatal("neighbouring characters must stay dead")
	}

	mainc, _, _, _ := u.screen.GetContent(0, 6)
	if mainc != 'p' {
		t.Fatalf("status line should start with the pause state, got %q", mainc)
	}
}

func TestKeysDriveSession(t *testing.T) {
	u, s := newTestUI(t, 20, 8)
	if !u.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space must not quit")
	}
	if s.Paused() {
		t.Fatal("space should resume the simulation")
	}
	u.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone))
	if s.ShowGrid() {
		t.Fatal("g should hide grid lines")
	}
	u.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if s.View().CellSize() != 2 {
		t.Fatalf("+ should zoom in, cell=%d", s.View().CellSize())
	}
	u.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if x, _ := s.View().Origin(); x >= 0 {
		t.Fatalf("right arrow should move the camera right, origin x=%v", x)
	}
	if u.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if u.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestMouseClickToggles(t *testing.T) {
	u, s := newTestUI(t, 20, 8)
	u.HandleEvent(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone))
	u.HandleEvent(tcell.NewEventMouse(5, 2, tcell.ButtonNone, tcell.ModNone))
	if !s.Sim().Alive(core.Coord{Row: 2, Col: 2}) || s.Sim().Population() != 1 {
		t.Fatalf("click at column 5 row 2 should toggle (2,2), population %d", s.Sim().Population())
	}
}

func TestMouseDragPans(t *testing.T) {
	u, s := newTestUI(t, 20, 8)
	u.HandleEvent(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone))
	u.HandleEvent(tcell.NewEventMouse(12, 4, tcell.Button1, tcell.ModNone))
	u.HandleEvent(tcell.NewEventMouse(12, 4, tcell.ButtonNone, tcell.ModNone))
	if s.Sim().Population() != 0 {
		t.Fatal("a drag must not toggle")
	}
	if x, y := s.View().Origin(); x != 5 || y != 2 {
		t.Fatalf("origin=(%v,%v), expected (5,2)", x, y)
	}
}

func TestClickInFooterIgnored(t *testing.T) {
	u, s := newTestUI(t, 20, 8)
	u.HandleEvent(tcell.NewEventMouse(4, 7, tcell.Button1, tcell.ModNone))
	u.HandleEvent(tcell.NewEventMouse(4, 7, tcell.ButtonNone, tcell.ModNone))
	if s.Sim().Population() != 0 {
		t.Fatal("clicks on the footer must not toggle cells")
	}
}

func TestConfigureKeepsExplicitFlags(t *testing.T) {
	cfg := app.NewConfig()
	fs := flag.NewFlagSet("life-term", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cell=3", "-drag=2", "-height=10"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	Configure(cfg, fs, 80, 24)

	if cfg.Cell != 3 || cfg.Drag != 2 || cfg.Height != 10 {
		t.Fatalf("explicit flags overwritten: cell=%d drag=%v height=%d", cfg.Cell, cfg.Drag, cfg.Height)
	}
	if cfg.MinCell != 1 || cfg.MaxCell != 4 || cfg.Width != 40 {
		t.Fatalf("terminal defaults not applied: min=%d max=%d width=%d", cfg.MinCell, cfg.MaxCell, cfg.Width)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
