package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"life-ca/internal/core"
	"life-ca/internal/sims/life"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := NewConfig()
	sim := life.New(life.FromMap(cfg.SimOptions()))
	return NewSession(sim, cfg)
}

func stampBlinker(s *Session) {
	s.Sim().Toggle(core.Coord{Row: 1, Col: 2})
	s.Sim().Toggle(core.Coord{Row: 2, Col: 2})
	s.Sim().Toggle(core.Coord{Row: 3, Col: 2})
}

func TestSessionStartsPaused(t *testing.T) {
	s := newTestSession(t)
	if !s.Paused() {
		t.Fatal("session must start paused")
	}
	if !s.ShowGrid() {
		t.Fatal("grid lines should start visible")
	}
	stampBlinker(s)
	if n := s.Update(time.Second); n != 0 {
		t.Fatalf("paused session stepped %d times", n)
	}
	if s.Sim().Generation() != 0 {
		t.Fatal("paused session must not advance")
	}
}

func TestSessionRunsAtFixedTick(t *testing.T) {
	s := newTestSession(t)
	stampBlinker(s)
	s.TogglePause()

	steps := 0
	for i := 0; i < 20; i++ {
		steps += s.Update(20 * time.Millisecond)
	}
	if steps != 2 || s.Sim().Generation() != 2 {
		t.Fatalf("400ms at a 200ms tick gave %d steps (generation %d)", steps, s.Sim().Generation())
	}
}

func TestSessionCapsFrameDelta(t *testing.T) {
	s := newTestSession(t)
	s.SetIntParameter(ParamTickMillis, 10)
	s.TogglePause()
	if n := s.Update(10 * time.Second); n != 10 {
		t.Fatalf("stalled frame should be capped to 100ms worth of steps, got %d", n)
	}
}

func TestResumeDoesNotCatchUp(t *testing.T) {
	s := newTestSession(t)
	s.TogglePause()
	s.Update(150 * time.Millisecond)
	s.TogglePause()
	s.TogglePause()
	if n := s.Update(100 * time.Millisecond); n != 0 {
		t.Fatalf("resuming replayed stale time: %d steps", n)
	}
}

func TestStepOnceOnlyWhilePaused(t *testing.T) {
	s := newTestSession(t)
	stampBlinker(s)
	if !s.StepOnce() || s.Sim().Generation() != 1 {
		t.Fatal("manual step should run while paused")
	}
	s.TogglePause()
	if s.StepOnce() || s.Sim().Generation() != 1 {
		t.Fatal("manual step must be ignored while running")
	}
}

func TestClickTogglesOnce(t *testing.T) {
	s := newTestSession(t)
	s.PointerDown(25, 35)
	s.PointerMove(26, 36)
	s.PointerMove(27, 34)
	if !s.PointerUp() {
		t.Fatal("click should toggle a cell")
	}
	if s.Sim().Population() != 1 || !s.Sim().Alive(core.Coord{Row: 3, Col: 2}) {
		t.Fatalf("expected exactly cell (3,2) alive, population %d", s.Sim().Population())
	}
	ox, oy := s.View().Origin()
	if ox != 0 || oy != 0 {
		t.Fatal("a click must not pan")
	}
}

func TestDragPansWithoutToggle(t *testing.T) {
	s := newTestSession(t)
	s.PointerDown(100, 100)
	s.PointerMove(110, 100)
	if !s.Dragging() {
		t.Fatal("motion past the threshold should start a drag")
	}
	s.PointerMove(100, 100)
	if s.PointerUp() {
		t.Fatal("a drag must not toggle")
	}
	if s.Sim().Population() != 0 {
		t.Fatal("a drag must not toggle")
	}

	s.PointerDown(0, 0)
	s.PointerMove(-30, 12)
	s.PointerUp()
	ox, oy := s.View().Origin()
	if ox != -30 || oy != 12 {
		t.Fatalf("origin=(%v,%v), expected (-30,12)", ox, oy)
	}
}

func TestClickIgnoredWhileRunning(t *testing.T) {
	s := newTestSession(t)
	s.TogglePause()
	s.PointerDown(5, 5)
	if s.PointerUp() || s.Sim().Population() != 0 {
		t.Fatal("clicks must be ignored while running")
	}
	// Panning still works.
	s.PointerDown(5, 5)
	s.PointerMove(50, 5)
	s.PointerUp()
	if ox, _ := s.View().Origin(); ox != 45 {
		t.Fatalf("pan while running failed, origin x=%v", ox)
	}
}

func TestClickAfterPanUsesFlooredCell(t *testing.T) {
	s := newTestSession(t)
	s.Pan(100, 100)
	s.PointerDown(95, 81)
	s.PointerUp()
	if !s.Sim().Alive(core.Coord{Row: -2, Col: -1}) {
		t.Fatal("pixel left/above the origin must map to negative cells")
	}
}

func TestSaveLoadThroughSession(t *testing.T) {
	s := newTestSession(t)
	stampBlinker(s)
	s.Save()
	s.Randomize()
	s.Clear()
	s.Load()
	if s.Sim().Population() != 3 {
		t.Fatalf("load restored %d cells, expected 3", s.Sim().Population())
	}
}

func TestZoomAndGridToggle(t *testing.T) {
	s := newTestSession(t)
	if !s.ZoomAt(450, 300, 1) || s.View().CellSize() != 11 {
		t.Fatalf("zoom in failed, cell=%d", s.View().CellSize())
	}
	s.ToggleGridLines()
	if s.ShowGrid() {
		t.Fatal("grid lines should be hidden")
	}
}

func TestParameters(t *testing.T) {
	s := newTestSession(t)
	if !s.SetIntParameter(ParamTickMillis, 5) || s.Tick() != 10*time.Millisecond {
		t.Fatalf("tick should clamp to 10ms, got %v", s.Tick())
	}
	if !s.SetFloatParameter(ParamDensity, 1.7) || s.Density() != 1 {
		t.Fatalf("density should clamp to 1, got %v", s.Density())
	}
	if s.SetIntParameter("unknown", 1) || s.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	p, ok := s.Parameters().Lookup(ParamTickMillis)
	if !ok || p.Value != "10" {
		t.Fatalf("snapshot tick=%q ok=%v", p.Value, ok)
	}
	if len(s.ParameterControls()) != 2 {
		t.Fatal("expected two HUD controls")
	}
	if z, ok := s.Parameters().Lookup("zoom"); !ok || z.Value != "2-64px" {
		t.Fatalf("zoom range=%q ok=%v", z.Value, ok)
	}
}

func TestSessionDrivenThroughControlInterfaces(t *testing.T) {
	var src interface {
		core.ParameterControlsProvider
		core.IntParameterSetter
		core.FloatParameterSetter
	} = newTestSession(t)

	for _, ctrl := range src.ParameterControls() {
		switch ctrl.Type {
		case core.ParamTypeInt:
			if !src.SetIntParameter(ctrl.Key, int(ctrl.Max)+100) {
				t.Fatalf("%s rejected", ctrl.Key)
			}
		case core.ParamTypeFloat:
			if !src.SetFloatParameter(ctrl.Key, ctrl.Min-1) {
				t.Fatalf("%s rejected", ctrl.Key)
			}
		}
	}
	s := src.(*Session)
	if s.Tick() != 2000*time.Millisecond || s.Density() != 0 {
		t.Fatalf("controls did not clamp: tick=%v density=%v", s.Tick(), s.Density())
	}
}

func TestStatus(t *testing.T) {
	s := newTestSession(t)
	stampBlinker(s)
	if got, want := s.Status(), "paused  gen 0  pop 3  cell 10px"; got != want {
		t.Fatalf("status=%q, expected %q", got, want)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-min-cell", "80", "-tick", "50ms"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Tick != 50*time.Millisecond {
		t.Fatalf("tick=%v", cfg.Tick)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSimOptions(t *testing.T) {
	opts := NewConfig().SimOptions()
	if opts["rows"] != "60" || opts["cols"] != "90" || opts["seed"] != "42" {
		t.Fatalf("unexpected options %v", opts)
	}
}

func TestPlacePattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.cells")
	if err := os.WriteFile(path, []byte("!Name: Glider\n.O.\n..O\nOOO\n"), 0o644); err != nil {
		t.Fatalf("write pattern: %v", err)
	}
	s := newTestSession(t)
	if err := PlacePattern(s.Sim(), path, core.Coord{Row: 10, Col: 10}); err != nil {
		t.Fatalf("place: %v", err)
	}
	if s.Sim().Population() != 5 || !s.Sim().Alive(core.Coord{Row: 10, Col: 11}) {
		t.Fatalf("unexpected grid after placing glider, population %d", s.Sim().Population())
	}
	// Placing again over live cells keeps them alive.
	if err := PlacePattern(s.Sim(), path, core.Coord{Row: 10, Col: 10}); err != nil {
		t.Fatalf("place again: %v", err)
	}
	if s.Sim().Population() != 5 {
		t.Fatalf("overlapping placement changed population to %d", s.Sim().Population())
	}
	if err := PlacePattern(s.Sim(), filepath.Join(t.TempDir(), "missing"), core.Coord{}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
