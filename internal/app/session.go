package app

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"life-ca/internal/core"
	"life-ca/internal/input"
	"life-ca/internal/view"
)

// HUD parameter keys.
const (
	ParamTickMillis = "tick_ms"
	ParamDensity    = "density"
)

var (
	_ core.ParameterControlsProvider = (*Session)(nil)
	_ core.IntParameterSetter        = (*Session)(nil)
	_ core.FloatParameterSetter      = (*Session)(nil)
)

// Session is the simulation context owned by the frame loop: the grid, the
// camera, the pointer gesture, the simulation clock and the pause state.
// Every method must be called from the frame loop's goroutine.
type Session struct {
	sim     core.Sim
	view    *view.Viewport
	gesture *input.Gesture
	clock   *core.FixedStep

	paused   bool
	showGrid bool
	density  float64
}

// NewSession wires a simulation to a fresh camera and clock. The session
// starts paused with grid lines shown.
func NewSession(sim core.Sim, cfg *Config) *Session {
	return &Session{
		sim:      sim,
		view:     view.New(cfg.ViewConfig()),
		gesture:  input.NewGesture(cfg.Drag),
		clock:    core.NewFixedStep(cfg.Tick, cfg.MaxFrame),
		paused:   true,
		showGrid: true,
		density:  cfg.Density,
	}
}

// Sim returns the driven simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// View returns the camera.
func (s *Session) View() *view.Viewport { return s.view }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// ShowGrid reports whether grid lines should be drawn.
func (s *Session) ShowGrid() bool { return s.showGrid }

// Density returns the probability used by Randomize.
func (s *Session) Density() float64 { return s.density }

// Tick returns the simulated time per generation.
func (s *Session) Tick() time.Duration { return s.clock.Step() }

// Dragging reports whether the pointer is currently panning the view.
func (s *Session) Dragging() bool { return s.gesture.Phase() == input.Dragging }

// TogglePause switches between paused and running. The clock restarts from
// zero so resuming never replays time that elapsed while paused.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	s.clock.Reset()
	Logger().Debug("pause toggled", "paused", s.paused, "generation", s.sim.Generation())
}

// Update feeds one frame's elapsed time to the clock and runs every step that
// became due. It returns the number of steps taken.
func (s *Session) Update(dt time.Duration) int {
	if s.paused {
		return 0
	}
	n := s.clock.Advance(dt)
	for i := 0; i < n; i++ {
		s.sim.Step()
	}
	if n > 1 {
		Logger().Debug("frame caught up", "steps", n, "dt", dt)
	}
	return n
}

// StepOnce advances a single generation. It is ignored while running.
func (s *Session) StepOnce() bool {
	if !s.paused {
		return false
	}
	s.sim.Step()
	Logger().Debug("step", "generation", s.sim.Generation(), "population", s.sim.Population())
	return true
}

// Clear kills every cell.
func (s *Session) Clear() {
	s.sim.Clear()
	Logger().Debug("clear")
}

// Randomize fills the region of interest with a random soup.
func (s *Session) Randomize() {
	s.sim.Randomize(s.density)
	Logger().Debug("randomize", "density", s.density, "population", s.sim.Population())
}

// Save stores the current cells in the snapshot slot.
func (s *Session) Save() {
	s.sim.Save()
	Logger().Debug("save", "population", s.sim.Population())
}

// Load restores the snapshot slot.
func (s *Session) Load() {
	s.sim.Load()
	Logger().Debug("load", "population", s.sim.Population())
}

// ToggleGridLines flips grid-line visibility. It only affects rendering.
func (s *Session) ToggleGridLines() { s.showGrid = !s.showGrid }

// ToggleAt flips the cell under pixel (x, y) when paused.
func (s *Session) ToggleAt(x, y float64) bool {
	if !s.paused {
		return false
	}
	c := s.view.ScreenToWorld(x, y)
	s.sim.Toggle(c)
	Logger().Debug("toggle", "row", c.Row, "col", c.Col, "alive", s.sim.Alive(c))
	return true
}

// Pan shifts the camera by a pixel delta.
func (s *Session) Pan(dx, dy float64) { s.view.Pan(dx, dy) }

// ZoomAt zooms one step around pixel (x, y).
func (s *Session) ZoomAt(x, y float64, direction int) bool {
	ok := s.view.ZoomAt(x, y, direction)
	if ok {
		Logger().Debug("zoom", "cell", s.view.CellSize())
	}
	return ok
}

// PointerDown starts a pointer gesture.
func (s *Session) PointerDown(x, y float64) { s.gesture.Press(x, y) }

// PointerMove forwards drag motion to the camera.
func (s *Session) PointerMove(x, y float64) {
	dx, dy := s.gesture.Move(x, y)
	if dx != 0 || dy != 0 {
		s.view.Pan(dx, dy)
	}
}

// PointerUp ends the gesture. A click toggles the pressed cell while paused;
// it reports whether a cell was toggled.
func (s *Session) PointerUp() bool {
	res := s.gesture.Release()
	if res.Kind != input.Click {
		return false
	}
	return s.ToggleAt(res.X, res.Y)
}

// Status returns a one-line summary for the status bar.
func (s *Session) Status() string {
	state := "running"
	if s.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  gen %d  pop %d  cell %dpx", state, s.sim.Generation(), s.sim.Population(), s.view.CellSize())
}

// Parameters reports the tunables shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	ox, oy := s.view.Origin()
	minCell, maxCell := s.view.Limits()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: ParamTickMillis, Label: "Tick (ms)", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.clock.Step().Milliseconds(), 10)},
				{Key: ParamDensity, Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.density, 'f', -1, 64)},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(s.sim.Generation())},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(s.sim.Population())},
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				{Key: "cell", Label: "Cell size", Type: core.ParamTypeInt, Value: strconv.Itoa(s.view.CellSize())},
				{Key: "zoom", Label: "Zoom range", Type: core.ParamTypeText, Value: fmt.Sprintf("%d-%dpx", minCell, maxCell)},
				{Key: "origin", Label: "Origin", Type: core.ParamTypeText, Value: fmt.Sprintf("%.0f,%.0f", ox, oy)},
				{Key: "grid", Label: "Grid lines", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.showGrid)},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamTickMillis, Label: "Tick (ms)", Type: core.ParamTypeInt, Step: 10, Min: 10, Max: 2000, HasMin: true, HasMax: true},
		{Key: ParamDensity, Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamTickMillis:
		value = min(max(value, 10), 2000)
		s.clock.SetStep(time.Duration(value) * time.Millisecond)
		return true
	}
	return false
}

// SetFloatParameter updates a floating point tunable.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case ParamDensity:
		if math.IsNaN(value) {
			return false
		}
		s.density = min(max(value, 0), 1)
		return true
	}
	return false
}
