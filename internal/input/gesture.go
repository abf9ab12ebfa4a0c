// Package input classifies pointer gestures into clicks and drags.
package input

// Phase is the state of a pointer gesture.
type Phase int

const (
	// Idle means no button is held.
	Idle Phase = iota
	// Pressed means a button is held and the pointer has not left the dead zone.
	Pressed
	// Dragging means the pointer left the dead zone; it stays set until release.
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Kind tells how a finished gesture was classified.
type Kind int

const (
	// None is reported for a release without a matching press.
	None Kind = iota
	// Click is a press and release that never left the dead zone.
	Click
	// Drag is a gesture that left the dead zone at some point.
	Drag
)

// Result describes a finished gesture. X and Y hold the press position for
// clicks.
type Result struct {
	Kind Kind
	X, Y float64
}

// Gesture tracks one button-held pointer interaction. Once the squared
// distance from the press position exceeds threshold², the gesture is a drag
// until the button is released.
type Gesture struct {
	threshold float64
	phase     Phase

	startX, startY float64
	lastX, lastY   float64
}

// NewGesture returns an idle gesture with the given dead-zone radius in pixels.
func NewGesture(threshold float64) *Gesture {
	if threshold < 0 {
		threshold = 0
	}
	return &Gesture{threshold: threshold}
}

// Phase returns the current state.
func (g *Gesture) Phase() Phase { return g.phase }

// Press starts a gesture at (x, y). A press while already held restarts it.
func (g *Gesture) Press(x, y float64) {
	g.phase = Pressed
	g.startX, g.startY = x, y
	g.lastX, g.lastY = x, y
}

// Move records pointer motion and returns the pan delta to apply. The delta is
// zero until the gesture becomes a drag; the first drag delta covers all
// motion since the press so the grid stays under the pointer.
func (g *Gesture) Move(x, y float64) (dx, dy float64) {
	switch g.phase {
	case Pressed:
		ddx, ddy := x-g.startX, y-g.startY
		if ddx*ddx+ddy*ddy <= g.threshold*g.threshold {
			return 0, 0
		}
		g.phase = Dragging
		fallthrough
	case Dragging:
		dx, dy = x-g.lastX, y-g.lastY
		g.lastX, g.lastY = x, y
		return dx, dy
	default:
		return 0, 0
	}
}

// Release ends the gesture and reports how it was classified.
func (g *Gesture) Release() Result {
	phase := g.phase
	g.phase = Idle
	switch phase {
	case Pressed:
		return Result{Kind: Click, X: g.startX, Y: g.startY}
	case Dragging:
		return Result{Kind: Drag}
	default:
		return Result{Kind: None}
	}
}

// Cancel abandons a gesture without producing a result.
func (g *Gesture) Cancel() { g.phase = Idle }
