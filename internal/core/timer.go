package core

import "time"

// FixedStep converts variable frame time into a whole number of fixed
// simulation ticks. Each frame's delta is capped at maxDelta so a stalled
// frame cannot trigger an unbounded catch-up burst.
//
// The step duration must be positive; that is the caller's contract.
type FixedStep struct {
	step        time.Duration
	maxDelta    time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep ticking every step. A non-positive
// maxDelta disables the cap.
func NewFixedStep(step, maxDelta time.Duration) *FixedStep {
	fs := &FixedStep{maxDelta: maxDelta}
	fs.SetStep(step)
	return fs
}

// SetStep changes the tick duration. It is safe to call from the main loop;
// time already accumulated is kept.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = time.Second / 60
	}
	f.step = step
}

// Step returns the tick duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// Pending returns the simulated time accumulated but not yet consumed.
func (f *FixedStep) Pending() time.Duration { return f.accumulator }

// Reset discards any accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }

// Advance adds the elapsed frame time and reports how many ticks are due.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta < 0 {
		delta = 0
	}
	if f.maxDelta > 0 && delta > f.maxDelta {
		delta = f.maxDelta
	}
	f.accumulator += delta
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}
