package core

import "time"

// FixedStep decouples episode ticks from render frames: the viewer redraws
// at whatever frame rate the window runs, while the episode only advances
// when enough wall time has accumulated for the next tick.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep returns a controller that admits tps ticks per second. The
// first ShouldStep call fires immediately. Non-positive rates fall back
// to 10.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate on a live controller.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether one tick's worth of wall time has elapsed and,
// if so, consumes it from the accumulator.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	return true
}
