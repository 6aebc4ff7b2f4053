package core

import "time"

// FixedStep turns frame deltas into simulation ticks at a steady rate,
// independent of the frame rate of the caller.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given ticks per
// second. The first Advance always fires so a freshly started run moves
// immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 5
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance adds delta to the accumulator and reports whether a tick is due.
// At most one tick fires per call; any backlog beyond one interval is dropped
// so a stalled frame does not trigger a burst of generations.
func (f *FixedStep) Advance(delta time.Duration) bool {
	f.accumulator += delta
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}

// Rearm makes the next Advance fire regardless of elapsed time.
func (f *FixedStep) Rearm() { f.accumulator = f.step }
