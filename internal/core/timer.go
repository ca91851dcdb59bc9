package core

import "time"

// DefaultInterval is the tick cadence used when none is configured.
const DefaultInterval = 10 * time.Millisecond

// FixedStep decides, once per frame, whether the simulation should advance.
// It lets a frame-driven loop invoke Tick at a steady interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the step length. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval returns the current step length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// SecondsToInterval converts a UI speed value in seconds. Non-positive values
// report ok=false.
func SecondsToInterval(seconds float64) (time.Duration, bool) {
	if seconds <= 0 {
		return 0, false
	}
	d := time.Duration(seconds * float64(time.Second))
	if d <= 0 {
		return 0, false
	}
	return d, true
}
