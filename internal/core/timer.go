package core

import "time"

// FixedStep helps run simulation updates at a steady rate that is independent
// of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given steps
// per second. The first call to ShouldStep always fires.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Interval returns the duration of one step.
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
		// Drop backlog after long stalls instead of fast-forwarding.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
