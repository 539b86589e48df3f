package core

import "time"

// FixedStep paces simulation ticks at a steady interval independent of the
// render loop frequency.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller with the given tick interval.
// The first call to ShouldStep always fires.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = 100 * time.Millisecond
	}
	f.step = d
}

// Interval reports the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.ShouldStepAt(time.Now())
}

// ShouldStepAt is ShouldStep with an explicit clock reading.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Never bank more than one pending tick after a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
