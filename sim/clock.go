package sim

import "time"

// Clock measures wall-clock delta time for the standalone runner.
type Clock struct {
	last time.Time
}

// NewClock creates a clock starting now.
func NewClock() *Clock {
	return &Clock{last: time.Now()}
}

// Delta returns the time in seconds since the previous call (or since
// creation on the first call).
func (c *Clock) Delta() float64 {
	now := time.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// FixedStep converts irregular wall-clock deltas into a whole number of
// fixed-size simulation steps. Leftover time is carried into the next call,
// so long-run simulated time tracks real time without per-frame jitter
// leaking into the physics.
type FixedStep struct {
	// StepSize is the fixed simulation step in seconds.
	StepSize float64
	// MaxDelta clamps a single incoming delta, protecting the simulation
	// from huge catch-up bursts after a stall. Zero means no clamp.
	MaxDelta float64

	accumulated float64
}

// Advance adds dt to the accumulator and returns the number of fixed steps
// the caller should now run.
func (f *FixedStep) Advance(dt float64) int {
	if f.StepSize <= 0 {
		return 0
	}
	if dt < 0 {
		dt = 0
	}
	if f.MaxDelta > 0 && dt > f.MaxDelta {
		dt = f.MaxDelta
	}

	f.accumulated += dt

	steps := 0
	for f.accumulated >= f.StepSize {
		f.accumulated -= f.StepSize
		steps++
	}
	return steps
}

// Pending returns the unconsumed remainder in seconds.
func (f *FixedStep) Pending() float64 {
	return f.accumulated
}
