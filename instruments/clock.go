// Package instruments models the flight-deck timekeeping: the clock with its
// UTC, elapsed-time and chronograph displays, and the airframe chronometer
// that totals engine running time.
package instruments

import "time"

// ClockMode selects which value the clock face shows.
type ClockMode int

const (
	ModeUTC ClockMode = iota
	ModeET
	ModeCHR
)

// String returns the selector label.
func (m ClockMode) String() string {
	switch m {
	case ModeET:
		return "ET"
	case ModeCHR:
		return "CHR"
	default:
		return "UTC"
	}
}

// Clock is the flight-deck clock. UTC runs off an externally set time base,
// elapsed time counts up from power-on, and the chronograph is controlled by
// the CHR button.
type Clock struct {
	mode ClockMode

	base       time.Time
	utcElapsed time.Duration

	etSeconds float64

	chrSeconds float64
	chrRunning bool
}

// NewClock creates a clock in UTC mode with the given time base.
func NewClock(base time.Time) *Clock {
	return &Clock{base: base.UTC()}
}

// SetMode selects the display mode.
func (c *Clock) SetMode(m ClockMode) {
	c.mode = m
}

// Mode returns the selected display mode.
func (c *Clock) Mode() ClockMode {
	return c.mode
}

// SetUTC resets the time base, as when synchronizing to GPS time.
func (c *Clock) SetUTC(t time.Time) {
	c.base = t.UTC()
	c.utcElapsed = 0
}

// UTC returns the current clock time.
func (c *Clock) UTC() time.Time {
	return c.base.Add(c.utcElapsed)
}

// ElapsedSeconds returns the ET counter.
func (c *Clock) ElapsedSeconds() float64 {
	return c.etSeconds
}

// ResetElapsed zeroes the ET counter.
func (c *Clock) ResetElapsed() {
	c.etSeconds = 0
}

// PressChrono toggles the chronograph between running and stopped.
func (c *Clock) PressChrono() {
	c.chrRunning = !c.chrRunning
}

// ResetChrono stops and zeroes the chronograph.
func (c *Clock) ResetChrono() {
	c.chrRunning = false
	c.chrSeconds = 0
}

// ChronoSeconds returns the chronograph value.
func (c *Clock) ChronoSeconds() float64 {
	return c.chrSeconds
}

// ChronoRunning reports whether the chronograph is counting.
func (c *Clock) ChronoRunning() bool {
	return c.chrRunning
}

// Update advances all counters by dt seconds.
func (c *Clock) Update(dt float64) {
	c.utcElapsed += time.Duration(dt * float64(time.Second))
	c.etSeconds += dt
	if c.chrRunning {
		c.chrSeconds += dt
	}
}

// Chronometer totals engine running time over the airframe's life, the
// maintenance hour meter.
type Chronometer struct {
	seconds float64
	running bool
}

// NewChronometer creates a chronometer preloaded with the airframe's
// accumulated hours.
func NewChronometer(initialHours float64) *Chronometer {
	return &Chronometer{seconds: initialHours * 3600}
}

// SetRunning gates the counter; it accumulates only while an engine runs.
func (c *Chronometer) SetRunning(running bool) {
	c.running = running
}

// Update advances the counter by dt seconds.
func (c *Chronometer) Update(dt float64) {
	if c.running {
		c.seconds += dt
	}
}

// Hours returns the whole hours on the meter.
func (c *Chronometer) Hours() int {
	return int(c.seconds / 3600)
}

// Minutes returns the minutes past the hour on the meter.
func (c *Chronometer) Minutes() int {
	return int(c.seconds/60) % 60
}
