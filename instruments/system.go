package instruments

import (
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

// System ties the timekeeping instruments to the aircraft. The clock runs
// while its supply bus is powered; the chronometer counts whenever at least
// one engine is running.
type System struct {
	clock *Clock
	chron *Chronometer

	busName string
	powered bool
}

// NewSystem creates the instrument cluster fed from the named electrical bus.
func NewSystem(clock *Clock, chron *Chronometer, busName string) *System {
	return &System{clock: clock, chron: chron, busName: busName}
}

// Clock returns the flight-deck clock.
func (s *System) Clock() *Clock {
	return s.clock
}

// Chronometer returns the hour meter.
func (s *System) Chronometer() *Chronometer {
	return s.chron
}

// Powered reports whether the supply bus held power last step.
func (s *System) Powered() bool {
	return s.powered
}

func (s *System) Update(frame *sim.Frame) {
	for _, bus := range sim.Messages[signal.BusPower](frame.Bus) {
		if bus.Name == s.busName {
			s.powered = bus.Powered
		}
	}

	anyRunning := false
	for _, shaft := range sim.Messages[signal.EngineShaft](frame.Bus) {
		if shaft.Running {
			anyRunning = true
		}
	}
	s.chron.SetRunning(anyRunning)
	s.chron.Update(frame.DeltaTime)

	if s.powered {
		s.clock.Update(frame.DeltaTime)
	}
}
