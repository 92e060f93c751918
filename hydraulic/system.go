package hydraulic

import (
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

// System adapts the hydraulic circuits to the simulation scheduler. Each
// step it routes engine shaft speed to the engine-driven pumps and electrical
// bus state to the electric pumps, updates every circuit, and publishes the
// resulting manifold pressures.
type System struct {
	circuits []*Circuit
}

// NewSystem creates an empty hydraulic system.
func NewSystem(circuits ...*Circuit) *System {
	return &System{circuits: circuits}
}

// Circuit returns the circuit with the given system number, or nil.
func (s *System) Circuit(number int) *Circuit {
	for _, c := range s.circuits {
		if c.number == number {
			return c
		}
	}
	return nil
}

func (s *System) Update(frame *sim.Frame) {
	shafts := sim.Messages[signal.EngineShaft](frame.Bus)
	buses := sim.Messages[signal.BusPower](frame.Bus)

	for _, c := range s.circuits {
		if c.edp != nil {
			rpm := 0.0
			for _, shaft := range shafts {
				if shaft.Engine == c.edpEngine && shaft.Running {
					rpm = shaft.RPM
				}
			}
			c.edp.SetShaftRPM(rpm)
		}

		if c.acmp != nil {
			powered := false
			for _, bus := range buses {
				if bus.Name == c.acmpBus && bus.Powered {
					powered = true
				}
			}
			c.acmp.SetPowered(powered)
		}

		c.Update(frame.DeltaTime)

		sim.Publish(frame.Bus, signal.HydraulicPressure{
			System:      c.number,
			PressurePSI: c.manifoldPSI,
			LowQuantity: c.reservoir.LowQuantity(),
		})
	}
}
