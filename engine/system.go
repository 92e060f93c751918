package engine

import (
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

// System adapts the engine pair to the simulation scheduler. Each step it
// feeds the bleed duct pressure to every FADEC (for starter air) and
// publishes one shaft message per engine.
type System struct {
	fadecs []*FADEC
}

// NewSystem creates the engine system from its controllers.
func NewSystem(fadecs ...*FADEC) *System {
	return &System{fadecs: fadecs}
}

// FADEC returns the controller for the given engine position, or nil.
func (s *System) FADEC(engine int) *FADEC {
	for _, f := range s.fadecs {
		if f.engine == engine {
			return f
		}
	}
	return nil
}

func (s *System) Update(frame *sim.Frame) {
	ducts := sim.Messages[signal.BleedAir](frame.Bus)

	for _, f := range s.fadecs {
		// Engine 1 starts off the left duct, engine 2 off the right.
		side := signal.Left
		if f.engine == 2 {
			side = signal.Right
		}

		bleedPSI := 0.0
		for _, duct := range ducts {
			if duct.Duct == side {
				bleedPSI = duct.PressurePSI
			}
		}

		f.Update(frame.DeltaTime, bleedPSI)

		sim.Publish(frame.Bus, signal.EngineShaft{
			Engine:     f.engine,
			Running:    f.Running(),
			N2Percent:  f.N2(),
			RPM:        f.ShaftRPM(),
			PowerWatts: f.ShaftPowerWatts(),
		})
	}
}
