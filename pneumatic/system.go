package pneumatic

import (
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

// System is the full bleed network: one engine bleed per side behind its
// regulating valve, the APU tied into both ducts through check valves, and
// the crossbleed valve between the ducts. It consumes engine shaft state and
// publishes per-duct bleed air each frame.
type System struct {
	bleeds     map[signal.Side]*EngineBleed
	valves     map[signal.Side]*BleedValve
	apu        *APU
	crossbleed *CrossbleedValve

	ductPSI   map[signal.Side]float64
	ductTempC map[signal.Side]float64
}

// NewSystem wires the bleed network. Engine 1 feeds the left duct and
// engine 2 the right; both sides use the same valve spec.
func NewSystem(left, right *EngineBleed, valve BleedValveSpec, apu *APU) *System {
	return &System{
		bleeds: map[signal.Side]*EngineBleed{
			signal.Left:  left,
			signal.Right: right,
		},
		valves: map[signal.Side]*BleedValve{
			signal.Left:  NewBleedValve(valve),
			signal.Right: NewBleedValve(valve),
		},
		apu:        apu,
		crossbleed: &CrossbleedValve{},

		ductPSI:   map[signal.Side]float64{},
		ductTempC: map[signal.Side]float64{},
	}
}

// APU returns the auxiliary power unit.
func (s *System) APU() *APU {
	return s.apu
}

// Valve returns the regulating valve for one side.
func (s *System) Valve(side signal.Side) *BleedValve {
	return s.valves[side]
}

// Crossbleed returns the crossbleed valve.
func (s *System) Crossbleed() *CrossbleedValve {
	return s.crossbleed
}

// DuctPSI returns the last computed pressure for one duct.
func (s *System) DuctPSI(side signal.Side) float64 {
	return s.ductPSI[side]
}

func (s *System) Update(frame *sim.Frame) {
	for _, shaft := range sim.Messages[signal.EngineShaft](frame.Bus) {
		side := signal.Left
		if shaft.Engine == 2 {
			side = signal.Right
		}
		if bleed := s.bleeds[side]; bleed != nil {
			bleed.SetShaft(shaft.Running, shaft.N2Percent)
		}
	}

	s.apu.Update(frame.DeltaTime)

	for _, side := range []signal.Side{signal.Left, signal.Right} {
		bleed := s.bleeds[side]
		valve := s.valves[side]

		psi := valve.OutputPSI(bleed.PressurePSI())
		tempC := valve.OutputTempC(bleed.TempC())

		// APU check valves open into either duct when the APU is the
		// stronger source.
		if apuPSI := s.apu.PressurePSI(); apuPSI > psi {
			psi = apuPSI
			tempC = s.apu.TempC()
		}

		s.ductPSI[side] = psi
		s.ductTempC[side] = tempC
	}

	if s.crossbleed.Open() {
		strong := signal.Left
		if s.ductPSI[signal.Right] > s.ductPSI[signal.Left] {
			strong = signal.Right
		}
		for _, side := range []signal.Side{signal.Left, signal.Right} {
			s.ductPSI[side] = s.ductPSI[strong]
			s.ductTempC[side] = s.ductTempC[strong]
		}
	}

	for _, side := range []signal.Side{signal.Left, signal.Right} {
		sim.Publish(frame.Bus, signal.BleedAir{
			Duct:        side,
			PressurePSI: s.ductPSI[side],
			TempC:       s.ductTempC[side],
		})
	}
}
