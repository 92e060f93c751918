package aircond

import (
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

// System runs the two packs into a common mix manifold and distributes the
// result across the cabin zones. Pack 1 draws from the left bleed duct and
// pack 2 from the right. Zone temperature selections steer the pack outlet
// target; the packs share one target since they discharge into the same
// manifold.
type System struct {
	packs []*Pack
	zones []*Zone
}

// NewSystem wires the packs and zones together.
func NewSystem(packs []*Pack, zones []*Zone) *System {
	return &System{packs: packs, zones: zones}
}

// Pack returns the pack at the given position, or nil.
func (s *System) Pack(side int) *Pack {
	for _, p := range s.packs {
		if p.side == side {
			return p
		}
	}
	return nil
}

// Zone returns the named zone, or nil.
func (s *System) Zone(name string) *Zone {
	for _, z := range s.zones {
		if z.Name() == name {
			return z
		}
	}
	return nil
}

// SetAmbientC sets the outside air temperature for every zone.
func (s *System) SetAmbientC(tempC float64) {
	for _, z := range s.zones {
		z.SetAmbientC(tempC)
	}
}

func (s *System) Update(frame *sim.Frame) {
	ducts := sim.Messages[signal.BleedAir](frame.Bus)

	// Packs chase the mean of the zone selections. Per-zone trim air is
	// not modeled; the shared manifold makes it a second-order effect.
	target := 0.0
	for _, z := range s.zones {
		target += z.TargetTempC()
	}
	if len(s.zones) > 0 {
		target /= float64(len(s.zones))
	}

	for _, p := range s.packs {
		side := signal.Left
		if p.side == 2 {
			side = signal.Right
		}
		for _, duct := range ducts {
			if duct.Duct == side {
				p.SetBleed(duct.PressurePSI, duct.TempC)
			}
		}
		p.SetTargetTempC(target)
		p.Update(frame.DeltaTime)
	}

	// Mix manifold: flow-weighted blend of the operating packs.
	totalFlow := 0.0
	mixTempC := 0.0
	for _, p := range s.packs {
		totalFlow += p.FlowKgS()
		mixTempC += p.FlowKgS() * p.OutletTempC()
	}
	if totalFlow > 0 {
		mixTempC /= totalFlow
	}

	perZone := 0.0
	if len(s.zones) > 0 {
		perZone = totalFlow / float64(len(s.zones))
	}
	for _, z := range s.zones {
		z.Update(frame.DeltaTime, mixTempC, perZone)
		sim.Publish(frame.Bus, signal.ZoneAir{
			Zone:        z.Name(),
			TempC:       z.TempC(),
			TargetTempC: z.TargetTempC(),
		})
	}
}
