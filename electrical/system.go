package electrical

import (
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

// minGeneratorN2 is the engine spool speed below which a driven generator is
// kept offline.
const minGeneratorN2 = 50.0

type generatorBinding struct {
	id     NodeID
	engine int
}

type reportedBus struct {
	id   NodeID
	name string
	bus  *Busbar
}

// System adapts the electrical network to the simulation scheduler. It feeds
// engine shaft data into the bound generators, updates the network, and
// publishes the state of each reported bus.
type System struct {
	net        *Network
	generators []generatorBinding
	buses      []reportedBus
	lastErr    error
}

// NewSystem wraps a fully assembled network.
func NewSystem(net *Network) *System {
	return &System{net: net}
}

// Network returns the underlying distribution network.
func (s *System) Network() *Network {
	return s.net
}

// BindGenerator attaches the generator at id to an engine position. The
// generator is switched on and driven whenever that engine is running fast
// enough.
func (s *System) BindGenerator(id NodeID, engine int) {
	s.generators = append(s.generators, generatorBinding{id: id, engine: engine})
}

// ReportBus marks the busbar at id for state publication on the simulation
// bus under the given name.
func (s *System) ReportBus(id NodeID, name string) {
	if bus, ok := s.net.Component(id).(*Busbar); ok {
		s.buses = append(s.buses, reportedBus{id: id, name: name, bus: bus})
	}
}

// Err returns the error from the last update, if any.
func (s *System) Err() error {
	return s.lastErr
}

func (s *System) Update(frame *sim.Frame) {
	shafts := sim.Messages[signal.EngineShaft](frame.Bus)

	for _, binding := range s.generators {
		gen, ok := s.net.Component(binding.id).(*Generator)
		if !ok {
			continue
		}

		for _, shaft := range shafts {
			if shaft.Engine != binding.engine {
				continue
			}

			driven := shaft.Running && shaft.N2Percent >= minGeneratorN2
			if driven && !gen.On() {
				gen.TurnOn()
			}
			if !driven && gen.On() {
				gen.TurnOff()
			}
			if driven {
				gen.SetMechanicalInput(shaft.PowerWatts, shaft.RPM)
			}
		}
	}

	s.lastErr = s.net.Update(frame.DeltaTime)

	for _, rb := range s.buses {
		sim.Publish(frame.Bus, signal.BusPower{
			Name:    rb.name,
			Volts:   rb.bus.OutputVolts(),
			Powered: rb.bus.Powered(),
		})
	}
}
