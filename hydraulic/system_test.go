package hydraulic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouroboros-sim/ejet/hydraulic"
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

func TestSystemRoutesShaftAndBusState(t *testing.T) {
	sys1 := hydraulic.NewCircuit(1, 10)
	sys1.AttachEnginePump(hydraulic.EnginePumpSpec{
		RatedPSI:           3000,
		RatedRPM:           4000,
		DisplacementLiters: 0.04,
	}, 1)

	sys3 := hydraulic.NewCircuit(3, 8)
	acmp := sys3.AttachElectricPump(hydraulic.ElectricPumpSpec{RatedPSI: 2900}, "ac bus 2")
	acmp.SetCommanded(true)

	scheduler := sim.NewScheduler()
	scheduler.Register(hydraulic.NewSystem(sys1, sys3))

	sim.Publish(scheduler.Bus(), signal.EngineShaft{
		Engine:    1,
		Running:   true,
		N2Percent: 95,
		RPM:       4000,
	})
	sim.Publish(scheduler.Bus(), signal.BusPower{Name: "ac bus 2", Volts: 115, Powered: true})

	scheduler.Step(0.016)

	assert.InDelta(t, 3000, sys1.ManifoldPSI(), 1e-9)
	assert.InDelta(t, 2900, sys3.ManifoldPSI(), 1e-9)

	pressures := sim.Messages[signal.HydraulicPressure](scheduler.Bus())
	require.Len(t, pressures, 2)
	assert.Equal(t, 1, pressures[0].System)
	assert.Equal(t, 3, pressures[1].System)
}

func TestSystemEngineStoppedDropsPressure(t *testing.T) {
	sys1 := hydraulic.NewCircuit(1, 10)
	sys1.AttachEnginePump(hydraulic.EnginePumpSpec{
		RatedPSI:           3000,
		RatedRPM:           4000,
		DisplacementLiters: 0.04,
	}, 1)

	scheduler := sim.NewScheduler()
	scheduler.Register(hydraulic.NewSystem(sys1))

	sim.Publish(scheduler.Bus(), signal.EngineShaft{Engine: 1, Running: false, RPM: 0})
	scheduler.Step(0.016)

	assert.Zero(t, sys1.ManifoldPSI())
}

func TestSystemCircuitLookup(t *testing.T) {
	sys1 := hydraulic.NewCircuit(1, 10)
	sys := hydraulic.NewSystem(sys1)

	assert.Equal(t, sys1, sys.Circuit(1))
	assert.Nil(t, sys.Circuit(2))
}
