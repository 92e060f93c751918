package hydraulic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnginePumpSpec() EnginePumpSpec {
	return EnginePumpSpec{
		RatedPSI:           3000,
		RatedRPM:           4000,
		DisplacementLiters: 0.04,
	}
}

func TestEnginePumpPressureTracksShaftSpeed(t *testing.T) {
	pump := NewEnginePump(testEnginePumpSpec())

	pump.SetShaftRPM(0)
	pump.Update(0.016)
	assert.Zero(t, pump.OutputPSI())

	pump.SetShaftRPM(2000)
	pump.Update(0.016)
	assert.InDelta(t, 1500, pump.OutputPSI(), 1e-9)

	// The compensator caps delivery at the rated pressure.
	pump.SetShaftRPM(8000)
	pump.Update(0.016)
	assert.InDelta(t, 3000, pump.OutputPSI(), 1e-9)
}

func TestEnginePumpDepressurized(t *testing.T) {
	pump := NewEnginePump(testEnginePumpSpec())
	pump.SetShaftRPM(4000)
	pump.SetDepressurized(true)

	pump.Update(0.016)

	assert.Zero(t, pump.OutputPSI())
	assert.Zero(t, pump.FlowLitersPerSecond())
}

func TestElectricPumpSpinUp(t *testing.T) {
	pump := NewElectricPump(ElectricPumpSpec{RatedPSI: 3000, SpinUpSeconds: 2})
	pump.SetCommanded(true)
	pump.SetPowered(true)

	pump.Update(1.0)
	assert.InDelta(t, 1500, pump.OutputPSI(), 1e-9)

	pump.Update(1.0)
	assert.InDelta(t, 3000, pump.OutputPSI(), 1e-9)
}

func TestElectricPumpNeedsPower(t *testing.T) {
	pump := NewElectricPump(ElectricPumpSpec{RatedPSI: 3000, SpinUpSeconds: 0})
	pump.SetCommanded(true)
	pump.SetPowered(false)

	pump.Update(1.0)
	assert.False(t, pump.Running())
	assert.Zero(t, pump.OutputPSI())

	// Power restored: the spin-up restarts from zero.
	pump.SetPowered(true)
	pump.Update(1.0)
	assert.True(t, pump.Running())
	assert.InDelta(t, 3000, pump.OutputPSI(), 1e-9)
}

func TestReservoir(t *testing.T) {
	res := NewReservoir(10)

	assert.InDelta(t, 10, res.Volume(), 1e-9)
	assert.False(t, res.LowQuantity())

	drawn := res.Draw(3)
	assert.InDelta(t, 3, drawn, 1e-9)
	assert.InDelta(t, 7, res.Volume(), 1e-9)

	// Drawing more than remains returns only what is left.
	drawn = res.Draw(100)
	assert.InDelta(t, 7, drawn, 1e-9)
	assert.Zero(t, res.Volume())
	assert.True(t, res.LowQuantity())

	// Returns cap at capacity.
	res.Return(25)
	assert.InDelta(t, 10, res.Volume(), 1e-9)
}

func TestCircuitManifoldPressure(t *testing.T) {
	circuit := NewCircuit(1, 10)
	circuit.AttachEnginePump(testEnginePumpSpec(), 1)

	circuit.EnginePump().SetShaftRPM(4000)
	circuit.Update(0.016)

	assert.InDelta(t, 3000, circuit.ManifoldPSI(), 1e-9)
}

func TestCircuitPicksStrongestPump(t *testing.T) {
	circuit := NewCircuit(3, 10)
	circuit.AttachEnginePump(testEnginePumpSpec(), 1)
	circuit.AttachElectricPump(ElectricPumpSpec{RatedPSI: 2900, SpinUpSeconds: 0}, "ac bus 1")

	// Engine windmilling slowly, electric pump carrying the system.
	circuit.EnginePump().SetShaftRPM(1000)
	acmp := circuit.ElectricPump()
	acmp.SetCommanded(true)
	acmp.SetPowered(true)

	circuit.Update(0.016)

	assert.InDelta(t, 2900, circuit.ManifoldPSI(), 1e-9)
}

func TestCircuitDryReservoirDropsPressure(t *testing.T) {
	circuit := NewCircuit(2, 5)
	circuit.AttachEnginePump(testEnginePumpSpec(), 2)
	circuit.EnginePump().SetShaftRPM(4000)

	circuit.Reservoir().Draw(5)
	circuit.Update(0.016)

	assert.Zero(t, circuit.ManifoldPSI())
}

func TestCircuitActuatorSuppliedFromManifold(t *testing.T) {
	circuit := NewCircuit(1, 10)
	circuit.AttachEnginePump(testEnginePumpSpec(), 1)
	circuit.EnginePump().SetShaftRPM(4000)

	act := NewActuator(testActuatorSpec())
	circuit.AddActuator("gear", act)
	require.NotNil(t, circuit.Actuator("gear"))

	act.SetValve(1.0)
	for i := 0; i < 500; i++ {
		circuit.Update(0.001)
	}

	assert.Greater(t, act.PositionM(), 0.0)
}
