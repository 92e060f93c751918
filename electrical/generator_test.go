package electrical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeneratorSpec() GeneratorSpec {
	return GeneratorSpec{
		Poles:         2,
		RatedWatts:    90000,
		RatedVolts:    115,
		RatedHz:       400,
		Efficiency:    0.95,
		InternalOhms:  0.05,
		SpinUpSeconds: 2,
		Phases:        3,
	}
}

func TestGeneratorOffProducesNothing(t *testing.T) {
	gen := NewGenerator(testGeneratorSpec())
	gen.SetMechanicalInput(80000, 12000)

	gen.Update(0.016)

	assert.Zero(t, gen.OutputVolts())
	assert.Zero(t, gen.OutputWatts())
	assert.Zero(t, gen.RPM())
}

func TestGeneratorSpinUp(t *testing.T) {
	gen := NewGenerator(testGeneratorSpec())
	gen.TurnOn()
	gen.SetMechanicalInput(80000, 12000)

	// Halfway through the 2 s spin-up the rotor should be at half speed.
	gen.Update(1.0)
	assert.InDelta(t, 6000, gen.RPM(), 1)

	gen.Update(1.0)
	assert.InDelta(t, 12000, gen.RPM(), 1)

	// Past spin-up the ramp stays clamped.
	gen.Update(1.0)
	assert.InDelta(t, 12000, gen.RPM(), 1)
}

func TestGeneratorFullOutput(t *testing.T) {
	gen := NewGenerator(testGeneratorSpec())
	gen.TurnOn()
	gen.SetMechanicalInput(80000, 12000)

	gen.Update(2.0)

	// At synchronous speed: 80 kW * 0.95 efficiency, under the 90 kW rating.
	assert.InDelta(t, 76000, gen.OutputWatts(), 1)
	// Voltage sags slightly under load but stays near rated.
	assert.Greater(t, gen.OutputVolts(), 100.0)
	assert.Less(t, gen.OutputVolts(), 115.0)
}

func TestGeneratorOutputCappedAtRating(t *testing.T) {
	gen := NewGenerator(testGeneratorSpec())
	gen.TurnOn()
	gen.SetMechanicalInput(200000, 12000)

	gen.Update(2.0)

	assert.InDelta(t, 90000, gen.OutputWatts(), 1)
}

func TestGeneratorEfficiencyDeratedBelowSyncSpeed(t *testing.T) {
	gen := NewGenerator(testGeneratorSpec())
	gen.TurnOn()
	gen.SetMechanicalInput(80000, 6000) // half of the 12000 rpm sync speed

	gen.Update(2.0)

	require.InDelta(t, 6000, gen.RPM(), 1)
	// Half speed halves the effective efficiency.
	assert.InDelta(t, 38000, gen.OutputWatts(), 1)
}

func TestGeneratorIgnoresInputWhileOff(t *testing.T) {
	gen := NewGenerator(testGeneratorSpec())
	gen.SetMechanicalInput(80000, 12000)
	gen.TurnOn()

	gen.Update(2.0)

	// The mechanical input set before turn-on was discarded.
	assert.Zero(t, gen.OutputWatts())
}

func TestGeneratorTurnOffDropsOutput(t *testing.T) {
	gen := NewGenerator(testGeneratorSpec())
	gen.TurnOn()
	gen.SetMechanicalInput(80000, 12000)
	gen.Update(2.0)
	require.NotZero(t, gen.OutputWatts())

	gen.TurnOff()

	assert.Zero(t, gen.OutputVolts())
	assert.Zero(t, gen.OutputWatts())
	assert.Zero(t, gen.RPM())
}
