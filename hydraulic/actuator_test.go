package hydraulic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActuatorSpec() ActuatorSpec {
	return ActuatorSpec{
		BoreDiameterM:         0.08,
		RodDiameterM:          0.04,
		StrokeM:               0.30,
		BulkModulusPa:         1.4e9,
		MaxValveFlowM3:        0.001,
		StaticFrictionN:       200,
		DynamicFrictionNsPerM: 5000,
		InternalLeakCoeff:     1e-12,
		ExternalLeakCoeff:     0,
		EffectiveMassKg:       10,
		DeadVolumeM3:          1e-5,
	}
}

func stepActuator(a *Actuator, seconds float64) {
	const dt = 0.001
	for t := 0.0; t < seconds; t += dt {
		a.Update(dt)
	}
}

func TestActuatorHoldsWithoutSupply(t *testing.T) {
	act := NewActuator(testActuatorSpec())
	act.SetValve(1.0)

	stepActuator(act, 0.5)

	assert.Zero(t, act.PositionM())
	assert.Zero(t, act.CapPressurePa())
}

func TestActuatorExtendsUnderPressure(t *testing.T) {
	act := NewActuator(testActuatorSpec())
	act.SetSupplyPressure(3000 * PascalsPerPSI)
	act.SetValve(1.0)

	stepActuator(act, 0.5)

	assert.Greater(t, act.PositionM(), 0.0)
	assert.Greater(t, act.CapPressurePa(), 0.0)
}

func TestActuatorStopsAtFullStroke(t *testing.T) {
	act := NewActuator(testActuatorSpec())
	act.SetSupplyPressure(3000 * PascalsPerPSI)
	act.SetValve(1.0)

	stepActuator(act, 5.0)

	assert.InDelta(t, 0.30, act.PositionM(), 1e-9)
	assert.InDelta(t, 1.0, act.ExtensionRatio(), 1e-9)
	// Driving into the stop zeroes the velocity.
	assert.Zero(t, act.VelocityMS())
}

func TestActuatorRetracts(t *testing.T) {
	act := NewActuator(testActuatorSpec())
	act.SetSupplyPressure(3000 * PascalsPerPSI)
	act.SetValve(1.0)
	stepActuator(act, 5.0)
	require.InDelta(t, 0.30, act.PositionM(), 1e-9)

	act.SetValve(-1.0)
	stepActuator(act, 5.0)

	assert.InDelta(t, 0.0, act.PositionM(), 1e-9)
}

func TestActuatorStaticFrictionHoldsSmallLoads(t *testing.T) {
	act := NewActuator(testActuatorSpec())
	// 100 N external force is below the 200 N breakout friction.
	act.SetExternalForce(100)

	stepActuator(act, 1.0)

	assert.Zero(t, act.PositionM())
}

func TestActuatorValveClamped(t *testing.T) {
	act := NewActuator(testActuatorSpec())

	act.SetValve(5.0)
	assert.Equal(t, 1.0, act.valve)

	act.SetValve(-7.0)
	assert.Equal(t, -1.0, act.valve)
}
