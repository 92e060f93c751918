package electrical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLoadSpec(response VoltageResponse) LoadSpec {
	return LoadSpec{
		NominalVolts: 28,
		NominalWatts: 120,
		MinVolts:     21,
		MaxVolts:     32,
		Response:     response,
		PowerFactor:  1,
	}
}

func TestLoadOffDrawsNothing(t *testing.T) {
	load := NewLoad(testLoadSpec(ResponseRegulated))
	load.SetInputVolts(28)

	assert.Zero(t, load.ActualWatts())
	assert.Zero(t, load.InputAmps())
}

func TestLoadBinaryResponse(t *testing.T) {
	load := NewLoad(testLoadSpec(ResponseBinary))
	load.SetOn(true)

	load.SetInputVolts(28)
	assert.InDelta(t, 120, load.ActualWatts(), 1e-9)

	load.SetInputVolts(20)
	assert.Zero(t, load.ActualWatts())
}

func TestLoadLinearResponse(t *testing.T) {
	load := NewLoad(testLoadSpec(ResponseLinear))
	load.SetOn(true)

	load.SetInputVolts(28)
	assert.InDelta(t, 120, load.ActualWatts(), 1e-9)

	// Low but valid voltage scales the draw.
	load.SetInputVolts(21)
	assert.InDelta(t, 120*(21.0/28.0), load.ActualWatts(), 1e-9)
}

func TestLoadRegulatedResponse(t *testing.T) {
	load := NewLoad(testLoadSpec(ResponseRegulated))
	load.SetOn(true)

	load.SetInputVolts(22)
	assert.InDelta(t, 120, load.ActualWatts(), 1e-9)

	load.SetInputVolts(31)
	assert.InDelta(t, 120, load.ActualWatts(), 1e-9)
}

func TestLoadProportionalResponse(t *testing.T) {
	load := NewLoad(testLoadSpec(ResponseProportional))
	load.SetOn(true)

	// Halfway between min (21) and nominal (28).
	load.SetInputVolts(24.5)
	assert.InDelta(t, 60, load.ActualWatts(), 1e-9)

	// Above nominal the factor clamps at 1.
	load.SetInputVolts(30)
	assert.InDelta(t, 120, load.ActualWatts(), 1e-9)
}

func TestLoadFactorDimsDraw(t *testing.T) {
	load := NewLoad(testLoadSpec(ResponseRegulated))
	load.SetOn(true)
	load.SetLoadFactor(0.5)
	load.SetInputVolts(28)

	assert.InDelta(t, 60, load.ActualWatts(), 1e-9)
}

func TestLoadPowerFactor(t *testing.T) {
	spec := testLoadSpec(ResponseRegulated)
	spec.PowerFactor = 0.85
	load := NewLoad(spec)
	load.SetOn(true)
	load.SetInputVolts(28)

	assert.InDelta(t, 120*0.85, load.ActualWatts(), 1e-9)
}

func TestLoadVoltageFaults(t *testing.T) {
	load := NewLoad(testLoadSpec(ResponseRegulated))
	load.SetOn(true)

	load.SetInputVolts(28)
	load.Update(0.016)
	code, _ := load.faultState()
	assert.Equal(t, FaultNone, code)

	load.SetInputVolts(18)
	load.Update(0.016)
	code, volts := load.faultState()
	assert.Equal(t, FaultUndervolt, code)
	assert.Equal(t, 18.0, volts)

	load.SetInputVolts(35)
	load.Update(0.016)
	code, _ = load.faultState()
	assert.Equal(t, FaultOvervolt, code)

	// A switched-off load reports no faults.
	load.SetOn(false)
	load.Update(0.016)
	code, _ = load.faultState()
	assert.Equal(t, FaultNone, code)
}

func TestLoadInputAmps(t *testing.T) {
	load := NewLoad(testLoadSpec(ResponseRegulated))
	load.SetOn(true)
	load.SetInputVolts(28)

	assert.InDelta(t, 120.0/28.0, load.InputAmps(), 1e-9)
}
