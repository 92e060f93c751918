package pneumatic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBleedSpec() EngineBleedSpec {
	return EngineBleedSpec{
		LPMaxPSI:   45,
		HPMaxPSI:   120,
		HPSwitchN2: 70,
		MaxTempC:   250,
	}
}

func TestEngineBleedPortSelection(t *testing.T) {
	b := NewEngineBleed(1, testBleedSpec())

	t.Run("no output while shut down", func(t *testing.T) {
		b.SetShaft(false, 0)
		assert.Zero(t, b.PressurePSI())
		assert.False(t, b.HPPortActive())
	})

	t.Run("HP port at low core speed", func(t *testing.T) {
		b.SetShaft(true, 60)
		assert.True(t, b.HPPortActive())
		assert.InDelta(t, 72, b.PressurePSI(), 0.1)
		assert.InDelta(t, 150, b.TempC(), 0.1)
	})

	t.Run("LP port at high core speed", func(t *testing.T) {
		b.SetShaft(true, 90)
		assert.False(t, b.HPPortActive())
		assert.InDelta(t, 40.5, b.PressurePSI(), 0.1)
	})
}

func TestBleedValveRegulates(t *testing.T) {
	v := NewBleedValve(BleedValveSpec{RegulatedPSI: 45, PrecoolerOutTempC: 200})

	assert.Zero(t, v.OutputPSI(72), "closed valve passes nothing")

	v.SetOpen(true)
	assert.InDelta(t, 45, v.OutputPSI(72), 0.1, "over-pressure is regulated down")
	assert.InDelta(t, 30, v.OutputPSI(30), 0.1, "weak supply passes through")
	assert.InDelta(t, 200, v.OutputTempC(250), 0.1, "precooler caps temperature")
	assert.InDelta(t, 150, v.OutputTempC(150), 0.1)
}

func TestAPUSpinUp(t *testing.T) {
	apu := NewAPU(APUSpec{SpinUpSeconds: 20, BleedPSI: 40, BleedTempC: 200})
	apu.SetBleed(true)

	apu.Start()
	apu.Update(10)
	assert.False(t, apu.Available())
	assert.Zero(t, apu.PressurePSI())

	apu.Update(10)
	assert.True(t, apu.Available())
	assert.InDelta(t, 40, apu.PressurePSI(), 0.1)

	apu.SetBleed(false)
	assert.Zero(t, apu.PressurePSI(), "bleed valve closed")

	apu.Stop()
	apu.Update(0.016)
	assert.False(t, apu.Available())
}
