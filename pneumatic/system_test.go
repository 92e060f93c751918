package pneumatic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouroboros-sim/ejet/pneumatic"
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

func testSystem() *pneumatic.System {
	spec := pneumatic.EngineBleedSpec{
		LPMaxPSI:   45,
		HPMaxPSI:   120,
		HPSwitchN2: 70,
		MaxTempC:   250,
	}
	return pneumatic.NewSystem(
		pneumatic.NewEngineBleed(1, spec),
		pneumatic.NewEngineBleed(2, spec),
		pneumatic.BleedValveSpec{RegulatedPSI: 45, PrecoolerOutTempC: 200},
		pneumatic.NewAPU(pneumatic.APUSpec{SpinUpSeconds: 20, BleedPSI: 40, BleedTempC: 200}),
	)
}

func ductBySide(t *testing.T, bus *sim.Bus, side signal.Side) signal.BleedAir {
	t.Helper()
	for _, duct := range sim.Messages[signal.BleedAir](bus) {
		if duct.Duct == side {
			return duct
		}
	}
	t.Fatalf("no bleed air message for %s duct", side)
	return signal.BleedAir{}
}

func TestSystemEngineFeedsOwnDuct(t *testing.T) {
	sys := testSystem()
	sys.Valve(signal.Left).SetOpen(true)
	sys.Valve(signal.Right).SetOpen(true)

	scheduler := sim.NewScheduler()
	scheduler.Register(sys)

	// Only engine 1 is running.
	sim.Publish(scheduler.Bus(), signal.EngineShaft{Engine: 1, Running: true, N2Percent: 90})
	sim.Publish(scheduler.Bus(), signal.EngineShaft{Engine: 2})
	scheduler.Step(0.016)

	left := ductBySide(t, scheduler.Bus(), signal.Left)
	right := ductBySide(t, scheduler.Bus(), signal.Right)
	assert.InDelta(t, 40.5, left.PressurePSI, 0.1)
	assert.Zero(t, right.PressurePSI)
}

func TestSystemCrossbleedSharesPressure(t *testing.T) {
	sys := testSystem()
	sys.Valve(signal.Left).SetOpen(true)
	sys.Valve(signal.Right).SetOpen(true)
	sys.Crossbleed().SetOpen(true)

	scheduler := sim.NewScheduler()
	scheduler.Register(sys)

	sim.Publish(scheduler.Bus(), signal.EngineShaft{Engine: 1, Running: true, N2Percent: 90})
	sim.Publish(scheduler.Bus(), signal.EngineShaft{Engine: 2})
	scheduler.Step(0.016)

	right := ductBySide(t, scheduler.Bus(), signal.Right)
	assert.InDelta(t, 40.5, right.PressurePSI, 0.1, "dead side fed through crossbleed")
	assert.Equal(t, sys.DuctPSI(signal.Left), sys.DuctPSI(signal.Right))
}

func TestSystemAPUFeedsBothDucts(t *testing.T) {
	sys := testSystem()
	sys.APU().Start()
	sys.APU().SetBleed(true)

	scheduler := sim.NewScheduler()
	scheduler.Register(sys)

	// Run past the APU spin-up with both engines dead.
	for i := 0; i < 30; i++ {
		scheduler.Step(1.0)
	}

	require.True(t, sys.APU().Available())
	left := ductBySide(t, scheduler.Bus(), signal.Left)
	right := ductBySide(t, scheduler.Bus(), signal.Right)
	assert.InDelta(t, 40, left.PressurePSI, 0.1)
	assert.InDelta(t, 40, right.PressurePSI, 0.1)
	assert.InDelta(t, 200, left.TempC, 0.1)
}

func TestSystemValveClosedIsolatesEngine(t *testing.T) {
	sys := testSystem()

	scheduler := sim.NewScheduler()
	scheduler.Register(sys)

	sim.Publish(scheduler.Bus(), signal.EngineShaft{Engine: 1, Running: true, N2Percent: 90})
	scheduler.Step(0.016)

	left := ductBySide(t, scheduler.Bus(), signal.Left)
	assert.Zero(t, left.PressurePSI)
}
