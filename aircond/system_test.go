package aircond_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouroboros-sim/ejet/aircond"
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

func testSystem() *aircond.System {
	packSpec := aircond.PackSpec{
		MinBleedPSI:     20,
		FlowKgS:         1.0,
		MinOutletTempC:  2,
		MaxOutletTempC:  70,
		ResponseSeconds: 5,
	}
	zoneSpec := aircond.ZoneSpec{ThermalMassJPerK: 50000, LeakWPerK: 50}

	cockpit := zoneSpec
	cockpit.Name = "cockpit"
	cabin := zoneSpec
	cabin.Name = "cabin"
	cabin.ThermalMassJPerK = 200000

	return aircond.NewSystem(
		[]*aircond.Pack{aircond.NewPack(1, packSpec), aircond.NewPack(2, packSpec)},
		[]*aircond.Zone{aircond.NewZone(cockpit, 10), aircond.NewZone(cabin, 10)},
	)
}

func publishDucts(bus *sim.Bus, psi float64) {
	sim.Publish(bus, signal.BleedAir{Duct: signal.Left, PressurePSI: psi, TempC: 180})
	sim.Publish(bus, signal.BleedAir{Duct: signal.Right, PressurePSI: psi, TempC: 180})
}

func TestSystemWarmsZonesTowardSelection(t *testing.T) {
	sys := testSystem()
	sys.Pack(1).SetOn(true)
	sys.Pack(2).SetOn(true)
	sys.SetAmbientC(10)
	sys.Zone("cockpit").SetTargetTempC(24)
	sys.Zone("cabin").SetTargetTempC(24)

	scheduler := sim.NewScheduler()
	scheduler.Register(sys)

	for i := 0; i < 600; i++ {
		publishDucts(scheduler.Bus(), 35)
		scheduler.Step(1.0)
	}

	zones := sim.Messages[signal.ZoneAir](scheduler.Bus())
	require.Len(t, zones, 2)
	for _, zone := range zones {
		assert.Greater(t, zone.TempC, 20.0, "zone %s", zone.Zone)
		assert.Less(t, zone.TempC, 24.5, "zone %s", zone.Zone)
		assert.InDelta(t, 24, zone.TargetTempC, 1e-9)
	}
}

func TestSystemSinglePackStillFeedsBothZones(t *testing.T) {
	sys := testSystem()
	sys.Pack(1).SetOn(true)
	sys.SetAmbientC(10)
	sys.Zone("cockpit").SetTargetTempC(24)
	sys.Zone("cabin").SetTargetTempC(24)

	scheduler := sim.NewScheduler()
	scheduler.Register(sys)

	start := sys.Zone("cabin").TempC()
	for i := 0; i < 300; i++ {
		publishDucts(scheduler.Bus(), 35)
		scheduler.Step(1.0)
	}

	assert.False(t, sys.Pack(2).Operating())
	assert.Greater(t, sys.Zone("cabin").TempC(), start)
}

func TestSystemZonesDriftWithoutBleed(t *testing.T) {
	sys := testSystem()
	sys.Pack(1).SetOn(true)
	sys.Pack(2).SetOn(true)
	sys.SetAmbientC(-20)
	sys.Zone("cockpit").SetTargetTempC(24)
	sys.Zone("cabin").SetTargetTempC(24)

	scheduler := sim.NewScheduler()
	scheduler.Register(sys)

	for i := 0; i < 300; i++ {
		scheduler.Step(1.0)
	}

	assert.Less(t, sys.Zone("cockpit").TempC(), 10.0)
}
