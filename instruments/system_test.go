package instruments_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ouroboros-sim/ejet/instruments"
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

func TestSystemClockNeedsBusPower(t *testing.T) {
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	sys := instruments.NewSystem(instruments.NewClock(base), instruments.NewChronometer(0), "dc-1")

	scheduler := sim.NewScheduler()
	scheduler.Register(sys)

	scheduler.Step(1.0)
	assert.Equal(t, base, sys.Clock().UTC(), "unpowered clock holds")

	sim.Publish(scheduler.Bus(), signal.BusPower{Name: "dc-1", Volts: 28, Powered: true})
	scheduler.Step(1.0)
	scheduler.Step(1.0)
	assert.True(t, sys.Powered())
	assert.Equal(t, base.Add(2*time.Second), sys.Clock().UTC())
}

func TestSystemChronometerFollowsEngines(t *testing.T) {
	sys := instruments.NewSystem(instruments.NewClock(time.Now()), instruments.NewChronometer(0), "dc-1")

	scheduler := sim.NewScheduler()
	scheduler.Register(sys)

	for i := 0; i < 60; i++ {
		sim.Publish(scheduler.Bus(), signal.EngineShaft{Engine: 1, Running: true})
		scheduler.Step(60)
	}
	assert.Equal(t, 1, sys.Chronometer().Hours())
}
