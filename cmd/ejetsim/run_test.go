package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroundStartBringsAircraftAlive(t *testing.T) {
	ac, err := loadAircraft("../../config/testdata/e190.yaml")
	require.NoError(t, err)

	groundStart(ac)

	running := func() bool {
		return ac.Engines().FADEC(1).Running() && ac.Engines().FADEC(2).Running()
	}
	for i := 0; i < 5000 && !running(); i++ {
		ac.Step(0.05)
	}
	require.True(t, running(), "both engines should self-sustain")

	// Let the generators and pumps settle.
	for i := 0; i < 200; i++ {
		ac.Step(0.05)
	}

	snap := ac.Snapshot()
	powered := map[string]bool{}
	for _, b := range snap.Buses {
		powered[b.Name] = b.Powered
	}
	assert.True(t, powered["ac-1"])
	assert.True(t, powered["ac-2"])
}
