package aircraft

import (
	"time"

	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

// EngineState is one engine's key values.
type EngineState struct {
	Engine      int
	Phase       string
	N1          float64
	N2          float64
	FuelFlowKgH float64
}

// BusState is one reported electrical bus.
type BusState struct {
	Name    string
	Volts   float64
	Powered bool
}

// HydraulicState is one hydraulic system's manifold.
type HydraulicState struct {
	System      int
	PressurePSI float64
	LowQuantity bool
}

// DuctState is one bleed duct.
type DuctState struct {
	Duct        string
	PressurePSI float64
	TempC       float64
}

// ZoneState is one conditioned zone.
type ZoneState struct {
	Zone        string
	TempC       float64
	TargetTempC float64
}

// Snapshot is a read-only summary of the whole aircraft after a step, for
// host integration and status output.
type Snapshot struct {
	Tick    uint64
	Elapsed float64

	Engines    []EngineState
	Buses      []BusState
	Hydraulics []HydraulicState
	Ducts      []DuctState
	Zones      []ZoneState

	ClockUTC      time.Time
	AirframeHours int
}

// Snapshot collects the current state of every system. Call it between
// steps; it reads the messages published during the last one.
func (a *Aircraft) Snapshot() Snapshot {
	bus := a.scheduler.Bus()

	snap := Snapshot{
		Tick:          a.scheduler.Tick(),
		Elapsed:       a.scheduler.Elapsed(),
		ClockUTC:      a.panel.Clock().UTC(),
		AirframeHours: a.panel.Chronometer().Hours(),
	}

	for _, shaft := range sim.Messages[signal.EngineShaft](bus) {
		fadec := a.engines.FADEC(shaft.Engine)
		snap.Engines = append(snap.Engines, EngineState{
			Engine:      shaft.Engine,
			Phase:       fadec.Phase().String(),
			N1:          fadec.N1(),
			N2:          fadec.N2(),
			FuelFlowKgH: fadec.FuelFlowKgH(),
		})
	}

	for _, b := range sim.Messages[signal.BusPower](bus) {
		snap.Buses = append(snap.Buses, BusState{
			Name:    b.Name,
			Volts:   b.Volts,
			Powered: b.Powered,
		})
	}

	for _, h := range sim.Messages[signal.HydraulicPressure](bus) {
		snap.Hydraulics = append(snap.Hydraulics, HydraulicState{
			System:      h.System,
			PressurePSI: h.PressurePSI,
			LowQuantity: h.LowQuantity,
		})
	}

	for _, d := range sim.Messages[signal.BleedAir](bus) {
		snap.Ducts = append(snap.Ducts, DuctState{
			Duct:        d.Duct.String(),
			PressurePSI: d.PressurePSI,
			TempC:       d.TempC,
		})
	}

	for _, z := range sim.Messages[signal.ZoneAir](bus) {
		snap.Zones = append(snap.Zones, ZoneState{
			Zone:        z.Zone,
			TempC:       z.TempC,
			TargetTempC: z.TargetTempC,
		})
	}

	return snap
}
