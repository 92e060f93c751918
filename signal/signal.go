// Package signal defines the message types exchanged between aircraft
// systems over the simulation bus. Each type is one bus topic.
package signal

// Side identifies the left or right half of a split duct or channel.
type Side int

const (
	Left Side = iota
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// EngineShaft reports the mechanical output of one engine. Published by the
// engine system every step, consumed by the electrical generators and the
// engine-driven hydraulic pumps.
type EngineShaft struct {
	Engine     int // 1-based position
	Running    bool
	N2Percent  float64
	RPM        float64 // accessory gearbox speed
	PowerWatts float64 // available shaft power
}

// BleedAir reports the state of one pneumatic duct. Published by the
// pneumatic system, consumed by the packs and by engine start logic.
type BleedAir struct {
	Duct        Side
	PressurePSI float64
	TempC       float64
}

// BusPower reports the state of a named electrical bus. Published by the
// electrical system, consumed by electric hydraulic pumps and other powered
// equipment.
type BusPower struct {
	Name    string
	Volts   float64
	Powered bool
}

// HydraulicPressure reports one hydraulic system's manifold pressure.
type HydraulicPressure struct {
	System      int
	PressurePSI float64
	LowQuantity bool
}

// ZoneAir reports the temperature of one conditioned cabin zone. Published
// by the air conditioning system.
type ZoneAir struct {
	Zone        string
	TempC       float64
	TargetTempC float64
}
