// Package electrical models the aircraft power distribution network as a
// directed graph of components. Sources (generators, batteries) sit upstream;
// buses, breakers and converters sit in the middle; loads sit at the leaves.
// The network is updated once per simulation step in topological order.
package electrical

// Component is a node in the electrical network. All quantities are SI:
// volts, watts, amperes; dt is in seconds.
type Component interface {
	Update(dt float64)

	OutputVolts() float64
	OutputWatts() float64
	OutputAmps() float64

	SetInputVolts(v float64)
	SetInputWatts(w float64)
	SetInputAmps(a float64)
}

// FaultCode classifies a component fault condition.
type FaultCode int

const (
	FaultNone FaultCode = iota
	FaultUndervolt
	FaultOvervolt
	FaultTripped
)

// String returns a short fault label.
func (c FaultCode) String() string {
	switch c {
	case FaultUndervolt:
		return "undervolt"
	case FaultOvervolt:
		return "overvolt"
	case FaultTripped:
		return "tripped"
	default:
		return "none"
	}
}

// Fault reports a component fault detected during a network update. Volts is
// the supply voltage the component observed when the fault was raised.
type Fault struct {
	Component string
	Code      FaultCode
	Volts     float64
}

// faultReporter is implemented by components that can report a fault
// condition after an update.
type faultReporter interface {
	faultState() (FaultCode, float64)
}

// ampsFor derives current from power and voltage, guarding against a dead
// node.
func ampsFor(watts, volts float64) float64 {
	if volts > 0 {
		return watts / volts
	}
	return 0
}
