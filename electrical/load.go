package electrical

// VoltageResponse selects how a load's power draw responds to its supply
// voltage.
type VoltageResponse int

const (
	// ResponseBinary draws full nominal power at or above the minimum
	// voltage and nothing below it (relays, simple lamps).
	ResponseBinary VoltageResponse = iota
	// ResponseLinear scales draw with the ratio of supply to nominal
	// voltage (resistive heaters).
	ResponseLinear
	// ResponseRegulated draws constant nominal power across the whole valid
	// voltage range (switched-mode avionics supplies).
	ResponseRegulated
	// ResponseProportional ramps draw from zero at the minimum voltage up to
	// nominal at nominal voltage.
	ResponseProportional
)

// LoadSpec describes a DC consumer.
type LoadSpec struct {
	NominalVolts float64
	NominalWatts float64
	MinVolts     float64
	MaxVolts     float64
	Response     VoltageResponse
	PowerFactor  float64 // 0..1
}

// Load is a generic DC consumer: a display, a lamp, a fan. It draws power
// according to its voltage-response mode and reports undervoltage or
// overvoltage of its supply as a fault.
type Load struct {
	spec LoadSpec

	on         bool
	loadFactor float64 // 0..1, dimming
	inputVolts float64
	inputWatts float64
	inputAmps  float64
	fault      FaultCode
}

// NewLoad creates a load, initially switched off at full load factor.
func NewLoad(spec LoadSpec) *Load {
	spec.PowerFactor = clamp01(spec.PowerFactor)
	return &Load{spec: spec, loadFactor: 1.0}
}

// SetOn switches the load on or off.
func (l *Load) SetOn(on bool) {
	l.on = on
}

// On reports whether the load is switched on.
func (l *Load) On() bool {
	return l.on
}

// SetLoadFactor scales the draw, e.g. for dimmable lighting.
func (l *Load) SetLoadFactor(factor float64) {
	l.loadFactor = clamp01(factor)
}

// ActualWatts returns the power the load draws at its present supply
// voltage.
func (l *Load) ActualWatts() float64 {
	if !l.on || l.inputVolts < l.spec.MinVolts {
		return 0
	}

	base := l.spec.NominalWatts * l.loadFactor * l.spec.PowerFactor

	switch l.spec.Response {
	case ResponseBinary, ResponseRegulated:
		return base
	case ResponseLinear:
		if l.spec.NominalVolts <= 0 {
			return 0
		}
		return base * (l.inputVolts / l.spec.NominalVolts)
	case ResponseProportional:
		span := l.spec.NominalVolts - l.spec.MinVolts
		if span <= 0 {
			return base
		}
		factor := min((l.inputVolts-l.spec.MinVolts)/span, 1.0)
		return base * factor
	default:
		return 0
	}
}

func (l *Load) Update(float64) {
	l.fault = FaultNone
	if !l.on {
		return
	}

	if l.inputVolts > l.spec.MaxVolts {
		l.fault = FaultOvervolt
	} else if l.inputVolts < l.spec.MinVolts {
		l.fault = FaultUndervolt
	}
}

func (l *Load) faultState() (FaultCode, float64) {
	return l.fault, l.inputVolts
}

// Loads terminate a branch; they have no electrical output.
func (l *Load) OutputVolts() float64 { return 0 }
func (l *Load) OutputWatts() float64 { return 0 }
func (l *Load) OutputAmps() float64  { return 0 }

// InputAmps returns the current implied by the actual draw at the supply
// voltage.
func (l *Load) InputAmps() float64 {
	return ampsFor(l.ActualWatts(), l.inputVolts)
}

func (l *Load) SetInputVolts(v float64) { l.inputVolts = v }
func (l *Load) SetInputWatts(w float64) { l.inputWatts = w }
func (l *Load) SetInputAmps(a float64)  { l.inputAmps = a }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
