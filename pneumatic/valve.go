package pneumatic

// BleedValveSpec describes a pressure-regulating shutoff valve with its
// precooler.
type BleedValveSpec struct {
	// RegulatedPSI is the downstream setpoint; upstream pressure above it
	// is throttled away.
	RegulatedPSI float64

	// PrecoolerOutTempC caps the downstream temperature. Hotter supply is
	// cooled to this; cooler supply passes through unchanged.
	PrecoolerOutTempC float64
}

// BleedValve regulates one bleed source onto a duct.
type BleedValve struct {
	spec BleedValveSpec
	open bool
}

// NewBleedValve creates a closed valve.
func NewBleedValve(spec BleedValveSpec) *BleedValve {
	return &BleedValve{spec: spec}
}

// SetOpen commands the valve open or closed.
func (v *BleedValve) SetOpen(open bool) {
	v.open = open
}

// Open reports the commanded valve position.
func (v *BleedValve) Open() bool {
	return v.open
}

// OutputPSI regulates the upstream pressure onto the duct.
func (v *BleedValve) OutputPSI(upstreamPSI float64) float64 {
	if !v.open || upstreamPSI <= 0 {
		return 0
	}
	return min(upstreamPSI, v.spec.RegulatedPSI)
}

// OutputTempC applies the precooler to the upstream temperature.
func (v *BleedValve) OutputTempC(upstreamTempC float64) float64 {
	if !v.open {
		return 0
	}
	return min(upstreamTempC, v.spec.PrecoolerOutTempC)
}

// CrossbleedValve joins the two ducts. Open, the pressurized side feeds the
// dead one; the model takes the stronger side rather than computing a flow
// split, which is close enough at duct volumes.
type CrossbleedValve struct {
	open bool
}

// SetOpen commands the crossbleed open or closed.
func (v *CrossbleedValve) SetOpen(open bool) {
	v.open = open
}

// Open reports the commanded valve position.
func (v *CrossbleedValve) Open() bool {
	return v.open
}
