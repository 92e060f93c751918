package electrical

// TRUSpec describes a transformer-rectifier unit.
type TRUSpec struct {
	OutputVolts  float64 // regulated DC output
	DropoutVolts float64 // minimum AC input to stay online
	Efficiency   float64 // 0..1
}

// TRU converts AC bus power to regulated DC. Output collapses entirely when
// the AC input drops below the dropout voltage.
type TRU struct {
	spec TRUSpec

	inputVolts  float64
	inputWatts  float64
	outputVolts float64
	outputWatts float64
}

// NewTRU creates a transformer-rectifier unit.
func NewTRU(spec TRUSpec) *TRU {
	return &TRU{spec: spec}
}

// Online reports whether the unit is producing DC output.
func (t *TRU) Online() bool {
	return t.outputVolts > 0
}

func (t *TRU) Update(float64) {
	if t.inputVolts < t.spec.DropoutVolts {
		t.outputVolts = 0
		t.outputWatts = 0
		return
	}

	t.outputVolts = t.spec.OutputVolts
	t.outputWatts = t.inputWatts * t.spec.Efficiency
}

func (t *TRU) OutputVolts() float64 { return t.outputVolts }
func (t *TRU) OutputWatts() float64 { return t.outputWatts }
func (t *TRU) OutputAmps() float64  { return ampsFor(t.outputWatts, t.outputVolts) }

func (t *TRU) SetInputVolts(v float64) { t.inputVolts = v }
func (t *TRU) SetInputWatts(w float64) { t.inputWatts = w }
func (t *TRU) SetInputAmps(float64)    {}
