// Package pneumatic models the bleed air system: engine bleed ports, the APU
// as a ground/backup source, pressure-regulating valves and the left/right
// duct pair joined by a crossbleed valve. Duct pressure feeds the engine
// starters and the air conditioning packs.
package pneumatic

// EngineBleedSpec describes one engine's bleed extraction.
type EngineBleedSpec struct {
	// LPMaxPSI is the low-pressure port output at max N2. The LP port
	// supplies the system whenever it can; the HP port takes over below
	// HPSwitchN2 where LP pressure is too weak.
	LPMaxPSI   float64
	HPMaxPSI   float64
	HPSwitchN2 float64

	// Compressor discharge temperature at max N2, before the precooler.
	MaxTempC float64
}

// EngineBleed taps compressed air off one engine. Port selection between the
// HP and LP stages is automatic, driven by core speed.
type EngineBleed struct {
	spec   EngineBleedSpec
	engine int

	n2      float64
	running bool
}

// NewEngineBleed creates the bleed extraction for the engine at the given
// position.
func NewEngineBleed(engine int, spec EngineBleedSpec) *EngineBleed {
	return &EngineBleed{spec: spec, engine: engine}
}

// Engine returns the engine position, 1-based.
func (b *EngineBleed) Engine() int {
	return b.engine
}

// SetShaft updates the bleed source from the engine state.
func (b *EngineBleed) SetShaft(running bool, n2Percent float64) {
	b.running = running
	b.n2 = max(n2Percent, 0)
}

// HPPortActive reports whether the high-pressure port is supplying.
func (b *EngineBleed) HPPortActive() bool {
	return b.running && b.n2 < b.spec.HPSwitchN2
}

// PressurePSI returns the port output pressure. Both ports scale with core
// speed; the HP port sits higher in the compressor so its output at a given
// N2 is stronger.
func (b *EngineBleed) PressurePSI() float64 {
	if !b.running {
		return 0
	}
	frac := min(b.n2/100, 1.0)
	if b.HPPortActive() {
		return b.spec.HPMaxPSI * frac
	}
	return b.spec.LPMaxPSI * frac
}

// TempC returns the bleed temperature upstream of the precooler.
func (b *EngineBleed) TempC() float64 {
	if !b.running {
		return 0
	}
	return b.spec.MaxTempC * min(b.n2/100, 1.0)
}

// APUSpec describes the auxiliary power unit's bleed output.
type APUSpec struct {
	SpinUpSeconds float64
	BleedPSI      float64
	BleedTempC    float64
}

// APU is the auxiliary power unit, reduced to its bleed role: a constant
// pressure source once spun up. Its generator is modeled on the electrical
// side.
type APU struct {
	spec APUSpec

	commanded bool
	bleedOn   bool
	runTime   float64
}

// NewAPU creates a shut-down APU.
func NewAPU(spec APUSpec) *APU {
	return &APU{spec: spec}
}

// Start commands the APU to spin up.
func (a *APU) Start() {
	a.commanded = true
}

// Stop shuts the APU down.
func (a *APU) Stop() {
	a.commanded = false
}

// SetBleed opens or closes the APU bleed valve.
func (a *APU) SetBleed(on bool) {
	a.bleedOn = on
}

// Available reports whether the APU has reached governed speed.
func (a *APU) Available() bool {
	return a.commanded && a.runTime >= a.spec.SpinUpSeconds
}

// Update advances the spin-up timer.
func (a *APU) Update(dt float64) {
	if !a.commanded {
		a.runTime = 0
		return
	}
	a.runTime += dt
}

// PressurePSI returns the APU bleed output.
func (a *APU) PressurePSI() float64 {
	if !a.Available() || !a.bleedOn {
		return 0
	}
	return a.spec.BleedPSI
}

// TempC returns the APU bleed temperature.
func (a *APU) TempC() float64 {
	return a.spec.BleedTempC
}
