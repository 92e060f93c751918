package hydraulic

// EnginePumpSpec describes an engine-driven pump (EDP).
type EnginePumpSpec struct {
	RatedPSI           float64 // compensator setting
	RatedRPM           float64 // gearbox speed for full delivery
	DisplacementLiters float64 // liters per revolution
}

// EnginePump is a variable-displacement pump driven by the engine accessory
// gearbox. Delivery pressure builds with shaft speed and is capped at the
// compensator setting.
type EnginePump struct {
	spec EnginePumpSpec

	shaftRPM      float64
	depressurized bool
	outputPSI     float64
}

// NewEnginePump creates an engine-driven pump.
func NewEnginePump(spec EnginePumpSpec) *EnginePump {
	return &EnginePump{spec: spec}
}

// SetShaftRPM sets the gearbox speed driving the pump.
func (p *EnginePump) SetShaftRPM(rpm float64) {
	p.shaftRPM = max(rpm, 0)
}

// SetDepressurized bypasses the pump (the EDP shutoff on the overhead
// panel).
func (p *EnginePump) SetDepressurized(depressurized bool) {
	p.depressurized = depressurized
}

// Update recomputes delivery pressure for the step.
func (p *EnginePump) Update(dt float64) {
	if p.depressurized || p.spec.RatedRPM <= 0 {
		p.outputPSI = 0
		return
	}

	speedFraction := min(p.shaftRPM/p.spec.RatedRPM, 1.0)
	p.outputPSI = p.spec.RatedPSI * speedFraction
}

// OutputPSI returns the delivery pressure.
func (p *EnginePump) OutputPSI() float64 {
	return p.outputPSI
}

// FlowLitersPerSecond returns the volume the pump can move at its current
// speed.
func (p *EnginePump) FlowLitersPerSecond() float64 {
	if p.depressurized {
		return 0
	}
	return p.spec.DisplacementLiters * p.shaftRPM / 60.0
}

// ElectricPumpSpec describes an AC motor pump (ACMP).
type ElectricPumpSpec struct {
	RatedPSI      float64
	SpinUpSeconds float64
}

// ElectricPump is an AC motor-driven pump. It needs a powered electrical bus
// and ramps its delivery pressure over the motor spin-up time.
type ElectricPump struct {
	spec ElectricPumpSpec

	commanded bool
	powered   bool
	runTime   float64
	outputPSI float64
}

// NewElectricPump creates an electric pump, commanded off.
func NewElectricPump(spec ElectricPumpSpec) *ElectricPump {
	return &ElectricPump{spec: spec}
}

// SetCommanded switches the pump on or off.
func (p *ElectricPump) SetCommanded(on bool) {
	p.commanded = on
}

// SetPowered tells the pump whether its supply bus is energized.
func (p *ElectricPump) SetPowered(powered bool) {
	p.powered = powered
}

// Running reports whether the motor is turning.
func (p *ElectricPump) Running() bool {
	return p.commanded && p.powered
}

// Update advances the motor spin-up and recomputes delivery pressure.
func (p *ElectricPump) Update(dt float64) {
	if !p.Running() {
		p.runTime = 0
		p.outputPSI = 0
		return
	}

	p.runTime += dt

	rampFraction := 1.0
	if p.spec.SpinUpSeconds > 0 {
		rampFraction = min(p.runTime/p.spec.SpinUpSeconds, 1.0)
	}
	p.outputPSI = p.spec.RatedPSI * rampFraction
}

// OutputPSI returns the delivery pressure.
func (p *ElectricPump) OutputPSI() float64 {
	return p.outputPSI
}
