package electrical

// GeneratorSpec describes an AC generator's ratings.
type GeneratorSpec struct {
	Poles         float64
	RatedWatts    float64
	RatedVolts    float64
	RatedHz       float64
	Efficiency    float64 // 0..1
	InternalOhms  float64
	SpinUpSeconds float64
	Phases        int
}

// Generator is an engine-driven AC generator. While off it produces nothing;
// once turned on the rotor spins up over SpinUpSeconds, efficiency is derated
// below synchronous speed, output power is capped at the rating, and output
// voltage sags with load across the internal resistance.
type Generator struct {
	spec GeneratorSpec

	on          bool
	timeOn      float64
	driveWatts  float64 // mechanical input
	driveRPM    float64
	currentRPM  float64
	outputWatts float64
	outputVolts float64
}

// NewGenerator creates a generator from its spec, initially off.
func NewGenerator(spec GeneratorSpec) *Generator {
	if spec.Phases <= 0 {
		spec.Phases = 3
	}
	return &Generator{spec: spec}
}

// TurnOn energizes the generator field and restarts the spin-up ramp.
func (g *Generator) TurnOn() {
	g.on = true
	g.timeOn = 0
}

// TurnOff de-energizes the generator and drops all output.
func (g *Generator) TurnOff() {
	g.on = false
	g.outputVolts = 0
	g.outputWatts = 0
	g.currentRPM = 0
}

// On reports whether the generator is energized.
func (g *Generator) On() bool {
	return g.on
}

// SetMechanicalInput sets the shaft power and speed delivered by the engine
// gearbox. Ignored while the generator is off.
func (g *Generator) SetMechanicalInput(watts, rpm float64) {
	if !g.on {
		return
	}
	g.driveWatts = watts
	g.driveRPM = rpm
}

// RPM returns the current rotor speed.
func (g *Generator) RPM() float64 {
	return g.currentRPM
}

// synchronousRPM is the rotor speed that produces the rated frequency.
func (g *Generator) synchronousRPM() float64 {
	if g.spec.Poles <= 0 {
		return 0
	}
	return g.spec.RatedHz * 60.0 / g.spec.Poles
}

func (g *Generator) Update(dt float64) {
	if !g.on {
		g.outputWatts = 0
		g.outputVolts = 0
		g.currentRPM = 0
		return
	}

	g.timeOn += dt

	spinProgress := 1.0
	if g.spec.SpinUpSeconds > 0 {
		spinProgress = min(g.timeOn/g.spec.SpinUpSeconds, 1.0)
	}
	g.currentRPM = g.driveRPM * spinProgress

	efficiency := g.spec.Efficiency
	if sync := g.synchronousRPM(); sync > 0 && g.currentRPM < sync {
		efficiency *= g.currentRPM / sync
	}

	available := g.driveWatts * efficiency
	g.outputWatts = min(available, g.spec.RatedWatts)

	amps := 0.0
	if g.spec.RatedVolts > 0 {
		amps = g.outputWatts / g.spec.RatedVolts / float64(g.spec.Phases)
	}
	drop := amps * g.spec.InternalOhms
	g.outputVolts = max(g.spec.RatedVolts-drop, 0)
}

func (g *Generator) OutputVolts() float64 { return g.outputVolts }
func (g *Generator) OutputWatts() float64 { return g.outputWatts }
func (g *Generator) OutputAmps() float64  { return ampsFor(g.outputWatts, g.outputVolts) }

// Generators take no electrical input; the upstream side is the gearbox.
func (g *Generator) SetInputVolts(float64) {}
func (g *Generator) SetInputWatts(float64) {}
func (g *Generator) SetInputAmps(float64)  {}
