package engine

// Rating selects the FADEC thrust rating, which caps the N1 the thrust
// lever can command.
type Rating int

const (
	RatingTOGA Rating = iota
	RatingCLB
	RatingCRZ
)

// String returns the flight-deck label for the rating.
func (r Rating) String() string {
	switch r {
	case RatingCLB:
		return "CLB"
	case RatingCRZ:
		return "CRZ"
	default:
		return "TO/GA"
	}
}

// Phase is the FADEC's view of the engine state machine.
type Phase int

const (
	PhaseOff Phase = iota
	PhaseCranking
	PhaseLightoff
	PhaseRunning
	PhaseSpoolingDown
)

// String returns a short phase label.
func (p Phase) String() string {
	switch p {
	case PhaseCranking:
		return "cranking"
	case PhaseLightoff:
		return "lightoff"
	case PhaseRunning:
		return "running"
	case PhaseSpoolingDown:
		return "spooling down"
	default:
		return "off"
	}
}

// FADECSpec describes one engine's control parameters.
type FADECSpec struct {
	Spool SpoolSpec

	// Rating limits as N1 percent.
	TOGALimitN1 float64
	CLBLimitN1  float64
	CRZLimitN1  float64

	// OverspeedN1 is the hard redline; the FADEC clamps commands below it.
	OverspeedN1 float64

	// Start sequence parameters, in N2 percent.
	StarterRateN2    float64 // starter cranking acceleration, %/s
	FuelIntroN2      float64 // minimum N2 before fuel introduction
	StarterCutoffN2  float64 // N2 at which the starter drops out
	MinStartBleedPSI float64 // duct pressure required to motor the starter

	// Fuel flow model: kg/h at idle and at max N1.
	IdleFuelKgH float64
	MaxFuelKgH  float64

	// Shaft output at the accessory gearbox.
	MaxShaftPowerWatts float64
	GearboxRPMAtMaxN2  float64
}

// FADEC is the full-authority controller for one engine. The crew interface
// is the thrust lever, the start switch and the fuel (start/stop) selector;
// everything else is automatic.
type FADEC struct {
	spec   FADECSpec
	engine int

	spool  *Spool
	phase  Phase
	rating Rating

	thrustLever  float64 // 0..1
	fuelOn       bool
	startPressed bool

	fuelFlowKgH float64
}

// NewFADEC creates a controller for the engine at the given position,
// shut down with the fuel selector off.
func NewFADEC(engine int, spec FADECSpec) *FADEC {
	return &FADEC{
		spec:   spec,
		engine: engine,
		spool:  NewSpool(spec.Spool),
	}
}

// Engine returns the engine position, 1-based.
func (f *FADEC) Engine() int {
	return f.engine
}

// Phase returns the current state-machine phase.
func (f *FADEC) Phase() Phase {
	return f.phase
}

// Running reports whether the engine is self-sustaining.
func (f *FADEC) Running() bool {
	return f.phase == PhaseRunning
}

// N1 returns the fan speed in percent.
func (f *FADEC) N1() float64 {
	return f.spool.N1()
}

// N2 returns the core speed in percent.
func (f *FADEC) N2() float64 {
	return f.spool.N2()
}

// FuelFlowKgH returns the current fuel flow.
func (f *FADEC) FuelFlowKgH() float64 {
	return f.fuelFlowKgH
}

// SetThrustLever sets the lever position, clamped to 0..1.
func (f *FADEC) SetThrustLever(pos float64) {
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	f.thrustLever = pos
}

// SetRating selects the active thrust rating.
func (f *FADEC) SetRating(r Rating) {
	f.rating = r
}

// Rating returns the active thrust rating.
func (f *FADEC) Rating() Rating {
	return f.rating
}

// SetFuel opens or closes the fuel selector. Closing it shuts the engine
// down from any phase.
func (f *FADEC) SetFuel(on bool) {
	f.fuelOn = on
}

// PressStart arms the start sequence; the FADEC holds the starter in until
// cutoff on its own.
func (f *FADEC) PressStart() {
	f.startPressed = true
}

func (f *FADEC) ratingLimitN1() float64 {
	switch f.rating {
	case RatingCLB:
		return f.spec.CLBLimitN1
	case RatingCRZ:
		return f.spec.CRZLimitN1
	default:
		return f.spec.TOGALimitN1
	}
}

// commandedN1 maps the thrust lever across the idle..rating-limit band with
// overspeed protection.
func (f *FADEC) commandedN1() float64 {
	limit := f.ratingLimitN1()
	cmd := f.spec.Spool.IdleN1 + f.thrustLever*(limit-f.spec.Spool.IdleN1)
	if f.spec.OverspeedN1 > 0 && cmd > f.spec.OverspeedN1 {
		cmd = f.spec.OverspeedN1
	}
	return cmd
}

// Update advances the engine by dt seconds. bleedPSI is the duct pressure
// available to the starter.
func (f *FADEC) Update(dt, bleedPSI float64) {
	if !f.fuelOn && f.phase != PhaseOff && f.phase != PhaseCranking {
		f.phase = PhaseSpoolingDown
	}

	switch f.phase {
	case PhaseOff:
		f.fuelFlowKgH = 0
		if f.startPressed && bleedPSI >= f.spec.MinStartBleedPSI {
			f.phase = PhaseCranking
		}

	case PhaseCranking:
		// Starter motors the core; no fuel yet.
		f.fuelFlowKgH = 0
		if bleedPSI < f.spec.MinStartBleedPSI {
			// Lost starter air: abort and spool back down.
			f.startPressed = false
			f.phase = PhaseOff
			f.spool.SetN2(0)
			return
		}

		// The starter alone cannot drive the core past cutoff speed; with
		// the fuel selector off the engine holds there, dry motoring.
		n2 := f.spool.N2() + f.spec.StarterRateN2*dt
		if n2 > f.spec.StarterCutoffN2 {
			n2 = f.spec.StarterCutoffN2
		}
		f.spool.SetN2(n2)
		if f.spool.N2() >= f.spec.FuelIntroN2 && f.fuelOn {
			f.phase = PhaseLightoff
		}

	case PhaseLightoff:
		// Fuel and ignition on; starter assists until cutoff.
		starterN2 := f.spool.N2()
		f.spool.Update(dt, f.spec.Spool.IdleN1)
		if starterN2 < f.spec.StarterCutoffN2 {
			starterN2 += f.spec.StarterRateN2 * dt
			if f.spool.N2() < starterN2 {
				f.spool.SetN2(starterN2)
			}
		} else {
			f.startPressed = false
		}

		f.fuelFlowKgH = f.spec.IdleFuelKgH
		if f.spool.N1() >= f.spec.Spool.IdleN1*0.99 {
			f.phase = PhaseRunning
		}

	case PhaseRunning:
		f.spool.Update(dt, f.commandedN1())
		f.fuelFlowKgH = f.fuelFlowFor(f.spool.N1())

	case PhaseSpoolingDown:
		f.spool.Update(dt, 0)
		f.fuelFlowKgH = 0
		if f.spool.N1() < 1.0 {
			f.phase = PhaseOff
			f.spool.SetN2(0)
		}
	}
}

// fuelFlowFor interpolates fuel flow between idle and max along N1.
func (f *FADEC) fuelFlowFor(n1 float64) float64 {
	span := f.spec.Spool.MaxN1 - f.spec.Spool.IdleN1
	if span <= 0 {
		return f.spec.IdleFuelKgH
	}
	frac := (n1 - f.spec.Spool.IdleN1) / span
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return f.spec.IdleFuelKgH + frac*(f.spec.MaxFuelKgH-f.spec.IdleFuelKgH)
}

// ShaftRPM returns the accessory gearbox speed.
func (f *FADEC) ShaftRPM() float64 {
	if f.spec.Spool.MaxN2 <= 0 {
		return 0
	}
	return f.spec.GearboxRPMAtMaxN2 * f.spool.N2() / f.spec.Spool.MaxN2
}

// ShaftPowerWatts returns the shaft power available to accessories, scaling
// with the cube of core speed.
func (f *FADEC) ShaftPowerWatts() float64 {
	if !f.Running() || f.spec.Spool.MaxN2 <= 0 {
		return 0
	}
	frac := f.spool.N2() / f.spec.Spool.MaxN2
	return f.spec.MaxShaftPowerWatts * frac * frac * frac
}
