package hydraulic

import "math"

// ActuatorSpec describes a double-acting hydraulic cylinder. All quantities
// are SI: meters, pascals, newtons, kilograms.
type ActuatorSpec struct {
	BoreDiameterM float64
	RodDiameterM  float64
	StrokeM       float64

	BulkModulusPa  float64
	MaxValveFlowM3 float64 // m³/s at full valve opening

	StaticFrictionN       float64
	DynamicFrictionNsPerM float64
	InternalLeakCoeff     float64 // m³/s per Pa across the piston
	ExternalLeakCoeff     float64 // m³/s per Pa out of each chamber
	EffectiveMassKg       float64 // piston plus entrained fluid

	// DeadVolumeM3 is the residual chamber volume at full stroke, keeping
	// the pressure dynamics finite at the hard stops.
	DeadVolumeM3 float64
}

// Actuator integrates the chamber-pressure dynamics of a double-acting
// cylinder: valve-commanded flow charges one chamber and vents the other,
// leakage bleeds between and out of the chambers, and the resulting pressure
// imbalance accelerates the piston against friction and the external load.
type Actuator struct {
	spec    ActuatorSpec
	capArea float64
	rodArea float64 // annulus on the rod side

	positionM float64
	velocity  float64
	accel     float64

	capPa    float64
	rodPa    float64
	capVolM3 float64
	rodVolM3 float64

	valve     float64 // -1..1, positive extends
	supplyPa  float64
	externalN float64
}

// NewActuator creates a retracted, unpressurized actuator.
func NewActuator(spec ActuatorSpec) *Actuator {
	if spec.EffectiveMassKg <= 0 {
		spec.EffectiveMassKg = 1.0
	}
	if spec.DeadVolumeM3 <= 0 {
		spec.DeadVolumeM3 = 1e-6
	}

	a := &Actuator{
		spec:    spec,
		capArea: circleArea(spec.BoreDiameterM),
		rodArea: circleArea(spec.BoreDiameterM) - circleArea(spec.RodDiameterM),
	}
	a.updateVolumes()
	return a
}

func circleArea(diameter float64) float64 {
	radius := diameter / 2.0
	return math.Pi * radius * radius
}

func (a *Actuator) updateVolumes() {
	a.capVolM3 = a.spec.DeadVolumeM3 + a.capArea*a.positionM
	a.rodVolM3 = a.spec.DeadVolumeM3 + a.rodArea*(a.spec.StrokeM-a.positionM)
}

// SetValve commands the control valve: positive extends, negative retracts,
// zero holds. Clamped to [-1, 1].
func (a *Actuator) SetValve(opening float64) {
	a.valve = math.Max(-1, math.Min(1, opening))
}

// SetSupplyPressure sets the system pressure available at the valve.
func (a *Actuator) SetSupplyPressure(pa float64) {
	a.supplyPa = max(pa, 0)
}

// SetExternalForce sets the load force on the rod; positive opposes
// extension direction conventions used by the caller.
func (a *Actuator) SetExternalForce(newtons float64) {
	a.externalN = newtons
}

// Update advances the actuator state by dt seconds.
func (a *Actuator) Update(dt float64) {
	flow := math.Abs(a.valve) * a.spec.MaxValveFlowM3

	// No supply pressure means the valve cannot charge anything.
	if a.supplyPa <= 0 {
		flow = 0
	}

	var capIn, rodIn float64
	switch {
	case a.valve > 0:
		capIn += flow
		rodIn -= flow
	case a.valve < 0:
		rodIn += flow
		capIn -= flow
	}

	internalLeak := a.spec.InternalLeakCoeff * (a.capPa - a.rodPa)
	capIn -= internalLeak
	rodIn += internalLeak

	capIn -= a.spec.ExternalLeakCoeff * a.capPa
	rodIn -= a.spec.ExternalLeakCoeff * a.rodPa

	a.capPa += a.spec.BulkModulusPa * capIn * dt / a.capVolM3
	a.rodPa += a.spec.BulkModulusPa * rodIn * dt / a.rodVolM3

	a.capPa = clampPressure(a.capPa, a.supplyPa)
	a.rodPa = clampPressure(a.rodPa, a.supplyPa)

	hydraulicN := a.capPa*a.capArea - a.rodPa*a.rodArea

	var frictionN float64
	if math.Abs(a.velocity) < 1e-6 {
		// Static friction opposes up to its breakout limit.
		frictionN = math.Max(-a.spec.StaticFrictionN,
			math.Min(a.spec.StaticFrictionN, hydraulicN+a.externalN))
	} else {
		direction := 1.0
		if a.velocity < 0 {
			direction = -1.0
		}
		frictionN = direction * a.spec.DynamicFrictionNsPerM * math.Abs(a.velocity)
	}

	netN := hydraulicN + a.externalN - frictionN

	a.accel = netN / a.spec.EffectiveMassKg
	a.velocity += a.accel * dt
	a.positionM += a.velocity*dt + 0.5*a.accel*dt*dt

	if a.positionM <= 0 {
		a.positionM = 0
		if a.velocity < 0 {
			a.velocity = 0
			a.accel = 0
		}
	}
	if a.positionM >= a.spec.StrokeM {
		a.positionM = a.spec.StrokeM
		if a.velocity > 0 {
			a.velocity = 0
			a.accel = 0
		}
	}

	a.updateVolumes()
}

func clampPressure(pa, supplyPa float64) float64 {
	if pa < 0 {
		return 0
	}
	if supplyPa > 0 && pa > supplyPa {
		return supplyPa
	}
	return pa
}

// PositionM returns the piston position from the retracted stop.
func (a *Actuator) PositionM() float64 {
	return a.positionM
}

// VelocityMS returns the piston velocity.
func (a *Actuator) VelocityMS() float64 {
	return a.velocity
}

// CapPressurePa returns the cap-end chamber pressure.
func (a *Actuator) CapPressurePa() float64 {
	return a.capPa
}

// ExtensionRatio returns the stroke fraction, 0..1.
func (a *Actuator) ExtensionRatio() float64 {
	if a.spec.StrokeM <= 0 {
		return 0
	}
	return a.positionM / a.spec.StrokeM
}
