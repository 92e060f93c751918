package aircond

// Specific heat of cabin air, J/(kg·K).
const airSpecificHeat = 1005.0

// ZoneSpec describes one conditioned compartment.
type ZoneSpec struct {
	Name string

	// ThermalMassJPerK is the heat capacity of the zone's air and
	// furnishings together.
	ThermalMassJPerK float64

	// LeakWPerK is the heat conductance to ambient through the structure.
	LeakWPerK float64
}

// Zone integrates one compartment's temperature from supply airflow and
// structural leakage.
type Zone struct {
	spec ZoneSpec

	tempC       float64
	ambientC    float64
	targetTempC float64
}

// NewZone creates a zone already settled at the given temperature.
func NewZone(spec ZoneSpec, initialTempC float64) *Zone {
	return &Zone{spec: spec, tempC: initialTempC, ambientC: initialTempC, targetTempC: initialTempC}
}

// Name returns the zone name.
func (z *Zone) Name() string {
	return z.spec.Name
}

// TempC returns the current zone temperature.
func (z *Zone) TempC() float64 {
	return z.tempC
}

// SetAmbientC sets the outside temperature the structure leaks toward.
func (z *Zone) SetAmbientC(tempC float64) {
	z.ambientC = tempC
}

// SetTargetTempC records the crew's selected temperature for this zone.
func (z *Zone) SetTargetTempC(tempC float64) {
	z.targetTempC = tempC
}

// TargetTempC returns the selected temperature.
func (z *Zone) TargetTempC() float64 {
	return z.targetTempC
}

// Update advances the zone by dt seconds given the supply air mixed into it.
func (z *Zone) Update(dt, supplyTempC, supplyKgS float64) {
	if z.spec.ThermalMassJPerK <= 0 {
		return
	}

	watts := supplyKgS * airSpecificHeat * (supplyTempC - z.tempC)
	watts -= z.spec.LeakWPerK * (z.tempC - z.ambientC)
	z.tempC += watts * dt / z.spec.ThermalMassJPerK
}
