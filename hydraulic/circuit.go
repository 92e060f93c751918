package hydraulic

// PascalsPerPSI converts manifold pressures between the pump models (psi,
// the unit flown with) and the actuator physics (SI).
const PascalsPerPSI = 6894.757

type namedActuator struct {
	name     string
	actuator *Actuator
}

// Circuit is one independent hydraulic system: a reservoir, up to one
// engine-driven and one electric pump, and the actuators it powers.
type Circuit struct {
	number    int
	reservoir *Reservoir

	edp       *EnginePump
	edpEngine int

	acmp    *ElectricPump
	acmpBus string

	actuators   []namedActuator
	manifoldPSI float64
}

// NewCircuit creates a circuit with the given system number and reservoir
// capacity.
func NewCircuit(number int, reservoirLiters float64) *Circuit {
	return &Circuit{
		number:    number,
		reservoir: NewReservoir(reservoirLiters),
	}
}

// Number returns the system number (1..3).
func (c *Circuit) Number() int {
	return c.number
}

// Reservoir returns the circuit's reservoir.
func (c *Circuit) Reservoir() *Reservoir {
	return c.reservoir
}

// AttachEnginePump installs an engine-driven pump fed by the given engine
// position.
func (c *Circuit) AttachEnginePump(spec EnginePumpSpec, engine int) *EnginePump {
	c.edp = NewEnginePump(spec)
	c.edpEngine = engine
	return c.edp
}

// AttachElectricPump installs an electric pump supplied by the named
// electrical bus.
func (c *Circuit) AttachElectricPump(spec ElectricPumpSpec, busName string) *ElectricPump {
	c.acmp = NewElectricPump(spec)
	c.acmpBus = busName
	return c.acmp
}

// EnginePumpEngine returns the engine position driving the EDP, or 0.
func (c *Circuit) EnginePumpEngine() int {
	return c.edpEngine
}

// ElectricPumpBus returns the bus name supplying the ACMP, or "".
func (c *Circuit) ElectricPumpBus() string {
	return c.acmpBus
}

// EnginePump returns the installed EDP, or nil.
func (c *Circuit) EnginePump() *EnginePump {
	return c.edp
}

// ElectricPump returns the installed ACMP, or nil.
func (c *Circuit) ElectricPump() *ElectricPump {
	return c.acmp
}

// AddActuator attaches a named actuator to the circuit's manifold.
func (c *Circuit) AddActuator(name string, a *Actuator) {
	c.actuators = append(c.actuators, namedActuator{name: name, actuator: a})
}

// Actuator returns the named actuator, or nil.
func (c *Circuit) Actuator(name string) *Actuator {
	for _, na := range c.actuators {
		if na.name == name {
			return na.actuator
		}
	}
	return nil
}

// Update advances pumps, manifold pressure and actuators by dt seconds.
func (c *Circuit) Update(dt float64) {
	if c.edp != nil {
		c.edp.Update(dt)
	}
	if c.acmp != nil {
		c.acmp.Update(dt)
	}

	c.manifoldPSI = 0
	if c.edp != nil {
		c.manifoldPSI = max(c.manifoldPSI, c.edp.OutputPSI())
	}
	if c.acmp != nil {
		c.manifoldPSI = max(c.manifoldPSI, c.acmp.OutputPSI())
	}

	// A dry reservoir cannot hold system pressure.
	if c.reservoir.Volume() <= 0 {
		c.manifoldPSI = 0
	}

	supplyPa := c.manifoldPSI * PascalsPerPSI
	for _, na := range c.actuators {
		na.actuator.SetSupplyPressure(supplyPa)
		na.actuator.Update(dt)

		// External leakage is fluid lost overboard; draw it from the
		// reservoir so a leaking actuator eventually empties the system.
		leakPa := na.actuator.CapPressurePa()
		leakM3 := na.actuator.spec.ExternalLeakCoeff * leakPa * dt
		c.reservoir.Draw(leakM3 * 1000.0)
	}
}

// ManifoldPSI returns the current system pressure.
func (c *Circuit) ManifoldPSI() float64 {
	return c.manifoldPSI
}
