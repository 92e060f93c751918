package electrical

// BatterySpec describes a DC battery.
type BatterySpec struct {
	NominalVolts float64
	CapacityAh   float64
	InternalOhms float64
	ChargeAmps   float64 // maximum charge current
}

// Battery is a DC source. Terminal voltage sags with depth of discharge and
// with the current being drawn; the network feeds the drawn current back
// after each update so charge accounting stays consistent with the edge
// currents.
type Battery struct {
	spec BatterySpec

	connected  bool
	chargeAh   float64
	drawAmps   float64
	inputVolts float64
}

// NewBattery creates a fully charged, connected battery.
func NewBattery(spec BatterySpec) *Battery {
	return &Battery{
		spec:      spec,
		connected: true,
		chargeAh:  spec.CapacityAh,
	}
}

// SetConnected opens or closes the battery contactor.
func (b *Battery) SetConnected(connected bool) {
	b.connected = connected
}

// StateOfCharge returns the remaining charge fraction, 0..1.
func (b *Battery) StateOfCharge() float64 {
	if b.spec.CapacityAh <= 0 {
		return 0
	}
	return b.chargeAh / b.spec.CapacityAh
}

// openCircuitVolts models the no-load terminal voltage over the discharge
// curve: full nominal at 100% charge sagging to 85% of nominal when empty.
func (b *Battery) openCircuitVolts() float64 {
	return b.spec.NominalVolts * (0.85 + 0.15*b.StateOfCharge())
}

func (b *Battery) Update(dt float64) {
	if !b.connected {
		return
	}

	hours := dt / 3600.0

	// Recharge when the network offers more than the open-circuit voltage,
	// discharge by whatever current left the battery last step.
	if b.inputVolts > b.openCircuitVolts() {
		b.chargeAh = min(b.chargeAh+b.spec.ChargeAmps*hours, b.spec.CapacityAh)
	} else if b.drawAmps > 0 {
		b.chargeAh = max(b.chargeAh-b.drawAmps*hours, 0)
	}
}

func (b *Battery) setDrawAmps(a float64) {
	b.drawAmps = a
}

func (b *Battery) OutputVolts() float64 {
	if !b.connected || b.chargeAh <= 0 {
		return 0
	}
	return max(b.openCircuitVolts()-b.drawAmps*b.spec.InternalOhms, 0)
}

func (b *Battery) OutputWatts() float64 {
	return b.OutputVolts() * b.drawAmps
}

func (b *Battery) OutputAmps() float64 {
	return b.drawAmps
}

func (b *Battery) SetInputVolts(v float64) { b.inputVolts = v }
func (b *Battery) SetInputWatts(float64)   {}
func (b *Battery) SetInputAmps(float64)    {}
