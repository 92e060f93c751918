// Package aircond models the air conditioning packs and the cabin zones they
// condition. Each pack turns regulated bleed air into conditioned airflow at
// a commanded outlet temperature; the zones integrate that airflow against
// their thermal mass and leakage to ambient.
package aircond

// PackSpec describes one air cycle machine.
type PackSpec struct {
	// MinBleedPSI is the duct pressure below which the pack cannot run.
	MinBleedPSI float64

	// FlowKgS is the conditioned airflow delivered when operating.
	FlowKgS float64

	// Outlet temperature authority and its first-order response.
	MinOutletTempC  float64
	MaxOutletTempC  float64
	ResponseSeconds float64
}

// Pack is one air conditioning pack. Its outlet chases the commanded target
// as a first-order lag while bleed air holds, and collapses when supply is
// lost.
type Pack struct {
	spec PackSpec
	side int // 1 or 2, pack position

	on          bool
	targetTempC float64

	bleedPSI   float64
	bleedTempC float64

	outletTempC float64
	operating   bool
}

// NewPack creates a switched-off pack at the given position.
func NewPack(side int, spec PackSpec) *Pack {
	return &Pack{
		spec:        spec,
		side:        side,
		targetTempC: (spec.MinOutletTempC + spec.MaxOutletTempC) / 2,
	}
}

// Side returns the pack position, 1-based.
func (p *Pack) Side() int {
	return p.side
}

// SetOn switches the pack on or off.
func (p *Pack) SetOn(on bool) {
	p.on = on
}

// SetTargetTempC commands the outlet temperature, clamped to the pack's
// authority.
func (p *Pack) SetTargetTempC(tempC float64) {
	if tempC < p.spec.MinOutletTempC {
		tempC = p.spec.MinOutletTempC
	}
	if tempC > p.spec.MaxOutletTempC {
		tempC = p.spec.MaxOutletTempC
	}
	p.targetTempC = tempC
}

// SetBleed provides the pack's supply conditions for the coming step.
func (p *Pack) SetBleed(psi, tempC float64) {
	p.bleedPSI = psi
	p.bleedTempC = tempC
}

// Operating reports whether the pack is producing conditioned air.
func (p *Pack) Operating() bool {
	return p.operating
}

// OutletTempC returns the pack discharge temperature.
func (p *Pack) OutletTempC() float64 {
	return p.outletTempC
}

// FlowKgS returns the conditioned airflow.
func (p *Pack) FlowKgS() float64 {
	if !p.operating {
		return 0
	}
	return p.spec.FlowKgS
}

// Update advances the pack by dt seconds.
func (p *Pack) Update(dt float64) {
	wasOperating := p.operating
	p.operating = p.on && p.bleedPSI >= p.spec.MinBleedPSI

	if !p.operating {
		p.outletTempC = 0
		return
	}
	if !wasOperating {
		// Pack just came online; discharge starts at supply temperature
		// and the air cycle machine pulls it to target from there.
		p.outletTempC = p.bleedTempC
	}

	if p.spec.ResponseSeconds > 0 {
		p.outletTempC += (p.targetTempC - p.outletTempC) * min(dt/p.spec.ResponseSeconds, 1.0)
	} else {
		p.outletTempC = p.targetTempC
	}
}
