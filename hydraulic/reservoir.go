// Package hydraulic models the aircraft hydraulic power systems: reservoirs,
// engine-driven and electric pumps, and double-acting actuators. The E-Jet
// carries three independent systems; systems 1 and 2 are pressurized by
// engine-driven pumps, system 3 by electric pumps.
package hydraulic

// lowQuantityFraction is the reservoir fill fraction below which the low
// quantity warning is raised.
const lowQuantityFraction = 0.2

// Reservoir holds the system's hydraulic fluid.
type Reservoir struct {
	capacityLiters float64
	volumeLiters   float64
}

// NewReservoir creates a full reservoir.
func NewReservoir(capacityLiters float64) *Reservoir {
	return &Reservoir{
		capacityLiters: capacityLiters,
		volumeLiters:   capacityLiters,
	}
}

// Draw removes up to liters of fluid and returns the amount actually drawn.
func (r *Reservoir) Draw(liters float64) float64 {
	if liters < 0 {
		return 0
	}
	drawn := min(liters, r.volumeLiters)
	r.volumeLiters -= drawn
	return drawn
}

// Return puts fluid back, capped at capacity.
func (r *Reservoir) Return(liters float64) {
	if liters < 0 {
		return
	}
	r.volumeLiters = min(r.volumeLiters+liters, r.capacityLiters)
}

// Volume returns the current fluid volume in liters.
func (r *Reservoir) Volume() float64 {
	return r.volumeLiters
}

// Fraction returns the fill fraction, 0..1.
func (r *Reservoir) Fraction() float64 {
	if r.capacityLiters <= 0 {
		return 0
	}
	return r.volumeLiters / r.capacityLiters
}

// LowQuantity reports whether the quantity warning threshold is crossed.
func (r *Reservoir) LowQuantity() bool {
	return r.Fraction() < lowQuantityFraction
}
