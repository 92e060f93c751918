// Package engine models the turbofan pair and their FADECs: spool dynamics,
// the start sequence, thrust-rating limits and fuel metering. The engines are
// the mechanical root of the aircraft; everything downstream (generators,
// hydraulic pumps, bleed air) runs off what this package publishes.
package engine

// SpoolSpec describes the rotor dynamics of one engine.
type SpoolSpec struct {
	IdleN1 float64 // percent
	MaxN1  float64
	IdleN2 float64
	MaxN2  float64

	// AccelSeconds and DecelSeconds are the first-order time constants for
	// spooling up and down.
	AccelSeconds float64
	DecelSeconds float64
}

// Spool integrates N1 (fan) and N2 (core) speeds toward a commanded N1 as
// first-order lags. N2 is slaved to N1 through the idle/max interpolation,
// which is adequate at simulation rates well above the lag time constants.
type Spool struct {
	spec SpoolSpec

	n1 float64
	n2 float64
}

// NewSpool creates a stopped spool.
func NewSpool(spec SpoolSpec) *Spool {
	return &Spool{spec: spec}
}

// N1 returns the fan speed in percent.
func (s *Spool) N1() float64 {
	return s.n1
}

// N2 returns the core speed in percent.
func (s *Spool) N2() float64 {
	return s.n2
}

// SetN2 forces the core speed directly; used by the starter motor before
// light-off.
func (s *Spool) SetN2(n2 float64) {
	s.n2 = max(n2, 0)
}

// Update drives N1 toward commandedN1 and slaves N2 to it.
func (s *Spool) Update(dt, commandedN1 float64) {
	tau := s.spec.AccelSeconds
	if commandedN1 < s.n1 {
		tau = s.spec.DecelSeconds
	}

	if tau > 0 {
		s.n1 += (commandedN1 - s.n1) * min(dt/tau, 1.0)
	} else {
		s.n1 = commandedN1
	}
	if s.n1 < 0 {
		s.n1 = 0
	}

	s.n2 = s.n2For(s.n1)
}

// n2For maps fan speed to core speed across the idle..max band.
func (s *Spool) n2For(n1 float64) float64 {
	if n1 <= 0 {
		return 0
	}
	span1 := s.spec.MaxN1 - s.spec.IdleN1
	span2 := s.spec.MaxN2 - s.spec.IdleN2
	if span1 <= 0 {
		return s.spec.IdleN2
	}

	if n1 < s.spec.IdleN1 {
		// Sub-idle: scale proportionally down from the idle point.
		return s.spec.IdleN2 * n1 / s.spec.IdleN1
	}
	return s.spec.IdleN2 + (n1-s.spec.IdleN1)/span1*span2
}
