package electrical

// TripCurve selects how a breaker translates sustained overcurrent into a
// trip decision.
type TripCurve int

const (
	// TripInstant trips on the first update that sees overcurrent.
	TripInstant TripCurve = iota
	// TripShortDelay trips after overcurrent has persisted for DelaySeconds.
	TripShortDelay
	// TripLongDelay behaves like TripShortDelay with a longer wiring-
	// protection delay; the distinction is kept for configuration clarity.
	TripLongDelay
	// TripInverseTime trips faster the larger the overload: the allowed time
	// is 0.1 / ratio² seconds where ratio is current over rating.
	TripInverseTime
)

// BreakerSpec describes a circuit breaker.
type BreakerSpec struct {
	RatingAmps   float64
	Curve        TripCurve
	DelaySeconds float64 // used by the delay curves
	AutoReset    bool
	ResetDelay   float64 // seconds tripped before an auto reset
}

// Breaker protects a downstream branch. While tripped it outputs nothing.
type Breaker struct {
	spec BreakerSpec

	tripped         bool
	overcurrentTime float64
	trippedTime     float64

	inputVolts float64
	inputWatts float64
	inputAmps  float64
}

// NewBreaker creates a closed breaker.
func NewBreaker(spec BreakerSpec) *Breaker {
	return &Breaker{spec: spec}
}

// Tripped reports whether the breaker is open.
func (b *Breaker) Tripped() bool {
	return b.tripped
}

// Reset closes a tripped breaker and clears its overcurrent history.
func (b *Breaker) Reset() {
	b.tripped = false
	b.trippedTime = 0
	b.overcurrentTime = 0
}

func (b *Breaker) shouldTrip() bool {
	if b.inputAmps <= b.spec.RatingAmps {
		return false
	}

	switch b.spec.Curve {
	case TripInstant:
		return true
	case TripShortDelay, TripLongDelay:
		return b.overcurrentTime >= b.spec.DelaySeconds
	case TripInverseTime:
		ratio := b.inputAmps / b.spec.RatingAmps
		return b.overcurrentTime >= 0.1/(ratio*ratio)
	default:
		return false
	}
}

func (b *Breaker) Update(dt float64) {
	if b.tripped {
		if b.spec.AutoReset {
			b.trippedTime += dt
			if b.trippedTime >= b.spec.ResetDelay {
				b.Reset()
			}
		}
		return
	}

	if b.inputAmps > b.spec.RatingAmps {
		b.overcurrentTime += dt
	} else {
		b.overcurrentTime = 0
	}

	if b.shouldTrip() {
		b.tripped = true
		b.trippedTime = 0
	}
}

func (b *Breaker) faultState() (FaultCode, float64) {
	if b.tripped {
		return FaultTripped, b.inputVolts
	}
	return FaultNone, 0
}

func (b *Breaker) OutputVolts() float64 {
	if b.tripped {
		return 0
	}
	return b.inputVolts
}

func (b *Breaker) OutputWatts() float64 {
	if b.tripped {
		return 0
	}
	return b.inputWatts
}

func (b *Breaker) OutputAmps() float64 {
	if b.tripped {
		return 0
	}
	return b.inputAmps
}

func (b *Breaker) SetInputVolts(v float64) { b.inputVolts = v }
func (b *Breaker) SetInputWatts(w float64) { b.inputWatts = w }
func (b *Breaker) SetInputAmps(a float64)  { b.inputAmps = a }
