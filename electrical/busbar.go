package electrical

// Busbar is an ideal distribution bus: it forwards whatever voltage and
// power it receives without losses.
type Busbar struct {
	volts float64
	watts float64
}

// NewBusbar creates a bus with no supply.
func NewBusbar() *Busbar {
	return &Busbar{}
}

// Powered reports whether the bus carries a usable voltage.
func (b *Busbar) Powered() bool {
	return b.volts > 0
}

func (b *Busbar) Update(float64) {}

func (b *Busbar) OutputVolts() float64 { return b.volts }
func (b *Busbar) OutputWatts() float64 { return b.watts }
func (b *Busbar) OutputAmps() float64  { return ampsFor(b.watts, b.volts) }

func (b *Busbar) SetInputVolts(v float64) { b.volts = v }
func (b *Busbar) SetInputWatts(w float64) { b.watts = w }
func (b *Busbar) SetInputAmps(float64)    {}
