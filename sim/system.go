package sim

// System represents one aircraft system simulated once per update tick.
// Implementations keep their own state between frames and communicate with
// other systems through the frame's Bus.
type System interface {
	Update(frame *Frame)
}

// Frame carries the per-tick context handed to every system.
type Frame struct {
	// DeltaTime is the simulation step in seconds.
	DeltaTime float64
	// Elapsed is the total simulated time in seconds at the start of the step.
	Elapsed float64
	// Tick is the number of completed steps.
	Tick uint64
	// Bus is the inter-system message bus.
	Bus *Bus
}
