package sim

import "reflect"

// Bus is the inter-system mailbox. Messages are typed: the Go type of the
// message is the topic. A message published during a step is visible to
// systems that run later in the same step; after the step boundary it remains
// readable for exactly one more step and is then discarded, so the bus never
// grows without bound.
//
// The bus is owned by a single scheduler and must not be shared across
// goroutines.
type Bus struct {
	current  map[reflect.Type][]any
	previous map[reflect.Type][]any
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		current:  make(map[reflect.Type][]any),
		previous: make(map[reflect.Type][]any),
	}
}

// Publish places a message on the bus for the current frame.
func Publish[T any](b *Bus, msg T) {
	t := reflect.TypeOf(msg)
	b.current[t] = append(b.current[t], msg)
}

// Messages returns all messages of type T visible this frame. If nothing of
// type T has been published since the last step boundary, the previous
// frame's messages are returned instead, so consumers registered before their
// producer still observe a one-frame-old value rather than nothing.
func Messages[T any](b *Bus) []T {
	var zero T
	t := reflect.TypeOf(zero)

	raw := b.current[t]
	if len(raw) == 0 {
		raw = b.previous[t]
	}
	if len(raw) == 0 {
		return nil
	}

	out := make([]T, len(raw))
	for i, m := range raw {
		out[i] = m.(T)
	}
	return out
}

// Latest returns the most recently published message of type T and whether
// one was found.
func Latest[T any](b *Bus) (T, bool) {
	msgs := Messages[T](b)
	if len(msgs) == 0 {
		var zero T
		return zero, false
	}
	return msgs[len(msgs)-1], true
}

// flush rotates the frame buffers at a step boundary. Called by the
// scheduler.
func (b *Bus) flush() {
	for t := range b.previous {
		delete(b.previous, t)
	}
	b.previous, b.current = b.current, b.previous
}
