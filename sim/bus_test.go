package sim_test

import (
	"testing"

	"github.com/ouroboros-sim/ejet/sim"
)

type shaftMsg struct {
	Engine int
	RPM    float64
}

type pressureMsg struct {
	PSI float64
}

type producer struct{}

func (p *producer) Update(frame *sim.Frame) {
	sim.Publish(frame.Bus, shaftMsg{Engine: 1, RPM: 6000})
}

type consumer struct {
	Seen []shaftMsg
}

func (c *consumer) Update(frame *sim.Frame) {
	c.Seen = sim.Messages[shaftMsg](frame.Bus)
}

func TestBus(t *testing.T) {
	t.Run("same frame visibility for later systems", func(t *testing.T) {
		scheduler := sim.NewScheduler()
		sink := &consumer{}
		scheduler.Register(&producer{})
		scheduler.Register(sink)

		scheduler.Step(0.016)

		if len(sink.Seen) != 1 {
			t.Fatalf("expected 1 message, got %d", len(sink.Seen))
		}
		if sink.Seen[0].RPM != 6000 {
			t.Errorf("expected rpm 6000, got %f", sink.Seen[0].RPM)
		}
	})

	t.Run("previous frame fallback for earlier systems", func(t *testing.T) {
		scheduler := sim.NewScheduler()
		sink := &consumer{}
		// Consumer registered before producer sees the previous frame's value.
		scheduler.Register(sink)
		scheduler.Register(&producer{})

		scheduler.Step(0.016)
		if len(sink.Seen) != 0 {
			t.Fatalf("expected no messages on first step, got %d", len(sink.Seen))
		}

		scheduler.Step(0.016)
		if len(sink.Seen) != 1 {
			t.Fatalf("expected 1 message on second step, got %d", len(sink.Seen))
		}
	})

	t.Run("stale messages are discarded two steps later", func(t *testing.T) {
		scheduler := sim.NewScheduler()
		sink := &consumer{}
		scheduler.Register(sink)

		sim.Publish(scheduler.Bus(), shaftMsg{Engine: 2, RPM: 100})

		scheduler.Step(0.016)
		if len(sink.Seen) != 1 {
			t.Fatalf("expected message visible on first step, got %d", len(sink.Seen))
		}

		scheduler.Step(0.016)
		if len(sink.Seen) != 1 {
			t.Fatalf("expected one-frame retention on second step, got %d", len(sink.Seen))
		}

		scheduler.Step(0.016)
		if len(sink.Seen) != 0 {
			t.Errorf("expected message discarded on third step, got %d", len(sink.Seen))
		}
	})

	t.Run("latest returns most recent message", func(t *testing.T) {
		bus := sim.NewBus()

		if _, ok := sim.Latest[shaftMsg](bus); ok {
			t.Fatal("expected no message on empty bus")
		}

		sim.Publish(bus, shaftMsg{Engine: 1, RPM: 1000})
		sim.Publish(bus, shaftMsg{Engine: 1, RPM: 2000})

		msg, ok := sim.Latest[shaftMsg](bus)
		if !ok {
			t.Fatal("expected a message")
		}
		if msg.RPM != 2000 {
			t.Errorf("expected rpm 2000, got %f", msg.RPM)
		}
	})

	t.Run("topics are independent", func(t *testing.T) {
		bus := sim.NewBus()
		sim.Publish(bus, shaftMsg{Engine: 1, RPM: 6000})
		sim.Publish(bus, pressureMsg{PSI: 2900})

		if len(sim.Messages[shaftMsg](bus)) != 1 {
			t.Error("expected 1 shaft message")
		}
		if len(sim.Messages[pressureMsg](bus)) != 1 {
			t.Error("expected 1 pressure message")
		}
	})
}
