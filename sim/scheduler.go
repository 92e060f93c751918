package sim

import (
	"context"
	"path"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes registered systems in registration order, once per
// step. Execution is strictly single-threaded: given the same registration
// order and the same sequence of delta times, the state trajectory is
// identical on every run and on every target.
type Scheduler struct {
	bus     *Bus
	systems []System
	stats   []*systemStatsInternal
	elapsed float64
	tick    uint64
}

// NewScheduler creates a scheduler with an empty bus.
func NewScheduler() *Scheduler {
	return &Scheduler{
		bus:     NewBus(),
		systems: make([]System, 0),
	}
}

// Bus returns the scheduler's message bus.
func (s *Scheduler) Bus() *Bus {
	return s.bus
}

// Register adds a system to the scheduler. Systems run in the order they
// were registered. The stats name is the package-qualified type, so two
// packages each exporting a System stay distinguishable.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	name := systemType.Name()
	if pkg := systemType.PkgPath(); pkg != "" {
		name = path.Base(pkg) + "." + name
	}

	s.stats = append(s.stats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Step executes all registered systems once with the given delta time, then
// rotates the bus frame buffers.
func (s *Scheduler) Step(dt float64) {
	frame := &Frame{
		DeltaTime: dt,
		Elapsed:   s.elapsed,
		Tick:      s.tick,
		Bus:       s.bus,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Update(frame)
		duration := time.Since(start)

		stats := s.stats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.bus.flush()
	s.elapsed += dt
	s.tick++
}

// Run executes steps repeatedly at the given interval until the context is
// cancelled. The delta time of each step is the measured wall-clock time
// since the previous one.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Step(dt)
		}
	}
}

// Elapsed returns the total simulated time in seconds.
func (s *Scheduler) Elapsed() float64 {
	return s.elapsed
}

// Tick returns the number of completed steps.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.stats)),
	}

	var totalExecs int64
	for i, internal := range s.stats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
