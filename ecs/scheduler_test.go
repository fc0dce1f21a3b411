package ecs_test

import (
	"testing"
	"time"

	"github.com/plus3/ballpit/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities     ecs.Query[struct{ *Health }]
	ExecuteCount int
	TotalHealth  float64
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for item := range s.Entities.Values() {
		s.TotalHealth += float64(item.Health.Current)
	}
}

type orderRecorder struct {
	name string
	log  *[]string
}

func (s *orderRecorder) Execute(frame *ecs.UpdateFrame) {
	*s.log = append(*s.log, s.name)
}

type namedLookupSystem struct {
	Names   ecs.View[struct{ *Name }]
	Counter ecs.Singleton[Score]
	target  ecs.EntityId
	found   string
}

func (s *namedLookupSystem) Execute(frame *ecs.UpdateFrame) {
	*s.Counter.Get()++
	if item := s.Names.Get(s.target); item != nil {
		s.found = item.Name.Value
	}
}

type spawnOnStartup struct {
	Existing ecs.Query[struct{ *Name }]
	before   int
}

func (s *spawnOnStartup) Execute(frame *ecs.UpdateFrame) {
	s.before = s.Existing.Count()
	frame.Commands.Spawn(Position{X: 100}, Velocity{DX: 10})
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("system execution order and query initialization", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		health := &HealthSystem{}

		scheduler.Register(movement)
		scheduler.Register(health)

		id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})
		storage.Spawn(Health{Current: 100, Max: 100})

		scheduler.Once(1.0)
		scheduler.Once(0.5)

		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, 2, health.ExecuteCount)
		assert.Equal(t, 100.0, health.TotalHealth)

		pos := ecs.ReadComponent[Position](storage, id)
		assert.InDelta(t, 1.5, pos.X, 1e-6)
		assert.InDelta(t, 3.0, pos.Y, 1e-6)
	})

	t.Run("queries see entities spawned between frames", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		storage.Spawn(Health{Current: 50, Max: 100})
		storage.Spawn(Health{Current: 75, Max: 100})

		health := &HealthSystem{}
		scheduler.Register(health)

		scheduler.Once(1.0)
		assert.Equal(t, 125.0, health.TotalHealth)

		storage.Spawn(Health{Current: 25, Max: 100})

		scheduler.Once(1.0)
		assert.Equal(t, 150.0, health.TotalHealth)
	})

	t.Run("registration order is execution order", func(t *testing.T) {
		scheduler := ecs.NewScheduler(ecs.NewStorage(registry))

		var log []string
		for _, name := range []string{"input", "move", "confine"} {
			scheduler.Register(&orderRecorder{name: name, log: &log})
		}

		scheduler.Once(0)
		scheduler.Once(0)

		assert.Equal(t, []string{"input", "move", "confine", "input", "move", "confine"}, log)
	})

	t.Run("view and singleton fields are bound", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		ecs.NewSingleton[Score](storage, Score(10))

		lookup := &namedLookupSystem{target: storage.Spawn(Name{Value: "target"})}
		scheduler.Register(lookup)

		scheduler.Once(0)

		assert.Equal(t, "target", lookup.found)
		assert.Equal(t, Score(11), *lookup.Counter.Get())
	})

	t.Run("startup runs once before frames", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		storage.Spawn(Name{Value: "existing"})

		startup := &spawnOnStartup{}
		movement := &MovementSystem{}
		scheduler.RegisterStartup(startup)
		scheduler.Register(movement)

		scheduler.Startup()
		scheduler.Startup()

		assert.Equal(t, 1, startup.before)
		assert.Equal(t, 0, movement.ExecuteCount, "startup does not run frame systems")

		scheduler.Once(1.0)

		var positions []float32
		for item := range movement.Entities.Values() {
			positions = append(positions, item.Position.X)
		}
		require.Len(t, positions, 1, "startup spawned exactly once")
		assert.Equal(t, float32(110), positions[0])
	})
}

type TestSystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *TestSystem) Execute(frame *ecs.UpdateFrame) {
	s.executeCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestSchedulerStats(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewStorage(ecs.NewComponentRegistry()))

	stats := scheduler.GetStats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}

	sys1 := &TestSystem{sleepDur: 1 * time.Millisecond}
	sys2 := &TestSystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.Register(sys2)

	stats = scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before the first run, got %v", stats.Systems[0].MinDuration)
	}

	scheduler.Once(0.016)
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	stats = scheduler.GetStats()

	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions (2 systems * 3 runs), got %d", stats.TotalExecutions)
	}

	for _, sysStats := range stats.Systems {
		if sysStats.Name != "TestSystem" {
			t.Errorf("expected system name 'TestSystem', got '%s'", sysStats.Name)
		}
		if sysStats.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", sysStats.ExecutionCount)
		}
		if sysStats.MinDuration == 0 || sysStats.LastDuration == 0 || sysStats.TotalDuration == 0 {
			t.Errorf("expected non-zero durations, got %+v", sysStats)
		}
		if sysStats.MinDuration > sysStats.AvgDuration {
			t.Errorf("min duration (%v) should be <= avg duration (%v)", sysStats.MinDuration, sysStats.AvgDuration)
		}
		if sysStats.AvgDuration > sysStats.MaxDuration {
			t.Errorf("avg duration (%v) should be <= max duration (%v)", sysStats.AvgDuration, sysStats.MaxDuration)
		}
	}

	if sys1.executeCount != 3 || sys2.executeCount != 3 {
		t.Errorf("expected both systems to execute 3 times, got %d and %d", sys1.executeCount, sys2.executeCount)
	}
}
