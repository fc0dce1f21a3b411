package ecs_test

import (
	"fmt"

	"github.com/plus3/ballpit/ecs"
)

type Transform struct {
	X, Y float32
}

type Speed struct {
	DX, DY float32
}

type Bounds struct {
	MaxX, MaxY float32
}

type PhysicsSystem struct {
	Entities ecs.Query[struct {
		*Transform
		*Speed
	}]
}

func (s *PhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Values() {
		entity.Transform.X += entity.Speed.DX * float32(frame.DeltaTime)
		entity.Transform.Y += entity.Speed.DY * float32(frame.DeltaTime)
	}
}

type ClampSystem struct {
	Entities ecs.Query[struct{ *Transform }]
	Bounds   ecs.Singleton[Bounds]
}

func (s *ClampSystem) Execute(frame *ecs.UpdateFrame) {
	bounds := s.Bounds.Get()
	for entity := range s.Entities.Values() {
		entity.Transform.X = min(max(entity.Transform.X, 0), bounds.MaxX)
		entity.Transform.Y = min(max(entity.Transform.Y, 0), bounds.MaxY)
	}
}

// ExampleScheduler demonstrates building a frame loop from systems.
// Systems run in registration order; query fields are bound on registration
// and refreshed before every frame.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[Bounds](storage, Bounds{MaxX: 100, MaxY: 100})

	storage.Spawn(Transform{X: 0, Y: 0}, Speed{DX: 10, DY: 5})
	storage.Spawn(Transform{X: 95, Y: 95}, Speed{DX: 10, DY: -5})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PhysicsSystem{})
	scheduler.Register(&ClampSystem{})

	scheduler.Once(1.0)

	query := ecs.NewQuery[struct{ *Transform }](storage)
	query.Execute()

	var out []string
	for item := range query.Values() {
		out = append(out, fmt.Sprintf("(%.0f, %.0f)", item.Transform.X, item.Transform.Y))
	}
	if out[0] > out[1] {
		out[0], out[1] = out[1], out[0]
	}
	fmt.Println(out[0], out[1])

	// Output:
	// (10, 5) (100, 90)
}
