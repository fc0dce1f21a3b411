package debugui

import (
	"github.com/plus3/ballpit/arena"
	"github.com/plus3/ballpit/ecs"
)

// Install registers the overlay components, spawns the performance and
// arena panels and schedules the ImguiSystem after the arena systems.
// An ImGui context must exist before the first frame.
func Install(sim *arena.Simulation) *ecs.Singleton[ImguiInputState] {
	if !ecs.Registered[ImguiItem](sim.Registry()) {
		ecs.RegisterComponent[ImguiItem](sim.Registry())
	}

	storage := sim.Storage()
	input := ecs.NewSingleton[ImguiInputState](storage)

	storage.Spawn(ImguiItem{Render: NewPerformancePanel(sim, 120).Render})
	storage.Spawn(ImguiItem{Render: NewArenaPanel(sim).Render})

	sim.Scheduler().Register(&ImguiSystem{})
	return input
}
