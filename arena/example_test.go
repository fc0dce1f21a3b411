package arena_test

import (
	"fmt"

	"github.com/plus3/ballpit/arena"
)

// ExampleSimulation drives the player right for one second in an 800x600
// arena, then keeps holding the key until the player meets the edge.
func ExampleSimulation() {
	cfg := arena.DefaultConfig()
	cfg.Seed = 1

	sim, err := arena.New(cfg, arena.Options{
		Input: arena.Keys(arena.KeyRight),
		Clock: arena.FixedClock(1),
	})
	if err != nil {
		panic(err)
	}
	if err := sim.Start(); err != nil {
		panic(err)
	}

	for range 2 {
		if err := sim.Tick(); err != nil {
			panic(err)
		}
		p := sim.Player()
		fmt.Printf("(%.0f, %.0f)\n", p.X(), p.Y())
	}

	// Output:
	// (700, 300)
	// (768, 300)
}
