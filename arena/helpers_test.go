package arena_test

import (
	"testing"

	"github.com/plus3/ballpit/arena"
	"github.com/plus3/ballpit/ecs"
	"github.com/stretchr/testify/require"
)

// fixedRand returns the same draw every time and counts calls.
type fixedRand struct {
	value float64
	calls int
}

func (r *fixedRand) Float64() float64 {
	r.calls++
	return r.value
}

func testConfig() arena.Config {
	cfg := arena.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func startSimulation(t *testing.T, cfg arena.Config, opts arena.Options) *arena.Simulation {
	t.Helper()
	sim, err := arena.New(cfg, opts)
	require.NoError(t, err)
	require.NoError(t, sim.Start())
	return sim
}

// movePlayer teleports the player, bypassing the systems.
func movePlayer(t *testing.T, sim *arena.Simulation, x, y float32) {
	t.Helper()
	query := ecs.NewQuery[struct {
		*arena.Transform
		*arena.Player
	}](sim.Storage())
	_, player, err := query.Single()
	require.NoError(t, err)
	player.Transform.Translation[0] = x
	player.Transform.Translation[1] = y
}
