package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/ballpit/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestAutopilot(t *testing.T) {
	pilot := newAutopilot(2)
	assert.True(t, pilot.Pressed(arena.KeyRight))

	pilot.advance()
	assert.True(t, pilot.Pressed(arena.KeyRight))

	pilot.advance()
	assert.False(t, pilot.Pressed(arena.KeyRight))
	assert.True(t, pilot.Pressed(arena.KeyK))
}

func TestReportGenerate(t *testing.T) {
	cfg := arena.DefaultConfig()
	cfg.Seed = 3

	pilot := newAutopilot(30)
	sim, err := arena.New(cfg, arena.Options{Input: pilot, Clock: arena.FixedClock(1.0 / 60)})
	require.NoError(t, err)
	require.NoError(t, sim.Start())

	report := &Report{Config: cfg, Seed: sim.Seed(), DeltaTime: 1.0 / 60, PlayerStart: sim.Player()}
	for range 600 {
		require.NoError(t, sim.Tick())
		pilot.advance()
		report.TotalFrames++
		report.checkContainment(sim)
	}
	report.PlayerEnd = sim.Player()
	report.Enemies = sim.Enemies()
	report.Systems = sim.Scheduler().GetStats()
	report.Storage = sim.Storage().CollectStats()

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))

	assert.Zero(t, report.Violations)
	assert.Contains(t, out.String(), "- **Frames:** 600 (10.0 s simulated)")
	assert.Contains(t, out.String(), "| PlayerMovementSystem | 600 |")
	assert.Contains(t, out.String(), "- **Enemy 3:**")
	assert.Contains(t, out.String(), "seed 3")
}
