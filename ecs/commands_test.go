package ecs_test

import (
	"testing"

	"github.com/plus3/ballpit/ecs"
	"github.com/stretchr/testify/assert"
)

type testSpawnSystem struct {
	Positions ecs.Query[struct{ *Position }]
	seen      int
}

func (s *testSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	s.seen = s.Positions.Count()
	frame.Commands.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	frame.Commands.Spawn(Position{X: 3, Y: 4})
}

func TestCommandsAreDeferred(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	spawner := &testSpawnSystem{}
	scheduler.Register(spawner)

	scheduler.Once(0.016)
	assert.Equal(t, 0, spawner.seen, "spawns are not visible in the frame that queued them")

	scheduler.Once(0.016)
	assert.Equal(t, 2, spawner.seen)

	assert.Equal(t, 4, storage.CollectStats().TotalEntityCount)
}

func TestCommandsFlushOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var commands ecs.Commands
	countAtDefer := -1

	commands.Defer(func() {
		countAtDefer = storage.CollectStats().TotalEntityCount
	})
	commands.Spawn(Name{Value: "first"})
	assert.Equal(t, 2, commands.Len())

	commands.Flush(storage)

	assert.Equal(t, 1, countAtDefer, "defers run after spawns")
	assert.Equal(t, 0, commands.Len())

	commands.Flush(storage)
	assert.Equal(t, 1, storage.CollectStats().TotalEntityCount, "flush resets the buffer")
}
