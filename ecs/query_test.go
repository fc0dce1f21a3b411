package ecs_test

import (
	"errors"
	"testing"

	"github.com/plus3/ballpit/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	storage.Spawn(Position{X: 3, Y: 4}, Velocity{DX: 1.0, DY: 1.0})
	storage.Spawn(Position{X: 5, Y: 6}, Velocity{DX: 1.5, DY: 1.5}, Health{Current: 100, Max: 100})
	storage.Spawn(Position{X: 7, Y: 8})

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](storage)

	t.Run("execute builds cache", func(t *testing.T) {
		query.Execute()

		count := 0
		for range query.Iter() {
			count++
		}

		if count != 3 {
			t.Errorf("expected 3 entities, got %d", count)
		}
		if query.Count() != 3 {
			t.Errorf("expected Count()=3, got %d", query.Count())
		}
	})

	t.Run("panics without execute", func(t *testing.T) {
		freshQuery := ecs.NewQuery[struct {
			*Position
			*Velocity
		}](storage)

		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic when calling Iter() before Execute()")
			}
		}()

		for range freshQuery.Iter() {
		}
	})

	t.Run("cache reflects new spawns after re-execute", func(t *testing.T) {
		query.Execute()
		initialCount := query.Count()

		storage.Spawn(Position{X: 10, Y: 10}, Velocity{DX: 2.0, DY: 2.0})
		storage.Spawn(Position{X: 11, Y: 11}, Velocity{DX: 2.0, DY: 2.0}, Name{Value: "new archetype"})

		query.Execute()

		if query.Count() != initialCount+2 {
			t.Errorf("expected %d entities after spawn, got %d", initialCount+2, query.Count())
		}
	})

	t.Run("iter values", func(t *testing.T) {
		query.Execute()

		for item := range query.Values() {
			if item.Position == nil || item.Velocity == nil {
				t.Error("expected non-nil components")
			}
		}
	})
}

func TestQuerySingle(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Position
		*PlayerController
	}](storage)

	_, _, err := query.Single()
	assert.True(t, errors.Is(err, ecs.ErrNoEntities))
	assert.Contains(t, err.Error(), "PlayerController")

	storage.Spawn(Position{X: 1}) // not a match
	player := storage.Spawn(Position{X: 2}, PlayerController{})

	id, item, err := query.Single()
	require.NoError(t, err)
	assert.Equal(t, player, id)
	assert.Equal(t, player, item.EntityId)
	assert.Equal(t, float32(2), item.Position.X)

	storage.Spawn(Position{X: 3}, PlayerController{})

	_, _, err = query.Single()
	assert.ErrorIs(t, err, ecs.ErrMultipleEntities)
	assert.Contains(t, err.Error(), "found 2")
}
