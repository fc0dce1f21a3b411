package arena_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ballpit/arena"
	"github.com/stretchr/testify/assert"
)

func TestTweenValue(t *testing.T) {
	start := mgl32.Vec3{10, 20, 0}
	end := mgl32.Vec3{11, 20, 0}
	tween := arena.NewTween(start, end, 1)

	assert.Equal(t, start, tween.Start())
	assert.Equal(t, end, tween.End())
	assert.Equal(t, float32(1), tween.Duration())
	assert.Equal(t, start, tween.Value(0))
	assert.Equal(t, end, tween.Value(1))
	assert.Equal(t, mgl32.Vec3{10.5, 20, 0}, tween.Value(0.5))

	t.Run("clamped outside duration", func(t *testing.T) {
		assert.Equal(t, start, tween.Value(-3))
		assert.Equal(t, end, tween.Value(5))
	})

	t.Run("value does not advance", func(t *testing.T) {
		tween.Value(0.9)
		assert.Equal(t, float32(0), tween.Elapsed())
		assert.False(t, tween.Done())
	})
}

func TestTweenZeroDuration(t *testing.T) {
	end := mgl32.Vec3{5, 5, 0}
	tween := arena.NewTween(mgl32.Vec3{}, end, 0)

	assert.True(t, tween.Done())
	assert.Equal(t, end, tween.Value(0))
	assert.Equal(t, end, tween.Value(-1))

	var zero arena.Tween
	assert.True(t, zero.Done())
	assert.Equal(t, mgl32.Vec3{}, zero.Value(1))
}

func TestTweenAdvance(t *testing.T) {
	tween := arena.NewTween(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -2, 0}, 2)

	value, done := tween.Advance(0.5)
	assert.Equal(t, mgl32.Vec3{0, -0.5, 0}, value)
	assert.False(t, done)

	value, done = tween.Advance(-1)
	assert.Equal(t, mgl32.Vec3{0, -0.5, 0}, value, "negative dt is ignored")
	assert.False(t, done)

	value, done = tween.Advance(1.5)
	assert.Equal(t, mgl32.Vec3{0, -2, 0}, value)
	assert.True(t, done)

	value, done = tween.Advance(1)
	assert.Equal(t, mgl32.Vec3{0, -2, 0}, value)
	assert.True(t, done)
}
