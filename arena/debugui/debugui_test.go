package debugui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ballpit/arena"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	h := newFrameHistory(3)
	assert.Equal(t, float32(0), h.average())

	h.push(10)
	h.push(20)
	assert.Equal(t, float32(15), h.average(), "only filled samples count")

	h.push(30)
	h.push(40)
	assert.Equal(t, float32(30), h.average(), "oldest sample overwritten")
	assert.Equal(t, []float32{40, 20, 30}, h.samples)

	assert.Equal(t, float32(50), fps(20))
	assert.Equal(t, float32(0), fps(0))
}

func TestDescribe(t *testing.T) {
	transform := arena.Transform{Translation: mgl32.Vec3{1, 2, 3}}
	assert.Equal(t, []string{"Translation: [1 2 3]"}, describe(&transform))

	sprite := arena.Sprite{Texture: 2, Size: 64}
	assert.Equal(t, []string{"Texture: 2", "Size: 64"}, describe(sprite))

	assert.Empty(t, describe(arena.Player{}))
	assert.Empty(t, describe((*arena.Sprite)(nil)))
}

func TestHeldKeys(t *testing.T) {
	var keys arena.KeyState
	assert.Empty(t, heldKeys(keys))

	keys.Set(arena.KeyL, true)
	keys.Set(arena.KeyUp, true)
	assert.Equal(t, []string{"Up", "L"}, heldKeys(keys))
}
