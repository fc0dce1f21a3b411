package arena

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ballpit/ecs"
)

// Transform places an entity in world space. Y points up; Z is carried but
// never read by the simulation.
type Transform struct {
	Translation mgl32.Vec3
}

func NewTransform(x, y, z float32) Transform {
	return Transform{Translation: mgl32.Vec3{x, y, z}}
}

type Player struct{}

type Enemy struct{}

// Sprite links an entity to a texture. Size is the visual extent in world
// units; confinement keeps Size/2 between the centre and every arena edge.
type Sprite struct {
	Texture TextureHandle
	Size    float32
}

// Wander is the per-enemy motion state: the last rolled direction and the
// tween driving it.
type Wander struct {
	Direction Direction
	Tween     Tween
}

// Window mirrors the host window. Hosts keep Width and Height current
// through Simulation.Resize.
type Window struct {
	Width  float32
	Height float32
	Title  string
}

// PrimaryWindow marks the window the arena is sized from.
type PrimaryWindow struct{}

// Camera2D marks the camera entity. Its Transform is the world point shown
// at the centre of the window.
type Camera2D struct{}

// Arena holds the dimensions confinement is computed from this frame.
type Arena struct {
	Width  float32
	Height float32
}

// Primary caches the entities that must exist exactly once. It is filled by
// Simulation.Start and read by systems every frame.
type Primary struct {
	Window *ecs.EntityRef
	Player *ecs.EntityRef
	Camera *ecs.EntityRef
}

// NewRegistry returns a registry with every arena component registered.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Enemy](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Wander](registry)
	ecs.RegisterComponent[Window](registry)
	ecs.RegisterComponent[PrimaryWindow](registry)
	ecs.RegisterComponent[Camera2D](registry)
	return registry
}
