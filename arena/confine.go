package arena

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ballpit/ecs"
)

// Bounds is the rectangle an entity centre may occupy.
type Bounds struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y()
}

// Bounds returns the confinement rectangle for an entity of the given size.
// On an axis where the arena is narrower than the entity the range
// collapses to the arena centre.
func (a Arena) Bounds(size float32) Bounds {
	half := size / 2
	minX, maxX := axisRange(a.Width, half)
	minY, maxY := axisRange(a.Height, half)
	return Bounds{
		Min: mgl32.Vec2{minX, minY},
		Max: mgl32.Vec2{maxX, maxY},
	}
}

func axisRange(extent, half float32) (float32, float32) {
	lo, hi := half, extent-half
	if lo > hi {
		mid := extent / 2
		return mid, mid
	}
	return lo, hi
}

// Confine clamps the x and y of p into b. Z is left untouched.
func Confine(p mgl32.Vec3, b Bounds) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(p.X(), b.Min.X(), b.Max.X()),
		mgl32.Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
		p.Z(),
	}
}

// ArenaSystem copies the primary window size into the Arena singleton.
type ArenaSystem struct {
	Windows ecs.View[struct{ *Window }]
	Arena   ecs.Singleton[Arena]
	Primary ecs.Singleton[Primary]
}

func (s *ArenaSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Windows.GetRef(s.Primary.Get().Window)
	if window == nil {
		return
	}
	*s.Arena.Get() = Arena{Width: window.Window.Width, Height: window.Window.Height}
}

type ConfinePlayerSystem struct {
	Players ecs.View[struct {
		*Transform
		*Sprite
		*Player
	}]
	Arena   ecs.Singleton[Arena]
	Primary ecs.Singleton[Primary]
}

func (s *ConfinePlayerSystem) Execute(frame *ecs.UpdateFrame) {
	player := s.Players.GetRef(s.Primary.Get().Player)
	if player == nil {
		return
	}
	bounds := s.Arena.Get().Bounds(player.Sprite.Size)
	player.Transform.Translation = Confine(player.Transform.Translation, bounds)
}

type ConfineEnemySystem struct {
	Enemies ecs.Query[struct {
		*Transform
		*Sprite
		*Enemy
	}]
	Arena ecs.Singleton[Arena]
}

func (s *ConfineEnemySystem) Execute(frame *ecs.UpdateFrame) {
	arena := s.Arena.Get()
	for enemy := range s.Enemies.Values() {
		enemy.Transform.Translation = Confine(enemy.Transform.Translation, arena.Bounds(enemy.Sprite.Size))
	}
}
