package arena

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ballpit/ecs"
)

// SpawnCameraSystem places the camera at the centre of the primary window.
type SpawnCameraSystem struct {
	Windows ecs.View[struct{ *Window }]
	Primary ecs.Singleton[Primary]
}

func (s *SpawnCameraSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Windows.GetRef(s.Primary.Get().Window)
	if window == nil {
		return
	}
	frame.Commands.Spawn(
		NewTransform(window.Window.Width/2, window.Window.Height/2, 0),
		Camera2D{},
	)
}

// SpawnPlayerSystem spawns the player at the centre of the primary window.
type SpawnPlayerSystem struct {
	Windows ecs.View[struct{ *Window }]
	Primary ecs.Singleton[Primary]
	Assets  AssetServer
	Size    float32
}

func (s *SpawnPlayerSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Windows.GetRef(s.Primary.Get().Window)
	if window == nil {
		return
	}
	frame.Commands.Spawn(
		NewTransform(window.Window.Width/2, window.Window.Height/2, 0),
		Sprite{Texture: s.Assets.Load(PlayerSprite), Size: s.Size},
		Player{},
	)
}

// SpawnEnemiesSystem spawns Count enemies at uniformly random positions
// inside the primary window.
type SpawnEnemiesSystem struct {
	Windows ecs.View[struct{ *Window }]
	Primary ecs.Singleton[Primary]
	Assets  AssetServer
	Rand    Rand
	Count   int
	Size    float32
}

func (s *SpawnEnemiesSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Windows.GetRef(s.Primary.Get().Window)
	if window == nil {
		return
	}
	texture := s.Assets.Load(EnemySprite)
	for range s.Count {
		x := float32(s.Rand.Float64()) * window.Window.Width
		y := float32(s.Rand.Float64()) * window.Window.Height
		frame.Commands.Spawn(
			Transform{Translation: mgl32.Vec3{x, y, 0}},
			Sprite{Texture: texture, Size: s.Size},
			Wander{},
			Enemy{},
		)
	}
}
