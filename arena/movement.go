package arena

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ballpit/ecs"
)

// InputSystem snapshots the input source into the KeyState singleton.
type InputSystem struct {
	Keys   ecs.Singleton[KeyState]
	Source InputSource
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.Keys.Get()
	for _, key := range AllKeys() {
		state.Set(key, s.Source.Pressed(key))
	}
}

// InputDirection sums the unit vectors of every held direction and
// normalises the result. Opposing keys cancel; nothing held gives zero.
func InputDirection(keys *KeyState) mgl32.Vec3 {
	var direction mgl32.Vec3
	for _, b := range bindings {
		if keys.Held(b.direction) {
			direction = direction.Add(b.direction.Vector())
		}
	}
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}
	return direction
}

// PlayerMovementSystem moves the player by direction * Speed * dt.
type PlayerMovementSystem struct {
	Players ecs.View[struct {
		*Transform
		*Player
	}]
	Keys    ecs.Singleton[KeyState]
	Primary ecs.Singleton[Primary]
	Speed   float32
}

func (s *PlayerMovementSystem) Execute(frame *ecs.UpdateFrame) {
	player := s.Players.GetRef(s.Primary.Get().Player)
	if player == nil {
		return
	}

	direction := InputDirection(s.Keys.Get())
	if direction.Len() == 0 {
		return
	}
	step := direction.Mul(s.Speed * float32(frame.DeltaTime))
	player.Transform.Translation = player.Transform.Translation.Add(step)
}
