package arena

import (
	"fmt"
	"strings"

	"github.com/plus3/ballpit/ecs"
)

// MotionMode selects how enemy tweens live across frames.
type MotionMode int

const (
	// MotionEphemeral builds a fresh tween every frame and samples it at the
	// frame delta, so an enemy drifts delta/duration of a step per frame.
	MotionEphemeral MotionMode = iota
	// MotionPersistent keeps each enemy's tween in its Wander component and
	// only rolls a new direction once the previous tween has finished.
	MotionPersistent
)

func (m MotionMode) String() string {
	switch m {
	case MotionEphemeral:
		return "ephemeral"
	case MotionPersistent:
		return "persistent"
	}
	return fmt.Sprintf("MotionMode(%d)", int(m))
}

func ParseMotionMode(s string) (MotionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ephemeral", "":
		return MotionEphemeral, nil
	case "persistent":
		return MotionPersistent, nil
	}
	return 0, fmt.Errorf("unknown motion mode %q", s)
}

// Rand is the source of uniform draws in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// RollDirection maps a draw in [0, 1) to a direction by quartile.
func RollDirection(r float64) Direction {
	switch {
	case r < 0.25:
		return DirectionLeft
	case r < 0.5:
		return DirectionRight
	case r < 0.75:
		return DirectionDown
	default:
		return DirectionUp
	}
}

// EnemyMotionSystem moves every enemy one tween step in a random direction.
type EnemyMotionSystem struct {
	Enemies ecs.Query[struct {
		*Transform
		*Wander
		*Enemy
	}]
	Rand     Rand
	Mode     MotionMode
	Step     float32
	Duration float32
}

func (s *EnemyMotionSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.DeltaTime)
	for enemy := range s.Enemies.Values() {
		wander, transform := enemy.Wander, enemy.Transform

		if s.Mode == MotionPersistent {
			if wander.Tween.Done() {
				s.roll(wander, transform)
			}
			transform.Translation, _ = wander.Tween.Advance(dt)
			continue
		}

		s.roll(wander, transform)
		transform.Translation = wander.Tween.Value(dt)
	}
}

// roll draws a direction and aims a fresh tween one step that way.
func (s *EnemyMotionSystem) roll(wander *Wander, transform *Transform) {
	wander.Direction = RollDirection(s.Rand.Float64())
	start := transform.Translation
	end := start.Add(wander.Direction.Vector().Mul(s.Step))
	wander.Tween = NewTween(start, end, s.Duration)
}
