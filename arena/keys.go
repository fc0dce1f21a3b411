package arena

import "github.com/go-gl/mathgl/mgl32"

//go:generate go run golang.org/x/tools/cmd/stringer -type=Key -trimprefix=Key
//go:generate go run golang.org/x/tools/cmd/stringer -type=Direction -trimprefix=Direction

// Key identifies one of the keys the simulation reacts to. Each direction
// has an arrow key and a vi-style letter.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyH
	KeyJ
	KeyK
	KeyL
)

const numKeys = int(KeyL) + 1

// AllKeys lists every Key in declaration order.
func AllKeys() []Key {
	keys := make([]Key, numKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Direction is one of the four cardinal directions, y up.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionDown
	DirectionUp
)

var directionVectors = [...]mgl32.Vec3{
	DirectionLeft:  {-1, 0, 0},
	DirectionRight: {1, 0, 0},
	DirectionDown:  {0, -1, 0},
	DirectionUp:    {0, 1, 0},
}

// Vector returns the unit vector for d.
func (d Direction) Vector() mgl32.Vec3 {
	if d < 0 || int(d) >= len(directionVectors) {
		return mgl32.Vec3{}
	}
	return directionVectors[d]
}

var bindings = [...]struct {
	direction Direction
	keys      [2]Key
}{
	{DirectionLeft, [2]Key{KeyLeft, KeyH}},
	{DirectionRight, [2]Key{KeyRight, KeyL}},
	{DirectionDown, [2]Key{KeyDown, KeyJ}},
	{DirectionUp, [2]Key{KeyUp, KeyK}},
}

// InputSource reports which keys are held right now.
type InputSource interface {
	Pressed(Key) bool
}

// KeySet is an InputSource with a fixed set of held keys.
type KeySet map[Key]bool

func Keys(keys ...Key) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func (s KeySet) Pressed(k Key) bool {
	return s[k]
}

// KeyState is the per-frame snapshot of the input source.
type KeyState struct {
	pressed [numKeys]bool
}

func (s *KeyState) Pressed(k Key) bool {
	if k < 0 || int(k) >= numKeys {
		return false
	}
	return s.pressed[k]
}

func (s *KeyState) Set(k Key, pressed bool) {
	if k < 0 || int(k) >= numKeys {
		return
	}
	s.pressed[k] = pressed
}

// Held reports whether either key bound to d is pressed.
func (s *KeyState) Held(d Direction) bool {
	for _, b := range bindings {
		if b.direction == d {
			return s.Pressed(b.keys[0]) || s.Pressed(b.keys[1])
		}
	}
	return false
}
