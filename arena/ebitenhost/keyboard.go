package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ballpit/arena"
)

var ebitenKeys = map[arena.Key]ebiten.Key{
	arena.KeyLeft:  ebiten.KeyArrowLeft,
	arena.KeyRight: ebiten.KeyArrowRight,
	arena.KeyUp:    ebiten.KeyArrowUp,
	arena.KeyDown:  ebiten.KeyArrowDown,
	arena.KeyH:     ebiten.KeyH,
	arena.KeyJ:     ebiten.KeyJ,
	arena.KeyK:     ebiten.KeyK,
	arena.KeyL:     ebiten.KeyL,
}

// Keyboard reads held keys from ebiten. While Suppress returns true every
// key reads as released, so typing into the debug overlay does not steer
// the player.
type Keyboard struct {
	Suppress func() bool
}

func (k *Keyboard) Pressed(key arena.Key) bool {
	if k.Suppress != nil && k.Suppress() {
		return false
	}
	ek, ok := ebitenKeys[key]
	return ok && ebiten.IsKeyPressed(ek)
}
