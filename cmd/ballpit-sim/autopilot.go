package main

import "github.com/plus3/ballpit/arena"

// autopilot walks the player around a fixed route, holding each key for a
// number of frames. Some legs use the letter bindings and one holds two
// keys for a diagonal.
type autopilot struct {
	route [][]arena.Key
	hold  int
	frame int
}

func newAutopilot(hold int) *autopilot {
	return &autopilot{
		route: [][]arena.Key{
			{arena.KeyRight},
			{arena.KeyK},
			{arena.KeyLeft, arena.KeyDown},
			{},
			{arena.KeyH},
			{arena.KeyUp, arena.KeyL},
			{arena.KeyJ},
		},
		hold: max(hold, 1),
	}
}

func (a *autopilot) advance() {
	a.frame++
}

func (a *autopilot) Pressed(key arena.Key) bool {
	leg := a.route[(a.frame/a.hold)%len(a.route)]
	for _, k := range leg {
		if k == key {
			return true
		}
	}
	return false
}
