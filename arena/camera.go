package arena

import "github.com/go-gl/mathgl/mgl32"

// ToScreen maps a world point (y up) to screen pixels (y down) for a view
// of the arena centred on camera.
func (a Arena) ToScreen(world, camera mgl32.Vec3) (x, y float32) {
	x = world.X() - camera.X() + a.Width/2
	y = a.Height/2 - (world.Y() - camera.Y())
	return x, y
}
