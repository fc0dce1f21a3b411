// Package ebitenhost runs the arena in an ebiten window.
package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/plus3/ballpit/arena"
	"golang.org/x/image/font/basicfont"
)

var background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x22, A: 0xff}

// Game implements ebiten.Game for a started simulation.
type Game struct {
	sim      *arena.Simulation
	textures *Textures
	overlay  *Overlay

	width, height int
}

// NewGame wraps sim. overlay may be nil.
func NewGame(sim *arena.Simulation, textures *Textures, overlay *Overlay) *Game {
	return &Game{sim: sim, textures: textures, overlay: overlay}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
		defer g.overlay.EndFrame()
	}
	return g.sim.Tick()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	a, camera := g.sim.Arena(), g.sim.Camera()
	for transform, sprite := range g.sim.Sprites() {
		img := g.textures.Image(sprite.Texture, sprite.Size)
		if img == nil {
			continue
		}
		x, y := a.ToScreen(transform.Translation, camera)
		bounds := img.Bounds()
		screen.DrawImage(img, spriteOptions(bounds.Dx(), bounds.Dy(), sprite.Size, x, y))
	}

	player := g.sim.Player()
	hud := fmt.Sprintf("x=%.0f y=%.0f  enemies=%d  %.0f fps", player.X(), player.Y(), len(g.sim.Enemies()), ebiten.ActualFPS())
	text.Draw(screen, hud, basicfont.Face7x13, 8, 18, color.White)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		_ = g.sim.Resize(float32(outsideWidth), float32(outsideHeight))
	}
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// spriteOptions scales a w x h image to size and centres it on (x, y).
func spriteOptions(w, h int, size, x, y float32) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size)/float64(w), float64(size)/float64(h))
	op.GeoM.Translate(float64(x-size/2), float64(y-size/2))
	op.Filter = ebiten.FilterLinear
	return op
}
