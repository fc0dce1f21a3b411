package tuihost

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballpit/arena"
)

// Viewport is the size of one terminal cell in world units.
type Viewport struct {
	CellWidth  float32
	CellHeight float32
}

// DefaultViewport keeps a 64-unit ball roughly round on a typical
// terminal font.
var DefaultViewport = Viewport{CellWidth: 8, CellHeight: 16}

// WorldSize returns the arena size covered by a cols x rows terminal.
func (v Viewport) WorldSize(cols, rows int) (float32, float32) {
	return float32(cols) * v.CellWidth, float32(rows) * v.CellHeight
}

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Renderer draws a simulation onto a tcell screen.
type Renderer struct {
	Screen   tcell.Screen
	Viewport Viewport
	Assets   *arena.AssetTable
}

func (r *Renderer) Render(sim *arena.Simulation) {
	r.Screen.Fill(' ', styleBackground)

	a, camera := sim.Arena(), sim.Camera()
	for transform, sprite := range sim.Sprites() {
		x, y := a.ToScreen(transform.Translation, camera)
		r.drawBall(x, y, sprite.Size, r.style(sprite.Texture))
	}

	player := sim.Player()
	r.drawText(0, 0, fmt.Sprintf(" ballpit  x=%4.0f y=%4.0f  arrows/hjkl move, q quits ", player.X(), player.Y()))

	r.Screen.Show()
}

func (r *Renderer) style(texture arena.TextureHandle) tcell.Style {
	if r.Assets != nil {
		if path, ok := r.Assets.Path(texture); ok && path == arena.PlayerSprite {
			return stylePlayer
		}
	}
	return styleEnemy
}

// drawBall fills every cell whose centre lies inside the circle of the
// given diameter centred on (x, y) in screen units.
func (r *Renderer) drawBall(x, y, size float32, style tcell.Style) {
	radius := size / 2
	cw, ch := r.Viewport.CellWidth, r.Viewport.CellHeight

	col0, col1 := int((x-radius)/cw), int((x+radius)/cw)
	row0, row1 := int((y-radius)/ch), int((y+radius)/ch)

	drawn := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			dx := (float32(col)+0.5)*cw - x
			dy := (float32(row)+0.5)*ch - y
			if dx*dx+dy*dy <= radius*radius {
				r.Screen.SetContent(col, row, '█', nil, style)
				drawn = true
			}
		}
	}
	// balls smaller than a cell still show up
	if !drawn {
		r.Screen.SetContent(int(x/cw), int(y/ch), '●', nil, style)
	}
}

func (r *Renderer) drawText(col, row int, s string) {
	for i, c := range []rune(s) {
		r.Screen.SetContent(col+i, row, c, nil, styleHUD)
	}
}
