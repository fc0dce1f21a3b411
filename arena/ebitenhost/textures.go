package ebitenhost

import (
	"image/color"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/ballpit/arena"
)

var (
	playerColor = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	enemyColor  = color.RGBA{R: 0xe5, G: 0x3e, B: 0x3e, A: 0xff}
)

// Textures is the host AssetServer. Handles come from the embedded table;
// images are loaded from Root on first draw. A missing file is replaced by
// a plain ball in the sprite's colour.
type Textures struct {
	*arena.AssetTable
	Root string

	images map[arena.TextureHandle]*ebiten.Image
}

func NewTextures(root string) *Textures {
	return &Textures{
		AssetTable: arena.NewAssetTable(),
		Root:       root,
		images:     make(map[arena.TextureHandle]*ebiten.Image),
	}
}

// Image returns the image for handle, loading it on first use. size is the
// diameter of the fallback ball.
func (t *Textures) Image(handle arena.TextureHandle, size float32) *ebiten.Image {
	if img, ok := t.images[handle]; ok {
		return img
	}

	path, ok := t.Path(handle)
	if !ok {
		return nil
	}

	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(t.Root, path))
	if err != nil {
		img = ball(max(int(size), 1), fallbackColor(path))
	}
	t.images[handle] = img
	return img
}

func fallbackColor(path string) color.Color {
	if path == arena.PlayerSprite {
		return playerColor
	}
	return enemyColor
}

func ball(diameter int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(diameter, diameter)
	r := float32(diameter) / 2
	vector.DrawFilledCircle(img, r, r, r, clr, true)
	return img
}
