package ebitenhost

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Overlay wraps the ebiten Dear ImGui backend. Creating one also creates
// the ebiten window.
type Overlay struct {
	*ebitenbackend.EbitenBackend
}

func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{EbitenBackend: backend}
}
