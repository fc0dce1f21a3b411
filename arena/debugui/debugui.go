// Package debugui draws a Dear ImGui overlay for a running arena.
// Overlay windows are ECS entities carrying an ImguiItem; the ImguiSystem
// queues their render functions every frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ballpit/ecs"
)

// ImguiItem holds a render function called once per frame with the frame
// delta in seconds.
type ImguiItem struct {
	Render func(dt float64)
}

// ImguiInputState mirrors whether ImGui wants the mouse or keyboard. Hosts
// read it to keep overlay typing out of the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and defers every ImguiItem render to
// the end of the frame, after the arena systems have run.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	state := i.InputState.Get()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	dt := frame.DeltaTime
	for item := range i.Items.Values() {
		render := item.ImguiItem.Render
		if render == nil {
			continue
		}
		frame.Commands.Defer(func() { render(dt) })
	}
}
