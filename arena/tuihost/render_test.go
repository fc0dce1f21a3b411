package tuihost_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballpit/arena"
	"github.com/plus3/ballpit/arena/tuihost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestViewportWorldSize(t *testing.T) {
	w, h := tuihost.DefaultViewport.WorldSize(100, 40)
	assert.Equal(t, float32(800), w)
	assert.Equal(t, float32(640), h)
}

func TestHostDrawsPlayerAtCentre(t *testing.T) {
	screen := newScreen(t, 100, 40)

	cfg := arena.DefaultConfig()
	cfg.Enemies = 0
	cfg.Seed = 1
	host, err := tuihost.New(screen, cfg, tuihost.DefaultViewport, tuihost.DefaultHold)
	require.NoError(t, err)

	sim := host.Simulation()
	assert.Equal(t, arena.Arena{Width: 800, Height: 640}, sim.Arena())

	renderer := &tuihost.Renderer{Screen: screen, Viewport: tuihost.DefaultViewport}
	renderer.Render(sim)

	// world (400, 320) is cell (50, 20)
	mainc, _, style, _ := screen.GetContent(50, 20)
	assert.Equal(t, '█', mainc)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg, "no asset table: every sprite is drawn as an enemy")

	mainc, _, _, _ = screen.GetContent(10, 30)
	assert.Equal(t, ' ', mainc)

	mainc, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'b', mainc, "hud on the first row")
}
