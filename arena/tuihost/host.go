// Package tuihost runs the arena in a terminal with tcell.
package tuihost

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballpit/arena"
)

// Host owns a terminal screen and the simulation drawn on it.
type Host struct {
	screen   tcell.Screen
	sim      *arena.Simulation
	keyboard *Keyboard
	renderer *Renderer
}

// New sizes the arena to the screen, builds and starts the simulation.
// The screen must already be initialised.
func New(screen tcell.Screen, cfg arena.Config, viewport Viewport, hold time.Duration) (*Host, error) {
	cols, rows := screen.Size()
	cfg.WindowWidth, cfg.WindowHeight = viewport.WorldSize(cols, rows)

	keyboard := NewKeyboard(hold)
	assets := arena.NewAssetTable()

	sim, err := arena.New(cfg, arena.Options{
		Input:  keyboard,
		Clock:  arena.NewWallClock(arena.MaxFrameDelta),
		Assets: assets,
	})
	if err != nil {
		return nil, err
	}
	if err := sim.Start(); err != nil {
		return nil, err
	}

	return &Host{
		screen:   screen,
		sim:      sim,
		keyboard: keyboard,
		renderer: &Renderer{Screen: screen, Viewport: viewport, Assets: assets},
	}, nil
}

func (h *Host) Simulation() *arena.Simulation { return h.sim }

// Run ticks and redraws at fps frames per second until ctx is cancelled or
// the user quits with q, Escape or Ctrl-C.
func (h *Host) Run(ctx context.Context, fps int) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	h.renderer.Render(h.sim)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if quit := h.handle(ev); quit {
				return nil
			}
		case <-ticker.C:
			if err := h.sim.Tick(); err != nil {
				return err
			}
			h.renderer.Render(h.sim)
		}
	}
}

// handle applies one terminal event and reports whether to quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true
		}
		h.keyboard.HandleEvent(ev)
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return false
}

func (h *Host) resize() {
	cols, rows := h.screen.Size()
	width, height := h.renderer.Viewport.WorldSize(cols, rows)
	// the primary window exists once the simulation has started
	_ = h.sim.Resize(width, height)
}
