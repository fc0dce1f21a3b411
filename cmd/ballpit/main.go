package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ballpit/arena"
	"github.com/plus3/ballpit/arena/debugui"
	"github.com/plus3/ballpit/arena/ebitenhost"
	"github.com/plus3/ballpit/cmd/internal/cliconfig"
)

func main() {
	flags := cliconfig.Register(flag.CommandLine)
	assets := flag.String("assets", "assets", "Directory the sprite paths are relative to.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	width, height := int(cfg.WindowWidth), int(cfg.WindowHeight)

	var overlay *ebitenhost.Overlay
	if *debug {
		overlay = ebitenhost.NewOverlay(cfg.WindowTitle, width, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(cfg.WindowTitle)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	keyboard := &ebitenhost.Keyboard{}
	textures := ebitenhost.NewTextures(*assets)

	sim, err := arena.New(cfg, arena.Options{
		Input:  keyboard,
		Clock:  arena.NewWallClock(arena.MaxFrameDelta),
		Assets: textures,
	})
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}

	if *debug {
		input := debugui.Install(sim)
		keyboard.Suppress = func() bool { return input.Get().WantCaptureKeyboard }
	}

	if err := sim.Start(); err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}
	log.Printf("Arena %.0fx%.0f, %d enemies, seed %d, %s motion", cfg.WindowWidth, cfg.WindowHeight, cfg.Enemies, sim.Seed(), cfg.Motion)

	if err := ebiten.RunGame(ebitenhost.NewGame(sim, textures, overlay)); err != nil {
		log.Fatal(err)
	}
}
