package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballpit/arena/tuihost"
	"github.com/plus3/ballpit/cmd/internal/cliconfig"
)

func main() {
	flags := cliconfig.Register(flag.CommandLine)
	fps := flag.Int("fps", 30, "Frames per second.")
	hold := flag.Duration("hold", tuihost.DefaultHold, "How long a key counts as held after its last press.")
	cellWidth := flag.Float64("cell-width", float64(tuihost.DefaultViewport.CellWidth), "World units per terminal column.")
	cellHeight := flag.Float64("cell-height", float64(tuihost.DefaultViewport.CellHeight), "World units per terminal row.")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialise screen: %v", err)
	}

	viewport := tuihost.Viewport{CellWidth: float32(*cellWidth), CellHeight: float32(*cellHeight)}
	host, err := tuihost.New(screen, cfg, viewport, *hold)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to start simulation: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := host.Run(ctx, *fps)
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
	log.Printf("Stopped after %d frames.", host.Simulation().Frames())
}
