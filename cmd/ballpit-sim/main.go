package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/ballpit/arena"
	"github.com/plus3/ballpit/cmd/internal/cliconfig"
)

func main() {
	flags := cliconfig.Register(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "Wall-clock limit for the run.")
	frames := flag.Int("frames", 10000, "Number of frames to simulate. 0 runs until -duration.")
	dt := flag.Float64("dt", 1.0/60, "Simulated seconds per frame.")
	hold := flag.Int("hold", 90, "Frames the autopilot holds each direction.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Include GC pause metrics in the report.")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting headless arena run...")

	pilot := newAutopilot(*hold)
	sim, err := arena.New(cfg, arena.Options{
		Input: pilot,
		Clock: arena.FixedClock(*dt),
	})
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}
	if err := sim.Start(); err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	report := &Report{
		Config:         cfg,
		Seed:           sim.Seed(),
		Duration:       *duration,
		FrameLimit:     *frames,
		DeltaTime:      *dt,
		GCPauseMetrics: *gcPauseMetrics,
		PlayerStart:    sim.Player(),
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d frames (limit %s)...\n", *frames, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for *frames == 0 || report.TotalFrames < int64(*frames) {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		updateStart := time.Now()
		if err := sim.Tick(); err != nil {
			log.Fatalf("Tick failed: %v", err)
		}
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalFrames++
		pilot.advance()

		report.checkContainment(sim)
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.PlayerEnd = sim.Player()
	report.Enemies = sim.Enemies()
	report.Systems = sim.Scheduler().GetStats()
	report.Storage = sim.Storage().CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Run finished.")

	fmt.Println("\n--- Arena Run Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		os.Exit(1)
	}
}
