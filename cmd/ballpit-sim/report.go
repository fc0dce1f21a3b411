package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ballpit/arena"
	"github.com/plus3/ballpit/ecs"
)

type Report struct {
	// Configuration
	Config     arena.Config
	Seed       uint64
	Duration   time.Duration
	FrameLimit int
	DeltaTime  float64

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	UpdateTime     Stats
	PlayerStart    mgl32.Vec3
	PlayerEnd      mgl32.Vec3
	Enemies        []mgl32.Vec3
	Violations     int
	Systems        *ecs.SchedulerStats
	Storage        *ecs.StorageStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// checkContainment counts entities outside their confinement bounds.
func (r *Report) checkContainment(sim *arena.Simulation) {
	a := sim.Arena()
	if !a.Bounds(r.Config.PlayerSize).Contains(sim.Player()) {
		r.Violations++
	}
	enemyBounds := a.Bounds(r.Config.EnemySize)
	for _, enemy := range sim.Enemies() {
		if !enemyBounds.Contains(enemy) {
			r.Violations++
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Arena Run Report

## Configuration
- **Arena:** {{.Config.WindowWidth}} x {{.Config.WindowHeight}}
- **Enemies:** {{.Config.Enemies}} ({{.Config.Motion}} motion, seed {{.Seed}})
- **Player Speed:** {{.Config.PlayerSpeed}}
- **Frame Delta:** {{printf "%.4f" .DeltaTime}} s
- **Frame Limit:** {{.FrameLimit}} (wall clock limit {{.Duration}})

## Results
- **Frames:** {{.TotalFrames}} ({{printf "%.1f" (simulated .TotalFrames .DeltaTime)}} s simulated)
- **Wall Time:** {{.TotalTime}}
- **Frame Update Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Player:** {{vec .PlayerStart}} -> {{vec .PlayerEnd}}
{{- range $i, $e := .Enemies}}
- **Enemy {{$i}}:** {{vec $e}}
{{- end}}
- **Containment Violations:** {{.Violations}}

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Storage
- **Entities:** {{.Storage.TotalEntityCount}} in {{.Storage.ArchetypeCount}} archetypes
{{- range .Storage.ArchetypeBreakdown}}
  - 0x{{printf "%08X" .ID}}: {{.EntityCount}} x {{join .ComponentTypes}}
{{- end}}
- **Singletons:** {{join .Storage.SingletonTypes}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"vec": func(v mgl32.Vec3) string {
			return fmt.Sprintf("(%.1f, %.1f)", v.X(), v.Y())
		},
		"simulated": func(frames int64, dt float64) float64 {
			return float64(frames) * dt
		},
		"join": func(items []string) string {
			return strings.Join(items, ", ")
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
