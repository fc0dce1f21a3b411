// Package arena is a small real-time arena: one keyboard-driven player and a
// handful of wandering enemies, all kept inside a window-sized rectangle.
//
// The simulation is built on the ecs package. Hosts supply input, timing and
// assets through InputSource, Clock and AssetServer, call Start once and then
// Tick (or Run) every frame.
package arena

import (
	"context"
	"fmt"
	"iter"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ballpit/ecs"
)

// Options carries the collaborators of a Simulation. Nil fields get
// defaults: no input, a 60 Hz FixedClock, an AssetTable and a PCG generator
// seeded from Config.Seed.
type Options struct {
	Input  InputSource
	Clock  Clock
	Assets AssetServer
	Rand   Rand
}

type Simulation struct {
	config    Config
	seed      uint64
	registry  *ecs.ComponentRegistry
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	clock     Clock

	primary *ecs.Singleton[Primary]
	arena   *ecs.Singleton[Arena]
	keys    *ecs.Singleton[KeyState]
	windows *ecs.View[struct{ *Window }]
	sprites *ecs.View[struct {
		*Transform
		*Sprite
	}]
	enemies *ecs.View[struct {
		*Transform
		*Enemy
	}]
	cameras *ecs.View[struct {
		*Transform
		*Camera2D
	}]

	started bool
	frames  uint64
}

// New builds the world, spawns the primary window and registers every
// system. Nothing runs until Start.
func New(cfg Config, opts Options) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	if opts.Input == nil {
		opts.Input = KeySet(nil)
	}
	if opts.Clock == nil {
		opts.Clock = FixedClock(1.0 / 60)
	}
	if opts.Assets == nil {
		opts.Assets = NewAssetTable()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(seed, seed))
	}

	registry := NewRegistry()
	storage := ecs.NewStorage(registry)

	s := &Simulation{
		config:    cfg,
		seed:      seed,
		registry:  registry,
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		clock:     opts.Clock,
		arena:     ecs.NewSingleton(storage, Arena{Width: cfg.WindowWidth, Height: cfg.WindowHeight}),
		keys:      ecs.NewSingleton[KeyState](storage),
		primary:   ecs.NewSingleton[Primary](storage),
	}
	s.windows = ecs.NewView[struct{ *Window }](storage)
	s.sprites = ecs.NewView[struct {
		*Transform
		*Sprite
	}](storage)
	s.enemies = ecs.NewView[struct {
		*Transform
		*Enemy
	}](storage)
	s.cameras = ecs.NewView[struct {
		*Transform
		*Camera2D
	}](storage)

	storage.Spawn(
		Window{Width: cfg.WindowWidth, Height: cfg.WindowHeight, Title: cfg.WindowTitle},
		PrimaryWindow{},
	)

	s.scheduler.RegisterStartup(&SpawnCameraSystem{})
	s.scheduler.RegisterStartup(&SpawnPlayerSystem{Assets: opts.Assets, Size: cfg.PlayerSize})
	s.scheduler.RegisterStartup(&SpawnEnemiesSystem{
		Assets: opts.Assets,
		Rand:   opts.Rand,
		Count:  cfg.Enemies,
		Size:   cfg.EnemySize,
	})

	s.scheduler.Register(&InputSystem{Source: opts.Input})
	s.scheduler.Register(&ArenaSystem{})
	s.scheduler.Register(&PlayerMovementSystem{Speed: cfg.PlayerSpeed})
	s.scheduler.Register(&ConfinePlayerSystem{})
	s.scheduler.Register(&EnemyMotionSystem{
		Rand:     opts.Rand,
		Mode:     cfg.Motion,
		Step:     cfg.EnemyStep,
		Duration: float32(cfg.TweenDuration.Seconds()),
	})
	s.scheduler.Register(&ConfineEnemySystem{})

	return s, nil
}

// FindPrimaryWindow returns a ref to the only entity carrying Window and
// PrimaryWindow.
func FindPrimaryWindow(storage *ecs.Storage) (*ecs.EntityRef, error) {
	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Window
		*PrimaryWindow
	}](storage)
	id, _, err := query.Single()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrimaryWindow, err)
	}
	return storage.CreateEntityRef(id), nil
}

// FindPlayer returns a ref to the only entity carrying Transform and Player.
func FindPlayer(storage *ecs.Storage) (*ecs.EntityRef, error) {
	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Transform
		*Player
	}](storage)
	id, _, err := query.Single()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlayer, err)
	}
	return storage.CreateEntityRef(id), nil
}

func findCamera(storage *ecs.Storage) *ecs.EntityRef {
	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Transform
		*Camera2D
	}](storage)
	id, _, err := query.Single()
	if err != nil {
		return nil
	}
	return storage.CreateEntityRef(id)
}

// Start resolves the primary window, runs the startup systems and resolves
// the player. Both lookups must match exactly one entity. Calling Start
// again after success does nothing.
func (s *Simulation) Start() error {
	if s.started {
		return nil
	}

	primary := s.primary.Get()
	window, err := FindPrimaryWindow(s.storage)
	if err != nil {
		return err
	}
	primary.Window = window

	s.scheduler.Startup()

	player, err := FindPlayer(s.storage)
	if err != nil {
		return err
	}
	primary.Player = player
	primary.Camera = findCamera(s.storage)

	s.started = true
	return nil
}

// Tick advances the simulation by the clock's delta.
func (s *Simulation) Tick() error {
	return s.Step(s.clock.Delta())
}

// Step advances the simulation by dt seconds. Negative deltas count as zero.
func (s *Simulation) Step(dt float64) error {
	if !s.started {
		return ErrNotStarted
	}
	s.scheduler.Once(max(dt, 0))
	s.frames++
	return nil
}

// Run ticks every interval until ctx is cancelled.
func (s *Simulation) Run(ctx context.Context, interval time.Duration) error {
	if !s.started {
		return ErrNotStarted
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Tick(); err != nil {
				return err
			}
		}
	}
}

// Resize updates the primary window. The arena follows on the next frame.
func (s *Simulation) Resize(width, height float32) error {
	ref := s.primary.Get().Window
	if ref == nil {
		var err error
		if ref, err = FindPrimaryWindow(s.storage); err != nil {
			return err
		}
	}
	window := s.windows.GetRef(ref)
	if window == nil {
		return ErrPrimaryWindow
	}
	window.Window.Width = width
	window.Window.Height = height
	return nil
}

func (s *Simulation) Config() Config { return s.config }

// Seed is the seed the default generator was built from.
func (s *Simulation) Seed() uint64 { return s.seed }

func (s *Simulation) Frames() uint64 { return s.frames }

func (s *Simulation) Registry() *ecs.ComponentRegistry { return s.registry }

func (s *Simulation) Storage() *ecs.Storage { return s.storage }

func (s *Simulation) Scheduler() *ecs.Scheduler { return s.scheduler }

func (s *Simulation) Arena() Arena { return *s.arena.Get() }

func (s *Simulation) Keys() KeyState { return *s.keys.Get() }

// Player returns the player's position. It is the zero vector before Start.
func (s *Simulation) Player() mgl32.Vec3 {
	player := s.sprites.GetRef(s.primary.Get().Player)
	if player == nil {
		return mgl32.Vec3{}
	}
	return player.Transform.Translation
}

// Enemies returns the current enemy positions.
func (s *Simulation) Enemies() []mgl32.Vec3 {
	var positions []mgl32.Vec3
	for enemy := range s.enemies.Values() {
		positions = append(positions, enemy.Transform.Translation)
	}
	return positions
}

// Camera returns the world point shown at the window centre, falling back
// to the arena centre when there is no camera.
func (s *Simulation) Camera() mgl32.Vec3 {
	if camera := s.cameras.GetRef(s.primary.Get().Camera); camera != nil {
		return camera.Transform.Translation
	}
	arena := s.arena.Get()
	return mgl32.Vec3{arena.Width / 2, arena.Height / 2, 0}
}

// Sprites yields the transform and sprite of every drawable entity.
func (s *Simulation) Sprites() iter.Seq2[Transform, Sprite] {
	return func(yield func(Transform, Sprite) bool) {
		for item := range s.sprites.Values() {
			if !yield(*item.Transform, *item.Sprite) {
				return
			}
		}
	}
}
