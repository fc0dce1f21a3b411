// Package cliconfig layers command-line flags over arena.LoadConfig.
package cliconfig

import (
	"flag"
	"fmt"

	"github.com/plus3/ballpit/arena"
)

type Flags struct {
	fs *flag.FlagSet

	path    *string
	enemies *int
	speed   *float64
	motion  *string
	seed    *uint64
}

// Register adds the shared flags to fs.
func Register(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:      fs,
		path:    fs.String("config", ".env", "Dotenv file with BALLPIT_* settings. A missing file is ignored."),
		enemies: fs.Int("enemies", 4, "Number of enemies."),
		speed:   fs.Float64("speed", 300, "Player speed in units per second."),
		motion:  fs.String("motion", "ephemeral", "Enemy motion: ephemeral or persistent."),
		seed:    fs.Uint64("seed", 0, "Enemy generator seed. 0 picks one at random."),
	}
}

// Load reads the config file and environment, then applies the flags that
// were set explicitly. Call it after fs.Parse.
func (f *Flags) Load() (arena.Config, error) {
	cfg, err := arena.LoadConfig(*f.path)
	if err != nil {
		return arena.Config{}, err
	}

	var flagErr error
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "enemies":
			cfg.Enemies = *f.enemies
		case "speed":
			cfg.PlayerSpeed = float32(*f.speed)
		case "seed":
			cfg.Seed = *f.seed
		case "motion":
			mode, err := arena.ParseMotionMode(*f.motion)
			if err != nil {
				flagErr = fmt.Errorf("%w: -motion: %w", arena.ErrInvalidConfig, err)
				return
			}
			cfg.Motion = mode
		}
	})
	if flagErr != nil {
		return arena.Config{}, flagErr
	}

	if err := cfg.Validate(); err != nil {
		return arena.Config{}, err
	}
	return cfg, nil
}
