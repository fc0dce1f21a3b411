package arena

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds the tunables of a simulation.
type Config struct {
	WindowWidth  float32
	WindowHeight float32
	WindowTitle  string

	PlayerSpeed float32
	PlayerSize  float32
	EnemySize   float32
	Enemies     int

	// EnemyStep is the length of one enemy tween in world units.
	EnemyStep     float32
	TweenDuration time.Duration
	Motion        MotionMode

	// Seed for the enemy generator. Zero picks a random seed.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:   800,
		WindowHeight:  600,
		WindowTitle:   "ballpit",
		PlayerSpeed:   300,
		PlayerSize:    64,
		EnemySize:     64,
		Enemies:       4,
		EnemyStep:     1,
		TweenDuration: time.Second,
		Motion:        MotionEphemeral,
	}
}

func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %vx%v", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	case c.PlayerSpeed < 0:
		return fmt.Errorf("%w: negative player speed %v", ErrInvalidConfig, c.PlayerSpeed)
	case c.PlayerSize <= 0 || c.EnemySize <= 0:
		return fmt.Errorf("%w: sprite sizes must be positive", ErrInvalidConfig)
	case c.Enemies < 0:
		return fmt.Errorf("%w: negative enemy count %d", ErrInvalidConfig, c.Enemies)
	case c.EnemyStep < 0:
		return fmt.Errorf("%w: negative enemy step %v", ErrInvalidConfig, c.EnemyStep)
	case c.TweenDuration <= 0:
		return fmt.Errorf("%w: tween duration %v", ErrInvalidConfig, c.TweenDuration)
	case c.Motion != MotionEphemeral && c.Motion != MotionPersistent:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Motion)
	}
	return nil
}

type configField struct {
	key   string
	apply func(c *Config, value string) error
}

var configFields = []configField{
	{"BALLPIT_WINDOW_WIDTH", func(c *Config, v string) (err error) {
		c.WindowWidth, err = cast.ToFloat32E(v)
		return
	}},
	{"BALLPIT_WINDOW_HEIGHT", func(c *Config, v string) (err error) {
		c.WindowHeight, err = cast.ToFloat32E(v)
		return
	}},
	{"BALLPIT_WINDOW_TITLE", func(c *Config, v string) error {
		c.WindowTitle = v
		return nil
	}},
	{"BALLPIT_PLAYER_SPEED", func(c *Config, v string) (err error) {
		c.PlayerSpeed, err = cast.ToFloat32E(v)
		return
	}},
	{"BALLPIT_PLAYER_SIZE", func(c *Config, v string) (err error) {
		c.PlayerSize, err = cast.ToFloat32E(v)
		return
	}},
	{"BALLPIT_ENEMY_SIZE", func(c *Config, v string) (err error) {
		c.EnemySize, err = cast.ToFloat32E(v)
		return
	}},
	{"BALLPIT_ENEMIES", func(c *Config, v string) (err error) {
		c.Enemies, err = cast.ToIntE(v)
		return
	}},
	{"BALLPIT_ENEMY_STEP", func(c *Config, v string) (err error) {
		c.EnemyStep, err = cast.ToFloat32E(v)
		return
	}},
	// Durations need a unit ("1s", "500ms"); a bare number is nanoseconds.
	{"BALLPIT_TWEEN_DURATION", func(c *Config, v string) (err error) {
		c.TweenDuration, err = cast.ToDurationE(v)
		return
	}},
	{"BALLPIT_MOTION", func(c *Config, v string) (err error) {
		c.Motion, err = ParseMotionMode(v)
		return
	}},
	{"BALLPIT_SEED", func(c *Config, v string) (err error) {
		c.Seed, err = cast.ToUint64E(v)
		return
	}},
}

// LoadConfig starts from DefaultConfig, applies the BALLPIT_* entries of the
// dotenv file at path and then any BALLPIT_* process environment variables.
// A missing file is not an error; an empty path skips the file.
func LoadConfig(path string) (Config, error) {
	values := make(map[string]string)
	if path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, field := range configFields {
		if v, ok := os.LookupEnv(field.key); ok {
			values[field.key] = v
		}
	}

	cfg := DefaultConfig()
	for _, field := range configFields {
		v, ok := values[field.key]
		if !ok {
			continue
		}
		if err := field.apply(&cfg, v); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, field.key, v, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
