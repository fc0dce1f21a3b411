package cliconfig_test

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/plus3/ballpit/arena"
	"github.com/plus3/ballpit/cmd/internal/cliconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (arena.Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := cliconfig.Register(fs)
	args = append([]string{"-config", filepath.Join(t.TempDir(), "none.env")}, args...)
	require.NoError(t, fs.Parse(args))
	return flags.Load()
}

func TestDefaultsWithoutFlags(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, arena.DefaultConfig(), cfg)
}

func TestFlagsOverride(t *testing.T) {
	cfg, err := parse(t, "-enemies", "0", "-speed", "120", "-motion", "persistent", "-seed", "7")
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Enemies)
	assert.Equal(t, float32(120), cfg.PlayerSpeed)
	assert.Equal(t, arena.MotionPersistent, cfg.Motion)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestBadFlags(t *testing.T) {
	_, err := parse(t, "-motion", "sideways")
	assert.ErrorIs(t, err, arena.ErrInvalidConfig)

	_, err = parse(t, "-enemies", "-3")
	assert.ErrorIs(t, err, arena.ErrInvalidConfig)
}
