//go:build !rp2040 && !rp2350

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"motionlight/errcode"
	"motionlight/types"
)

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("MOTIONLIGHT_MIN_ON", "90s")
	t.Setenv("MOTIONLIGHT_COLOR", "cyan")
	t.Setenv("MOTIONLIGHT_PINS_PIR_PULL", "down")

	c := Default()
	require.NoError(t, LoadEnv(&c, filepath.Join(t.TempDir(), "missing.env")))
	require.Equal(t, 90*time.Second, c.MinOn.Duration())
	require.Equal(t, types.Cyan, c.Color.RGB())
	require.Equal(t, "down", c.Pins.PIRPull)
	require.Equal(t, 60*time.Second, c.MotionTimeout.Duration())
}

func TestLoadEnv_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.env")
	require.NoError(t, os.WriteFile(path, []byte("MOTIONLIGHT_MODE=showcase\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MOTIONLIGHT_MODE") })

	c := Default()
	require.NoError(t, LoadEnv(&c, path))
	require.Equal(t, ModeShowcase, c.Mode)
}

func TestLoadEnv_Revalidates(t *testing.T) {
	t.Setenv("MOTIONLIGHT_HOLD_TICK", "0s")
	c := Default()
	err := LoadEnv(&c, filepath.Join(t.TempDir(), "missing.env"))
	require.Equal(t, errcode.InvalidParams, errcode.Of(err))
}
