package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Chat/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// No config file in the test working directory: defaults apply.
	t.Setenv("CONFIG_ENV", "missing")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(32768), cfg.ReadLimit)
	assert.Equal(t, 54*time.Second, cfg.PingPeriod)
	assert.Equal(t, 32, cfg.SendBuffer)
	assert.Equal(t, 20, cfg.ChatRate)
	assert.Equal(t, 10*time.Second, cfg.ChatWindow)
}

func TestLoadPortFromEnv(t *testing.T) {
	t.Setenv("CONFIG_ENV", "missing")
	t.Setenv("PORT", "9191")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port)
}
