package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noEnvFile points the loader at a file that does not exist.
func noEnvFile(t *testing.T) {
	t.Setenv("VERDE_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad(t *testing.T) {
	noEnvFile(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Zero(t, cfg.LookupDelay)
	assert.Equal(t, 5*time.Second, cfg.LookupTimeout)
	assert.Equal(t, 5.0, cfg.LookupRate)
	assert.Equal(t, 10, cfg.LookupBurst)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadCustomValues(t *testing.T) {
	noEnvFile(t)
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOOKUP_DELAY", "1500ms")
	t.Setenv("LOOKUP_RATE", "0.5")
	t.Setenv("LOOKUP_BURST", "2")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 1500*time.Millisecond, cfg.LookupDelay)
	assert.Equal(t, 0.5, cfg.LookupRate)
	assert.Equal(t, 2, cfg.LookupBurst)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadInvalidValues(t *testing.T) {
	for key, val := range map[string]string{
		"LOOKUP_DELAY":    "soon",
		"LOOKUP_TIMEOUT":  "5",
		"LOOKUP_RATE":     "fast",
		"LOOKUP_BURST":    "1.5",
		"METRICS_ENABLED": "sometimes",
	} {
		t.Run(key, func(t *testing.T) {
			noEnvFile(t)
			t.Setenv(key, val)

			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LISTEN_ADDR=:7070\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("VERDE_ENV_FILE", path)
	// Already-set variables win over the file.
	t.Setenv("LOG_LEVEL", "warn")
	// godotenv sets variables with os.Setenv; register LISTEN_ADDR so
	// t.Setenv restores it after the test.
	t.Setenv("LISTEN_ADDR", "")
	require.NoError(t, os.Unsetenv("LISTEN_ADDR"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
}
