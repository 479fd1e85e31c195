package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitgraph/internal/config"
)

var keys = []string{
	"TRANSIT_NETWORK_FILE", "TRANSIT_HTTP_ADDR", "TRANSIT_QUERY_TIMEOUT",
	"TRANSIT_CHANGE_TIME", "TRANSIT_CHANGE_DISTANCE", "TRANSIT_ROUTE_CACHE_SIZE",
	"LOG_LEVEL", "LOG_FILE",
}

// clearEnv blanks every key for the duration of the test.
func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.QueryTimeout)
	assert.Equal(t, 10.0, cfg.Routing.ChangeTime)
	assert.Equal(t, 0.02, cfg.Routing.ChangeDistance)
	assert.Equal(t, 256, cfg.Routing.CacheSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.FilePath)

	assert.ErrorContains(t, cfg.Validate(), "TRANSIT_NETWORK_FILE is required")
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSIT_NETWORK_FILE", "net.json")
	t.Setenv("TRANSIT_QUERY_TIMEOUT", "250ms")
	t.Setenv("TRANSIT_CHANGE_TIME", "4.5")
	t.Setenv("TRANSIT_ROUTE_CACHE_SIZE", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "net.json", cfg.Network.File)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTP.QueryTimeout)
	assert.Equal(t, 4.5, cfg.Routing.ChangeTime)
	assert.Zero(t, cfg.Routing.CacheSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Malformed(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSIT_QUERY_TIMEOUT", "soon")
	t.Setenv("TRANSIT_CHANGE_DISTANCE", "far")

	_, err := config.Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "TRANSIT_QUERY_TIMEOUT")
	assert.ErrorContains(t, err, "TRANSIT_CHANGE_DISTANCE")
}

func TestValidate(t *testing.T) {
	cfg := config.Config{
		Network: config.NetworkConfig{File: "net.json"},
		HTTP:    config.HTTPConfig{Addr: ":0", QueryTimeout: 0},
		Routing: config.RoutingConfig{ChangeTime: -1, ChangeDistance: -0.1, CacheSize: -2},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"TRANSIT_QUERY_TIMEOUT", "TRANSIT_CHANGE_TIME", "TRANSIT_CHANGE_DISTANCE", "TRANSIT_ROUTE_CACHE_SIZE"} {
		assert.ErrorContains(t, err, key)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are set, even to "".
	require.NoError(t, os.Unsetenv("TRANSIT_NETWORK_FILE"))
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TRANSIT_NETWORK_FILE=from-file.json\nLOG_LEVEL=debug\n"), 0o600))
	require.NoError(t, config.LoadEnvFile(path))
	t.Cleanup(func() {
		os.Unsetenv("TRANSIT_NETWORK_FILE")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file.json", cfg.Network.File)
	assert.Equal(t, "debug", cfg.Logging.Level)

	assert.Error(t, config.LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
