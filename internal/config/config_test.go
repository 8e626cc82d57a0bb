package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresCapabilitiesURL(t *testing.T) {
	t.Setenv("CAPABILITIES_DATA_URL", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CAPABILITIES_DATA_URL")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CAPABILITIES_DATA_URL", "https://gateway.example.com/capabilities")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, DefaultIdleTimeout, cfg.Server.IdleTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "https://gateway.example.com/capabilities", cfg.Fetch.CapabilitiesURL)
	assert.Equal(t, DefaultENSDataURL, cfg.Fetch.ENSURL)
	assert.Equal(t, DefaultFetchTimeout, cfg.Fetch.Timeout)

	assert.Equal(t, CacheTypeInMemory, cfg.Cache.Type)
	assert.Equal(t, DefaultSnapshotTTL, cfg.Cache.SnapshotTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CAPABILITIES_DATA_URL", "https://gateway.example.com/capabilities")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SNAPSHOT_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, CacheTypeRedis, cfg.Cache.Type)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
	assert.Equal(t, 90*time.Second, cfg.Cache.SnapshotTTL)
}

func TestLoad_EmptyENSURLDisablesResolution(t *testing.T) {
	t.Setenv("CAPABILITIES_DATA_URL", "https://gateway.example.com/capabilities")
	t.Setenv("ENS_DATA_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Fetch.ENSURL)
}

func TestLoad_MalformedValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("CAPABILITIES_DATA_URL", "https://gateway.example.com/capabilities")
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("FETCH_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultFetchTimeout, cfg.Fetch.Timeout)
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Fetch: FetchConfig{
			CapabilitiesURL: "https://gateway.example.com/capabilities",
			Timeout:         DefaultFetchTimeout,
		},
		Cache: CacheConfig{
			Type:        CacheTypeInMemory,
			SnapshotTTL: DefaultSnapshotTTL,
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestValidate_InvalidFetchTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Fetch.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_InvalidSnapshotTTL(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.SnapshotTTL = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestValidate_RedisRequiresURL(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Type = CacheTypeRedis
	require.Error(t, cfg.Validate())

	cfg.Cache.RedisURL = "redis://localhost:6379/0"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownCacheType(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Type = "memcached"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cache type")
}
