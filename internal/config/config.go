package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	Server ServerConfig
	Fetch  FetchConfig
	Cache  CacheConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// FetchConfig holds snapshot fetch configuration
type FetchConfig struct {
	// CapabilitiesURL is the gateway endpoint serving the capabilities
	// snapshot. Required; there is no safe default endpoint.
	CapabilitiesURL string

	// ENSURL is the endpoint serving address-to-name mappings. Optional;
	// an empty value disables name resolution.
	ENSURL string

	// Timeout bounds a single snapshot retrieval. A timeout is treated
	// identically to any other fetch failure.
	Timeout time.Duration
}

// CacheConfig holds snapshot cache configuration
type CacheConfig struct {
	// Type selects the cache backend: "inmemory" or "redis".
	Type string

	// RedisURL is the connection URL when Type is "redis".
	RedisURL string

	// SnapshotTTL is how long a cached snapshot is reused before a user
	// interaction triggers a fresh fetch.
	SnapshotTTL time.Duration
}

// Load loads configuration from environment variables.
// CAPABILITIES_DATA_URL is the one required variable; its absence is a
// configuration error that halts startup.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", DefaultServerPort),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", DefaultReadTimeout),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", DefaultWriteTimeout),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", DefaultIdleTimeout),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		},
		Fetch: FetchConfig{
			CapabilitiesURL: os.Getenv("CAPABILITIES_DATA_URL"),
			ENSURL:          getEnv("ENS_DATA_URL", DefaultENSDataURL),
			Timeout:         getEnvAsDuration("FETCH_TIMEOUT", DefaultFetchTimeout),
		},
		Cache: CacheConfig{
			Type:        getEnv("CACHE_TYPE", CacheTypeInMemory),
			RedisURL:    getEnv("REDIS_URL", ""),
			SnapshotTTL: getEnvAsDuration("SNAPSHOT_TTL", DefaultSnapshotTTL),
		},
	}

	if config.Fetch.CapabilitiesURL == "" {
		return nil, fmt.Errorf("CAPABILITIES_DATA_URL environment variable is not set; set it before running the application")
	}

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("invalid fetch timeout: %s", c.Fetch.Timeout)
	}

	if c.Cache.SnapshotTTL <= 0 {
		return fmt.Errorf("invalid snapshot TTL: %s", c.Cache.SnapshotTTL)
	}

	switch c.Cache.Type {
	case CacheTypeInMemory:
	case CacheTypeRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache type %q requires REDIS_URL", c.Cache.Type)
		}
	default:
		return fmt.Errorf("unknown cache type: %q", c.Cache.Type)
	}

	return nil
}
