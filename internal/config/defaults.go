package config

import "time"

// Cache backend types
const (
	CacheTypeInMemory = "inmemory"
	CacheTypeRedis    = "redis"
)

// Default configuration values
const (
	// Server defaults
	DefaultServerPort      = 8080
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Fetch defaults
	// DefaultENSDataURL is the public explorer endpoint serving ENS name
	// mappings. Unlike the capabilities URL it is safe to default: name
	// resolution is best-effort and failures fall back to raw addresses.
	DefaultENSDataURL   = "https://explorer.livepeer.org/api/ens-data"
	DefaultFetchTimeout = 10 * time.Second

	// Cache defaults
	DefaultSnapshotTTL = 5 * time.Minute
)
