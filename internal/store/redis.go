package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
)

const snapshotKey = "dashboard:snapshot:latest"

// RedisStore caches the latest snapshot in Redis so multiple dashboard
// replicas share one gateway fetch. The snapshot is stored as a JSON value
// under a single key; Redis key expiry implements the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStore connects to Redis and returns a snapshot cache.
func NewRedisStore(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "redis_store"),
	}, nil
}

// Save replaces the cached snapshot and resets the key TTL.
func (s *RedisStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return domain.ErrInvalidInput
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.client.Set(ctx, snapshotKey, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	s.logger.Debug("Cached snapshot in Redis",
		"snapshot_id", snapshot.ID,
		"ttl", s.ttl,
	)

	return nil
}

// Load returns the cached snapshot, or domain.ErrSnapshotNotFound when the
// key is absent or expired.
func (s *RedisStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	payload, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached snapshot: %w", err)
	}

	return &snapshot, nil
}

// Clear drops the cached snapshot.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
