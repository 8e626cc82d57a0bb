package store

import (
	"context"
	"sync"
	"time"

	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
)

// InMemoryStore is the default snapshot cache: a single slot guarded by a
// read-write mutex with deadline-based expiry. Suitable for a single
// replica; use the Redis store when replicas must share one snapshot.
type InMemoryStore struct {
	ttl time.Duration

	mu        sync.RWMutex
	snapshot  *domain.Snapshot
	expiresAt time.Time
}

// NewInMemoryStore creates an in-memory snapshot cache with the given TTL.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		ttl: ttl,
	}
}

// Save replaces the cached snapshot and resets its expiry.
func (s *InMemoryStore) Save(_ context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snapshot
	s.expiresAt = time.Now().Add(s.ttl)
	return nil
}

// Load returns the cached snapshot, or domain.ErrSnapshotNotFound when the
// slot is empty or past its deadline.
func (s *InMemoryStore) Load(_ context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil || time.Now().After(s.expiresAt) {
		return nil, domain.ErrSnapshotNotFound
	}
	return s.snapshot, nil
}

// Clear drops the cached snapshot.
func (s *InMemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = nil
	s.expiresAt = time.Time{}
	return nil
}
