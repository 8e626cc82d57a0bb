package store

import (
	"context"

	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
)

// SnapshotStore caches the latest snapshot only. There is no history: Save
// replaces whatever was cached, and a snapshot past its TTL behaves as if
// it was never stored. Flattened rows are never cached; they are recomputed
// from the snapshot on every query.
type SnapshotStore interface {
	// Save replaces the cached snapshot.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Load returns the cached snapshot, or domain.ErrSnapshotNotFound when
	// none is cached or the cached one has expired.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Clear drops the cached snapshot so the next load triggers a fetch.
	Clear(ctx context.Context) error
}
