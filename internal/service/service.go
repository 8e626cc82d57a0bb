package service

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
	"github.com/rickstaa/ai-compute-visualizer/internal/flatten"
	"github.com/rickstaa/ai-compute-visualizer/internal/report"
	"github.com/rickstaa/ai-compute-visualizer/internal/store"
)

// SnapshotFetcher retrieves a fresh snapshot from the gateway.
type SnapshotFetcher interface {
	Fetch(ctx context.Context) (*domain.Snapshot, error)
}

// Dashboard is the query surface the API handlers depend on.
type Dashboard interface {
	// Query runs the full pipeline for one user interaction: reuse or
	// fetch a snapshot, flatten it, filter by the selection, aggregate.
	Query(ctx context.Context, selection domain.FilterSelection) (*QueryResult, error)

	// Refresh drops the cached snapshot and fetches a fresh one.
	Refresh(ctx context.Context) (*domain.Snapshot, error)

	// Stats returns pipeline counters.
	Stats() Stats
}

// QueryResult is everything one interaction produces.
type QueryResult struct {
	// Snapshot the result was computed from.
	Snapshot *domain.Snapshot

	// Report holds the filtered rows and the three distributions.
	Report *report.Report

	// GPUModels and Capabilities are the distinct values of the unfiltered
	// row set, for populating the filter multi-selects.
	GPUModels    []string
	Capabilities []string

	// TotalRows is the unfiltered flattened row count.
	TotalRows int

	// Skipped are the malformed entries dropped during flattening.
	Skipped []domain.SkippedRecord
}

// Stats holds pipeline counters.
type Stats struct {
	Fetches     int64 `json:"fetches"`
	FetchErrors int64 `json:"fetch_errors"`
	ParseErrors int64 `json:"parse_errors"`
	CacheHits   int64 `json:"cache_hits"`
}

// Service runs the fetch-flatten-filter pipeline against a snapshot cache.
// Each query is synchronous and self-contained: no background fetching, no
// polling and no shared mutable state beyond the cache itself.
type Service struct {
	fetcher SnapshotFetcher
	cache   store.SnapshotStore
	logger  *slog.Logger

	// Statistics
	fetches     atomic.Int64
	fetchErrors atomic.Int64
	parseErrors atomic.Int64
	cacheHits   atomic.Int64
}

// NewService creates a dashboard service.
func NewService(fetcher SnapshotFetcher, cache store.SnapshotStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger.With("component", "dashboard"),
	}
}

// Query runs the pipeline for one interaction. Fetch and parse failures
// propagate so the caller can surface them as a non-fatal message; they
// never crash the pipeline, and the next query retries the fetch.
func (s *Service) Query(ctx context.Context, selection domain.FilterSelection) (*QueryResult, error) {
	snapshot, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	rows, skipped := flatten.Flatten(snapshot)
	if len(skipped) > 0 {
		s.logger.Warn("Skipped malformed records during flatten",
			"snapshot_id", snapshot.ID,
			"skipped", len(skipped),
		)
	}

	models, capabilities := report.Options(rows)

	return &QueryResult{
		Snapshot:     snapshot,
		Report:       report.Build(rows, selection),
		GPUModels:    models,
		Capabilities: capabilities,
		TotalRows:    len(rows),
		Skipped:      skipped,
	}, nil
}

// Refresh clears the cache and fetches a fresh snapshot immediately.
func (s *Service) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("Failed to clear snapshot cache", "error", err)
	}

	return s.fetchAndCache(ctx)
}

// current returns the cached snapshot, fetching a fresh one when the cache
// is empty or expired. Cache read failures degrade to a fetch.
func (s *Service) current(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.cache.Load(ctx)
	if err == nil {
		s.cacheHits.Add(1)
		return snapshot, nil
	}
	if !errors.Is(err, domain.ErrSnapshotNotFound) {
		s.logger.Warn("Snapshot cache read failed, fetching instead", "error", err)
	}

	return s.fetchAndCache(ctx)
}

func (s *Service) fetchAndCache(ctx context.Context) (*domain.Snapshot, error) {
	s.fetches.Add(1)

	snapshot, err := s.fetcher.Fetch(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrParse) {
			s.parseErrors.Add(1)
		} else {
			s.fetchErrors.Add(1)
		}
		s.logger.Error("Snapshot fetch failed", "error", err)
		return nil, err
	}

	// A cache write failure is not fatal; the snapshot is still served and
	// the next interaction fetches again.
	if err := s.cache.Save(ctx, snapshot); err != nil {
		s.logger.Warn("Failed to cache snapshot",
			"snapshot_id", snapshot.ID,
			"error", err,
		)
	}

	return snapshot, nil
}

// Stats returns current pipeline counters.
func (s *Service) Stats() Stats {
	return Stats{
		Fetches:     s.fetches.Load(),
		FetchErrors: s.fetchErrors.Load(),
		ParseErrors: s.parseErrors.Load(),
		CacheHits:   s.cacheHits.Load(),
	}
}
