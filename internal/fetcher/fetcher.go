package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
	"github.com/rickstaa/ai-compute-visualizer/pkg/utils"
)

// maxBodyBytes bounds the response body read. Snapshots are on the order of
// hundreds of orchestrators, so anything larger is a misbehaving endpoint.
const maxBodyBytes = 32 << 20

// Fetcher retrieves capabilities snapshots from the gateway endpoint.
// The URL is injected at construction; nothing is read from the ambient
// environment at call time.
type Fetcher struct {
	url        string
	httpClient *http.Client
	resolver   *ENSResolver
	logger     *slog.Logger
}

// NewFetcher creates a snapshot fetcher for the given gateway URL.
// resolver may be nil, in which case orchestrator names fall back to
// their raw addresses.
func NewFetcher(url string, timeout time.Duration, resolver *ENSResolver, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Fetcher{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		resolver: resolver,
		logger:   logger.With("component", "fetcher"),
	}
}

// Fetch performs a single blocking retrieval of the capabilities snapshot.
// Transport failures, timeouts and non-2xx responses wrap domain.ErrFetch;
// malformed or structurally incomplete bodies wrap domain.ErrParse.
func (f *Fetcher) Fetch(ctx context.Context) (*domain.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the error message, then discard.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status %d: %s", domain.ErrFetch, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", domain.ErrFetch, err)
	}

	records, err := parseOrchestrators(body)
	if err != nil {
		return nil, err
	}

	// Name resolution is best-effort; a failed lookup never fails the fetch.
	if f.resolver != nil {
		names := f.resolver.Resolve(ctx)
		for i := range records {
			records[i].Name = names.Lookup(records[i].Address)
		}
	}

	snapshot := &domain.Snapshot{
		ID:            uuid.New().String(),
		Source:        f.url,
		FetchedAt:     utils.NowUTC(),
		Orchestrators: records,
	}

	f.logger.Info("Fetched capabilities snapshot",
		"snapshot_id", snapshot.ID,
		"orchestrators", len(snapshot.Orchestrators),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return snapshot, nil
}

// URL returns the configured gateway endpoint.
func (f *Fetcher) URL() string {
	return f.url
}
