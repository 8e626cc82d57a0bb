package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ENSResolver fetches the address-to-name mapping served by the explorer
// and resolves orchestrator addresses to human-readable names. Resolution
// is strictly best-effort: any failure falls back to the last mapping that
// was fetched successfully, or to raw addresses when none exists.
type ENSResolver struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger

	mu       sync.Mutex
	lastGood NameMap
}

// NameMap maps lowercased orchestrator addresses to display names.
type NameMap map[string]string

// Lookup returns the display name for an address, falling back to the
// address itself when no mapping exists.
func (m NameMap) Lookup(address string) string {
	if name, ok := m[strings.ToLower(address)]; ok {
		return name
	}
	return address
}

// ensEntry mirrors one entry of the explorer ens-data payload.
type ensEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IDShort string `json:"idShort"`
}

// NewENSResolver creates a resolver for the given ens-data endpoint.
func NewENSResolver(url string, timeout time.Duration, logger *slog.Logger) *ENSResolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &ENSResolver{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "ens_resolver"),
	}
}

// Resolve fetches the current name mapping. On failure it logs and returns
// the last successfully fetched mapping, which may be empty.
func (r *ENSResolver) Resolve(ctx context.Context) NameMap {
	names, err := r.fetch(ctx)
	if err != nil {
		r.mu.Lock()
		fallback := r.lastGood
		r.mu.Unlock()

		r.logger.Warn("ENS lookup failed, falling back to addresses",
			"error", err,
			"cached_names", len(fallback),
		)
		return fallback
	}

	r.mu.Lock()
	r.lastGood = names
	r.mu.Unlock()

	return names
}

func (r *ENSResolver) fetch(ctx context.Context) (NameMap, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var entries []ensEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("invalid ens-data payload: %w", err)
	}

	names := make(NameMap, len(entries))
	for _, entry := range entries {
		if entry.ID == "" || entry.Name == "" {
			continue
		}
		names[strings.ToLower(entry.ID)] = entry.Name
	}

	return names, nil
}
