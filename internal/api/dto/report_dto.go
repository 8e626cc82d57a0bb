package dto

// RowResponse represents one flattened (orchestrator, GPU, capability)
// combination in API responses. Decouples domain.FlatRow from the API
// contract.
type RowResponse struct {
	OrchestratorID   string  `json:"orchestrator_id" example:"0x9d2b4f1c8e7a6b5d4c3b2a1908f7e6d5c4b3a291"`
	OrchestratorName string  `json:"orchestrator_name" example:"titan-node.eth"`
	GPUModel         string  `json:"gpu_model" example:"NVIDIA GeForce RTX 4090"`
	Capability       string  `json:"capability" example:"text-to-image"`
	Ready            bool    `json:"ready" example:"true"`
	MemoryTotalGB    float64 `json:"memory_total_gb,omitempty" example:"24"`
	MemoryFreeGB     float64 `json:"memory_free_gb,omitempty" example:"21.5"`
}

// RowListResponse wraps the filtered row table.
type RowListResponse struct {
	Rows  []*RowResponse `json:"rows"`
	Total int            `json:"total" example:"42"`

	// Error carries the non-fatal banner message when the snapshot could
	// not be fetched or parsed; the row table is then empty but the
	// endpoint stays usable.
	Error string `json:"error,omitempty" example:"fetch error: unexpected status 500"`
}

// TotalsResponse summarizes the filtered row set.
type TotalsResponse struct {
	Rows          int `json:"rows" example:"42"`
	Orchestrators int `json:"orchestrators" example:"7"`
	GPUModels     int `json:"gpu_models" example:"5"`
	Capabilities  int `json:"capabilities" example:"9"`
}

// SkippedResponse is one malformed source entry dropped during flattening.
type SkippedResponse struct {
	OrchestratorID string `json:"orchestrator_id,omitempty" example:"0x9d2b4f1c8e7a6b5d4c3b2a1908f7e6d5c4b3a291"`
	Reason         string `json:"reason" example:"gpu missing model name"`
}

// SnapshotResponse is the metadata of the snapshot a result was computed
// from.
type SnapshotResponse struct {
	ID                string             `json:"id" example:"9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
	Source            string             `json:"source" example:"https://gateway.example.com/capabilities"`
	FetchedAt         string             `json:"fetched_at" example:"2025-01-18T12:34:56Z"`
	OrchestratorCount int                `json:"orchestrator_count" example:"120"`
	RowCount          int                `json:"row_count" example:"640"`
	Skipped           []*SkippedResponse `json:"skipped"`

	Error string `json:"error,omitempty"`
}

// ReportResponse is the full dashboard payload: filtered rows, the three
// counting distributions, totals and snapshot metadata.
type ReportResponse struct {
	Snapshot *SnapshotResponse `json:"snapshot,omitempty"`
	Rows     []*RowResponse    `json:"rows"`

	GPUDistribution          map[string]int `json:"gpu_distribution"`
	OrchestratorDistribution map[string]int `json:"orchestrator_distribution"`
	CapabilityDistribution   map[string]int `json:"capability_distribution"`

	// OrchestratorNames maps addresses in the orchestrator distribution to
	// abbreviated display names for chart labels.
	OrchestratorNames map[string]string `json:"orchestrator_names"`

	Totals TotalsResponse `json:"totals"`

	// Error carries the non-fatal banner message on fetch/parse failure.
	Error string `json:"error,omitempty"`
}

// FiltersResponse lists the distinct values available to the filter
// multi-selects, in snapshot order.
type FiltersResponse struct {
	GPUModels    []string `json:"gpu_models"`
	Capabilities []string `json:"capabilities"`

	Error string `json:"error,omitempty"`
}

// RefreshResponse acknowledges a manual refresh.
type RefreshResponse struct {
	SnapshotID        string `json:"snapshot_id" example:"9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
	FetchedAt         string `json:"fetched_at" example:"2025-01-18T12:34:56Z"`
	OrchestratorCount int    `json:"orchestrator_count" example:"120"`
}

// StatsResponse exposes pipeline counters.
type StatsResponse struct {
	Fetches     int64 `json:"fetches" example:"12"`
	FetchErrors int64 `json:"fetch_errors" example:"1"`
	ParseErrors int64 `json:"parse_errors" example:"0"`
	CacheHits   int64 `json:"cache_hits" example:"208"`
}
