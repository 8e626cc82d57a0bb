package domain

import "time"

// Snapshot is one point-in-time view of the network's advertised GPU and
// capability state, as fetched from the gateway. A snapshot is immutable
// once built and is replaced wholesale by the next successful fetch -- no
// history is kept.
type Snapshot struct {
	// ID uniquely identifies this fetch. Assigned at fetch time.
	ID string `json:"id"`

	// Source is the URL the snapshot was fetched from.
	Source string `json:"source"`

	// FetchedAt is when the gateway was queried (UTC).
	FetchedAt time.Time `json:"fetched_at"`

	// Orchestrators holds the advertised records in gateway order.
	Orchestrators []OrchestratorRecord `json:"orchestrators"`
}

// OrchestratorRecord is one network participant advertising GPU resources
// and AI capabilities.
type OrchestratorRecord struct {
	// Address is the on-chain identifier of the orchestrator.
	// Records without an address are skipped during flattening.
	Address string `json:"address"`

	// Name is the resolved display name (ENS), falling back to Address.
	Name string `json:"name"`

	// URI is the orchestrator's service endpoint, if advertised.
	URI string `json:"uri,omitempty"`

	// GPUs are the advertised GPU resources, in gateway order.
	GPUs []GPURecord `json:"gpus"`

	// Capabilities are the AI task names this orchestrator can execute,
	// in gateway order.
	Capabilities []string `json:"capabilities"`
}

// GPURecord is a single GPU resource advertised by an orchestrator.
type GPURecord struct {
	// ModelName is the GPU model, e.g. "NVIDIA GeForce RTX 4090".
	// Records without a model name are skipped during flattening.
	ModelName string `json:"model_name"`

	// Ready reports whether the GPU is currently able to accept jobs.
	// Unready GPUs are excluded from the flattened view entirely.
	Ready bool `json:"ready"`

	// MemoryTotalGB and MemoryFreeGB are advertised VRAM figures in
	// gigabytes. Zero when the gateway omits them.
	MemoryTotalGB float64 `json:"memory_total_gb,omitempty"`
	MemoryFreeGB  float64 `json:"memory_free_gb,omitempty"`
}

// FlatRow is one denormalized (orchestrator, GPU, capability) combination.
// Rows are derived from a snapshot on every query and never stored; every
// row traces back to a GPURecord that was ready.
type FlatRow struct {
	OrchestratorID   string  `json:"orchestrator_id"`
	OrchestratorName string  `json:"orchestrator_name"`
	GPUModel         string  `json:"gpu_model"`
	Capability       string  `json:"capability"`
	Ready            bool    `json:"ready"`
	MemoryTotalGB    float64 `json:"memory_total_gb,omitempty"`
	MemoryFreeGB     float64 `json:"memory_free_gb,omitempty"`
}

// SkippedRecord is the tagged outcome for a malformed source entry that was
// dropped during flattening. Skips are reported, not silently discarded, so
// callers can assert on counts and reasons.
type SkippedRecord struct {
	// OrchestratorID is the address of the owning orchestrator, empty when
	// the orchestrator record itself was malformed.
	OrchestratorID string `json:"orchestrator_id,omitempty"`

	// Reason describes why the entry was dropped.
	Reason string `json:"reason"`
}

// FilterSelection is the transient per-request filter state: which GPU
// models and capability names the caller wants to see. An empty set means
// "no restriction", never "show nothing".
type FilterSelection struct {
	GPUModels    []string `json:"gpu_models"`
	Capabilities []string `json:"capabilities"`
}

// IsEmpty reports whether the selection imposes no restriction at all.
func (s FilterSelection) IsEmpty() bool {
	return len(s.GPUModels) == 0 && len(s.Capabilities) == 0
}
