package fetcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
)

// The wire format is an external contract owned by the upstream gateway.
// Decoding tolerates additive and unknown fields and fails only on the
// structural absence of the orchestrator list itself. Per-record problems
// (a GPU without a model name, an orchestrator without an address) are kept
// in the normalized snapshot and resolved during flattening, so that a
// partial result is always preferred over an all-or-nothing failure.

// wireEnvelope is the object form of the snapshot document.
// Orchestrators stays raw so that an explicitly empty list can be told
// apart from a missing field.
type wireEnvelope struct {
	Orchestrators    json.RawMessage   `json:"orchestrators"`
	CapabilityNames  map[string]string `json:"capabilities_names"`
}

// wireOrchestrator mirrors one orchestrator entry as served by the gateway.
type wireOrchestrator struct {
	Address string `json:"address"`
	URI     string `json:"orch_uri"`

	// Capabilities may hold capability names directly, or numeric/string
	// ids resolved through the top-level capabilities_names map.
	Capabilities []any `json:"capabilities"`

	// Hardware is the canonical field; GPUs is accepted as an alias.
	Hardware []wireGPU `json:"hardware"`
	GPUs     []wireGPU `json:"gpus"`
}

// wireGPU mirrors one GPU entry as served by the gateway.
type wireGPU struct {
	Name  string `json:"name"`
	Model string `json:"model"`

	// Ready is a pointer so an absent flag can default to true: the
	// gateway only advertises GPUs that are ready to take jobs.
	Ready *bool `json:"ready"`

	// Raw byte figures; optional.
	MemoryTotal float64 `json:"memory_total"`
	MemoryFree  float64 `json:"memory_free"`
}

// parseOrchestrators decodes a snapshot body into normalized orchestrator
// records. The document is either a bare JSON array of orchestrators or an
// object carrying an "orchestrators" array field; anything else wraps
// domain.ErrParse.
func parseOrchestrators(body []byte) ([]domain.OrchestratorRecord, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty response body", domain.ErrParse)
	}

	var (
		wire  []wireOrchestrator
		names map[string]string
	)

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &wire); err != nil {
			return nil, fmt.Errorf("%w: invalid orchestrator array: %v", domain.ErrParse, err)
		}
	case '{':
		var envelope wireEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON body: %v", domain.ErrParse, err)
		}
		if envelope.Orchestrators == nil {
			return nil, fmt.Errorf("%w: missing orchestrator list", domain.ErrParse)
		}
		if err := json.Unmarshal(envelope.Orchestrators, &wire); err != nil {
			return nil, fmt.Errorf("%w: invalid orchestrator list: %v", domain.ErrParse, err)
		}
		names = envelope.CapabilityNames
	default:
		return nil, fmt.Errorf("%w: invalid JSON body", domain.ErrParse)
	}

	records := make([]domain.OrchestratorRecord, 0, len(wire))
	for _, orch := range wire {
		records = append(records, orch.toRecord(names))
	}

	return records, nil
}

// toRecord normalizes a wire orchestrator into a domain record, resolving
// capability ids and applying readiness and name defaults.
func (o wireOrchestrator) toRecord(capabilityNames map[string]string) domain.OrchestratorRecord {
	gpus := o.Hardware
	if len(gpus) == 0 {
		gpus = o.GPUs
	}

	record := domain.OrchestratorRecord{
		Address:      o.Address,
		Name:         o.Address, // resolver may replace with an ENS name
		URI:          o.URI,
		GPUs:         make([]domain.GPURecord, 0, len(gpus)),
		Capabilities: make([]string, 0, len(o.Capabilities)),
	}

	for _, gpu := range gpus {
		record.GPUs = append(record.GPUs, gpu.toRecord())
	}

	for _, capability := range o.Capabilities {
		if name := resolveCapability(capability, capabilityNames); name != "" {
			record.Capabilities = append(record.Capabilities, name)
		}
	}

	return record
}

// toRecord normalizes a wire GPU into a domain record.
func (g wireGPU) toRecord() domain.GPURecord {
	model := g.Name
	if model == "" {
		model = g.Model
	}

	// Absent flag defaults to ready: the gateway only advertises GPUs
	// currently able to accept jobs.
	ready := true
	if g.Ready != nil {
		ready = *g.Ready
	}

	return domain.GPURecord{
		ModelName:     model,
		Ready:         ready,
		MemoryTotalGB: bytesToGB(g.MemoryTotal),
		MemoryFreeGB:  bytesToGB(g.MemoryFree),
	}
}

// resolveCapability maps a wire capability element to a display name.
// String elements are looked up in the names map and fall back to
// themselves; numeric ids fall back to their decimal form.
func resolveCapability(capability any, names map[string]string) string {
	switch v := capability.(type) {
	case string:
		if name, ok := names[v]; ok {
			return name
		}
		return v
	case float64:
		key := strconv.FormatInt(int64(v), 10)
		if name, ok := names[key]; ok {
			return name
		}
		return key
	default:
		return ""
	}
}

// bytesToGB converts raw byte figures to gigabytes, rounded to one decimal.
func bytesToGB(b float64) float64 {
	return math.Round(b/1e9*10) / 10
}
