package report

import (
	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
)

// Aggregates holds the three counting distributions computed over a
// filtered row set. Each maps a category key to the number of rows that
// fall into it.
type Aggregates struct {
	// GPUDistribution counts rows grouped by GPU model.
	GPUDistribution map[string]int `json:"gpu_distribution"`

	// OrchestratorDistribution counts rows grouped by orchestrator address.
	OrchestratorDistribution map[string]int `json:"orchestrator_distribution"`

	// CapabilityDistribution counts rows grouped by capability name.
	CapabilityDistribution map[string]int `json:"capability_distribution"`
}

// Totals summarizes a filtered row set.
type Totals struct {
	Rows          int `json:"rows"`
	Orchestrators int `json:"orchestrators"`
	GPUModels     int `json:"gpu_models"`
	Capabilities  int `json:"capabilities"`
}

// Report is the result of filtering and aggregating a flattened row set.
type Report struct {
	Rows       []domain.FlatRow `json:"rows"`
	Aggregates Aggregates       `json:"aggregates"`
	Totals     Totals           `json:"totals"`
}

// Filter restricts rows to the given selection. A row passes when its GPU
// model is in the selected models (or none are selected) AND its capability
// is in the selected capabilities (or none are selected). An empty
// selection therefore returns the input unchanged: empty means "no
// restriction", never "show nothing".
func Filter(rows []domain.FlatRow, selection domain.FilterSelection) []domain.FlatRow {
	if selection.IsEmpty() {
		return rows
	}

	models := toSet(selection.GPUModels)
	capabilities := toSet(selection.Capabilities)

	filtered := make([]domain.FlatRow, 0, len(rows))
	for _, row := range rows {
		if models != nil {
			if _, ok := models[row.GPUModel]; !ok {
				continue
			}
		}
		if capabilities != nil {
			if _, ok := capabilities[row.Capability]; !ok {
				continue
			}
		}
		filtered = append(filtered, row)
	}

	return filtered
}

// Aggregate computes the three counting distributions over the given rows.
// Each row contributes exactly one to each distribution, so every
// distribution sums to len(rows). Recomputed on every call; there is no
// caching across interactions.
func Aggregate(rows []domain.FlatRow) Aggregates {
	agg := Aggregates{
		GPUDistribution:          make(map[string]int),
		OrchestratorDistribution: make(map[string]int),
		CapabilityDistribution:   make(map[string]int),
	}

	for _, row := range rows {
		agg.GPUDistribution[row.GPUModel]++
		agg.OrchestratorDistribution[row.OrchestratorID]++
		agg.CapabilityDistribution[row.Capability]++
	}

	return agg
}

// Build filters rows by the selection and aggregates the result.
func Build(rows []domain.FlatRow, selection domain.FilterSelection) *Report {
	filtered := Filter(rows, selection)
	agg := Aggregate(filtered)

	return &Report{
		Rows:       filtered,
		Aggregates: agg,
		Totals: Totals{
			Rows:          len(filtered),
			Orchestrators: len(agg.OrchestratorDistribution),
			GPUModels:     len(agg.GPUDistribution),
			Capabilities:  len(agg.CapabilityDistribution),
		},
	}
}

// Options returns the distinct GPU models and capability names present in
// the rows, in first-seen order. Used to populate the filter multi-selects.
func Options(rows []domain.FlatRow) (models []string, capabilities []string) {
	models = make([]string, 0)
	capabilities = make([]string, 0)

	seenModels := make(map[string]struct{})
	seenCapabilities := make(map[string]struct{})

	for _, row := range rows {
		if _, ok := seenModels[row.GPUModel]; !ok {
			seenModels[row.GPUModel] = struct{}{}
			models = append(models, row.GPUModel)
		}
		if _, ok := seenCapabilities[row.Capability]; !ok {
			seenCapabilities[row.Capability] = struct{}{}
			capabilities = append(capabilities, row.Capability)
		}
	}

	return models, capabilities
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
