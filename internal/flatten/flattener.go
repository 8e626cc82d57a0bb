package flatten

import (
	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
)

// Skip reasons reported for malformed source entries.
const (
	ReasonMissingAddress = "orchestrator missing address"
	ReasonMissingModel   = "gpu missing model name"
)

// Flatten converts a snapshot into the denormalized row form: one row per
// (orchestrator, ready GPU, capability) combination, in snapshot order.
//
// Flatten is a pure function. It never fails: malformed entries degrade
// into SkippedRecord outcomes instead of aborting the transform, and a
// snapshot with zero orchestrators simply yields zero rows. Unready GPUs
// are excluded entirely; an orchestrator with no ready GPUs or no
// capabilities contributes no rows. Repeated combinations in the source
// repeat in the output, since the repeats feed the distribution counts.
func Flatten(snapshot *domain.Snapshot) ([]domain.FlatRow, []domain.SkippedRecord) {
	rows := make([]domain.FlatRow, 0)
	skipped := make([]domain.SkippedRecord, 0)

	if snapshot == nil {
		return rows, skipped
	}

	for _, orch := range snapshot.Orchestrators {
		if orch.Address == "" {
			skipped = append(skipped, domain.SkippedRecord{
				Reason: ReasonMissingAddress,
			})
			continue
		}

		name := orch.Name
		if name == "" {
			name = orch.Address
		}

		for _, gpu := range orch.GPUs {
			if !gpu.Ready {
				// Excluded by contract, not malformed: only GPUs ready to
				// take jobs are shown.
				continue
			}
			if gpu.ModelName == "" {
				skipped = append(skipped, domain.SkippedRecord{
					OrchestratorID: orch.Address,
					Reason:         ReasonMissingModel,
				})
				continue
			}

			for _, capability := range orch.Capabilities {
				rows = append(rows, domain.FlatRow{
					OrchestratorID:   orch.Address,
					OrchestratorName: name,
					GPUModel:         gpu.ModelName,
					Capability:       capability,
					Ready:            true,
					MemoryTotalGB:    gpu.MemoryTotalGB,
					MemoryFreeGB:     gpu.MemoryFreeGB,
				})
			}
		}
	}

	return rows, skipped
}
