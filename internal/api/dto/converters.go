package dto

import (
	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
	"github.com/rickstaa/ai-compute-visualizer/internal/service"
	"github.com/rickstaa/ai-compute-visualizer/pkg/utils"
)

// ToRowResponse converts domain.FlatRow to dto.RowResponse
func ToRowResponse(row domain.FlatRow) *RowResponse {
	return &RowResponse{
		OrchestratorID:   row.OrchestratorID,
		OrchestratorName: row.OrchestratorName,
		GPUModel:         row.GPUModel,
		Capability:       row.Capability,
		Ready:            row.Ready,
		MemoryTotalGB:    row.MemoryTotalGB,
		MemoryFreeGB:     row.MemoryFreeGB,
	}
}

// ToRowListResponse converts filtered rows to dto.RowListResponse
func ToRowListResponse(rows []domain.FlatRow) *RowListResponse {
	responses := make([]*RowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, ToRowResponse(row))
	}

	return &RowListResponse{
		Rows:  responses,
		Total: len(responses),
	}
}

// EmptyRowListResponse builds the usable-but-empty payload served when the
// pipeline failed: no rows, banner set.
func EmptyRowListResponse(banner string) *RowListResponse {
	return &RowListResponse{
		Rows:  []*RowResponse{},
		Error: banner,
	}
}

// ToSkippedResponses converts skip outcomes for API responses.
func ToSkippedResponses(skipped []domain.SkippedRecord) []*SkippedResponse {
	responses := make([]*SkippedResponse, 0, len(skipped))
	for _, s := range skipped {
		responses = append(responses, &SkippedResponse{
			OrchestratorID: s.OrchestratorID,
			Reason:         s.Reason,
		})
	}
	return responses
}

// ToSnapshotResponse converts a query result to snapshot metadata.
// The row count reflects the unfiltered flattened view.
func ToSnapshotResponse(result *service.QueryResult) *SnapshotResponse {
	if result == nil || result.Snapshot == nil {
		return nil
	}

	return &SnapshotResponse{
		ID:                result.Snapshot.ID,
		Source:            result.Snapshot.Source,
		FetchedAt:         utils.FormatTimestamp(result.Snapshot.FetchedAt),
		OrchestratorCount: len(result.Snapshot.Orchestrators),
		RowCount:          result.TotalRows,
		Skipped:           ToSkippedResponses(result.Skipped),
	}
}

// EmptySnapshotResponse builds snapshot metadata for a failed pipeline run.
func EmptySnapshotResponse(banner string) *SnapshotResponse {
	return &SnapshotResponse{
		Skipped: []*SkippedResponse{},
		Error:   banner,
	}
}

// ToReportResponse converts a query result to the full dashboard payload.
func ToReportResponse(result *service.QueryResult) *ReportResponse {
	rep := result.Report

	names := make(map[string]string, len(rep.Aggregates.OrchestratorDistribution))
	for _, row := range rep.Rows {
		if _, ok := names[row.OrchestratorID]; !ok {
			names[row.OrchestratorID] = utils.AbbreviateName(row.OrchestratorName, utils.DefaultNameLength)
		}
	}

	return &ReportResponse{
		Snapshot:                 ToSnapshotResponse(result),
		Rows:                     ToRowListResponse(rep.Rows).Rows,
		GPUDistribution:          rep.Aggregates.GPUDistribution,
		OrchestratorDistribution: rep.Aggregates.OrchestratorDistribution,
		CapabilityDistribution:   rep.Aggregates.CapabilityDistribution,
		OrchestratorNames:        names,
		Totals: TotalsResponse{
			Rows:          rep.Totals.Rows,
			Orchestrators: rep.Totals.Orchestrators,
			GPUModels:     rep.Totals.GPUModels,
			Capabilities:  rep.Totals.Capabilities,
		},
	}
}

// EmptyReportResponse builds the usable-but-empty dashboard payload served
// when the snapshot could not be fetched or parsed. Filters keep operating
// on an empty dataset until the next successful fetch.
func EmptyReportResponse(banner string) *ReportResponse {
	return &ReportResponse{
		Rows:                     []*RowResponse{},
		GPUDistribution:          map[string]int{},
		OrchestratorDistribution: map[string]int{},
		CapabilityDistribution:   map[string]int{},
		OrchestratorNames:        map[string]string{},
		Error:                    banner,
	}
}

// ToFiltersResponse converts a query result to the filter option lists.
func ToFiltersResponse(result *service.QueryResult) *FiltersResponse {
	return &FiltersResponse{
		GPUModels:    result.GPUModels,
		Capabilities: result.Capabilities,
	}
}

// EmptyFiltersResponse builds the filter options payload for a failed run.
func EmptyFiltersResponse(banner string) *FiltersResponse {
	return &FiltersResponse{
		GPUModels:    []string{},
		Capabilities: []string{},
		Error:        banner,
	}
}

// ToRefreshResponse converts a freshly fetched snapshot to the refresh
// acknowledgement.
func ToRefreshResponse(snapshot *domain.Snapshot) *RefreshResponse {
	return &RefreshResponse{
		SnapshotID:        snapshot.ID,
		FetchedAt:         utils.FormatTimestamp(snapshot.FetchedAt),
		OrchestratorCount: len(snapshot.Orchestrators),
	}
}

// ToStatsResponse converts service counters to the API shape.
func ToStatsResponse(stats service.Stats) *StatsResponse {
	return &StatsResponse{
		Fetches:     stats.Fetches,
		FetchErrors: stats.FetchErrors,
		ParseErrors: stats.ParseErrors,
		CacheHits:   stats.CacheHits,
	}
}
