package dto

import (
	"testing"
	"time"

	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
	"github.com/rickstaa/ai-compute-visualizer/internal/report"
	"github.com/rickstaa/ai-compute-visualizer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *service.QueryResult {
	rows := []domain.FlatRow{
		{OrchestratorID: "0xA", OrchestratorName: "a-very-long-orchestrator.eth", GPUModel: "RTX 4090", Capability: "text-to-image", Ready: true, MemoryTotalGB: 24.0, MemoryFreeGB: 21.5},
		{OrchestratorID: "0xA", OrchestratorName: "a-very-long-orchestrator.eth", GPUModel: "RTX 4090", Capability: "upscale", Ready: true, MemoryTotalGB: 24.0, MemoryFreeGB: 21.5},
		{OrchestratorID: "0xB", OrchestratorName: "0xB", GPUModel: "H100", Capability: "llm", Ready: true},
	}

	return &service.QueryResult{
		Snapshot: &domain.Snapshot{
			ID:        "snap-1",
			Source:    "https://gateway.example.com/capabilities",
			FetchedAt: time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
			Orchestrators: []domain.OrchestratorRecord{
				{Address: "0xA"},
				{Address: "0xB"},
			},
		},
		Report:       report.Build(rows, domain.FilterSelection{}),
		GPUModels:    []string{"RTX 4090", "H100"},
		Capabilities: []string{"text-to-image", "upscale", "llm"},
		TotalRows:    len(rows),
		Skipped:      []domain.SkippedRecord{{OrchestratorID: "0xC", Reason: "gpu missing model name"}},
	}
}

func TestToRowResponse(t *testing.T) {
	row := domain.FlatRow{
		OrchestratorID:   "0xA",
		OrchestratorName: "alpha.eth",
		GPUModel:         "RTX 4090",
		Capability:       "text-to-image",
		Ready:            true,
		MemoryTotalGB:    24.0,
		MemoryFreeGB:     21.5,
	}

	resp := ToRowResponse(row)
	assert.Equal(t, "0xA", resp.OrchestratorID)
	assert.Equal(t, "alpha.eth", resp.OrchestratorName)
	assert.Equal(t, "RTX 4090", resp.GPUModel)
	assert.Equal(t, "text-to-image", resp.Capability)
	assert.True(t, resp.Ready)
	assert.Equal(t, 24.0, resp.MemoryTotalGB)
	assert.Equal(t, 21.5, resp.MemoryFreeGB)
}

func TestToRowListResponse(t *testing.T) {
	result := sampleResult()

	resp := ToRowListResponse(result.Report.Rows)
	require.Len(t, resp.Rows, 3)
	assert.Equal(t, 3, resp.Total)
	assert.Empty(t, resp.Error)
}

func TestToRowListResponse_EmptyRows(t *testing.T) {
	resp := ToRowListResponse(nil)
	assert.NotNil(t, resp.Rows, "rows must serialize as [] not null")
	assert.Equal(t, 0, resp.Total)
}

func TestEmptyRowListResponse(t *testing.T) {
	resp := EmptyRowListResponse("fetch failed: connection refused")
	assert.NotNil(t, resp.Rows)
	assert.Empty(t, resp.Rows)
	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, "fetch failed: connection refused", resp.Error)
}

func TestToSnapshotResponse(t *testing.T) {
	resp := ToSnapshotResponse(sampleResult())
	require.NotNil(t, resp)

	assert.Equal(t, "snap-1", resp.ID)
	assert.Equal(t, "https://gateway.example.com/capabilities", resp.Source)
	assert.Equal(t, "2026-08-26T12:00:00Z", resp.FetchedAt)
	assert.Equal(t, 2, resp.OrchestratorCount)
	assert.Equal(t, 3, resp.RowCount)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "0xC", resp.Skipped[0].OrchestratorID)
	assert.Empty(t, resp.Error)
}

func TestToSnapshotResponse_Nil(t *testing.T) {
	assert.Nil(t, ToSnapshotResponse(nil))
	assert.Nil(t, ToSnapshotResponse(&service.QueryResult{}))
}

func TestToReportResponse(t *testing.T) {
	resp := ToReportResponse(sampleResult())

	require.NotNil(t, resp.Snapshot)
	assert.Equal(t, "snap-1", resp.Snapshot.ID)
	require.Len(t, resp.Rows, 3)

	assert.Equal(t, map[string]int{"RTX 4090": 2, "H100": 1}, resp.GPUDistribution)
	assert.Equal(t, map[string]int{"0xA": 2, "0xB": 1}, resp.OrchestratorDistribution)
	assert.Equal(t, map[string]int{"text-to-image": 1, "upscale": 1, "llm": 1}, resp.CapabilityDistribution)

	// Long names are abbreviated for chart labels; short ones pass through.
	assert.Equal(t, "a-very-long-orc...", resp.OrchestratorNames["0xA"])
	assert.Equal(t, "0xB", resp.OrchestratorNames["0xB"])

	assert.Equal(t, 3, resp.Totals.Rows)
	assert.Equal(t, 2, resp.Totals.Orchestrators)
	assert.Equal(t, 2, resp.Totals.GPUModels)
	assert.Equal(t, 3, resp.Totals.Capabilities)
}

func TestEmptyReportResponse(t *testing.T) {
	resp := EmptyReportResponse("parse failed: missing orchestrator list")

	assert.Nil(t, resp.Snapshot)
	assert.NotNil(t, resp.Rows)
	assert.Empty(t, resp.Rows)
	assert.NotNil(t, resp.GPUDistribution)
	assert.NotNil(t, resp.OrchestratorDistribution)
	assert.NotNil(t, resp.CapabilityDistribution)
	assert.NotNil(t, resp.OrchestratorNames)
	assert.Equal(t, "parse failed: missing orchestrator list", resp.Error)
}

func TestToFiltersResponse(t *testing.T) {
	resp := ToFiltersResponse(sampleResult())
	assert.Equal(t, []string{"RTX 4090", "H100"}, resp.GPUModels)
	assert.Equal(t, []string{"text-to-image", "upscale", "llm"}, resp.Capabilities)
	assert.Empty(t, resp.Error)
}

func TestEmptyFiltersResponse(t *testing.T) {
	resp := EmptyFiltersResponse("fetch failed")
	assert.NotNil(t, resp.GPUModels)
	assert.NotNil(t, resp.Capabilities)
	assert.Empty(t, resp.GPUModels)
	assert.Empty(t, resp.Capabilities)
	assert.Equal(t, "fetch failed", resp.Error)
}

func TestToRefreshResponse(t *testing.T) {
	snapshot := &domain.Snapshot{
		ID:            "snap-2",
		FetchedAt:     time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
		Orchestrators: []domain.OrchestratorRecord{{Address: "0xA"}},
	}

	resp := ToRefreshResponse(snapshot)
	assert.Equal(t, "snap-2", resp.SnapshotID)
	assert.Equal(t, "2026-08-26T12:00:00Z", resp.FetchedAt)
	assert.Equal(t, 1, resp.OrchestratorCount)
}

func TestToStatsResponse(t *testing.T) {
	resp := ToStatsResponse(service.Stats{Fetches: 4, FetchErrors: 1, ParseErrors: 2, CacheHits: 7})
	assert.Equal(t, int64(4), resp.Fetches)
	assert.Equal(t, int64(1), resp.FetchErrors)
	assert.Equal(t, int64(2), resp.ParseErrors)
	assert.Equal(t, int64(7), resp.CacheHits)
}
