package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/rickstaa/ai-compute-visualizer/internal/api/dto"
	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
	"github.com/rickstaa/ai-compute-visualizer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotHandler_GetSnapshot(t *testing.T) {
	mockDashboard := &MockDashboard{
		QueryFunc: func(ctx context.Context, selection domain.FilterSelection) (*service.QueryResult, error) {
			assert.True(t, selection.IsEmpty(), "snapshot metadata is computed over the unfiltered view")
			return queryResultFixture(selection), nil
		},
	}

	router, w := setupGinTest()
	handler := NewSnapshotHandler(mockDashboard)
	router.GET("/api/v1/snapshot", handler.GetSnapshot)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/snapshot", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.SnapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "snap-1", response.ID)
	assert.Equal(t, 2, response.OrchestratorCount)
	assert.Equal(t, 3, response.RowCount)
	assert.Empty(t, response.Error)
}

func TestSnapshotHandler_GetSnapshot_FetchErrorIsBanner(t *testing.T) {
	mockDashboard := &MockDashboard{
		QueryFunc: func(ctx context.Context, selection domain.FilterSelection) (*service.QueryResult, error) {
			return nil, fmt.Errorf("%w: gateway down", domain.ErrFetch)
		},
	}

	router, w := setupGinTest()
	handler := NewSnapshotHandler(mockDashboard)
	router.GET("/api/v1/snapshot", handler.GetSnapshot)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/snapshot", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.SnapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.ID)
	assert.Contains(t, response.Error, "gateway down")
}

func TestSnapshotHandler_Refresh(t *testing.T) {
	refreshed := false
	mockDashboard := &MockDashboard{
		RefreshFunc: func(ctx context.Context) (*domain.Snapshot, error) {
			refreshed = true
			return &domain.Snapshot{
				ID:            "snap-2",
				FetchedAt:     time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
				Orchestrators: []domain.OrchestratorRecord{{Address: "0xA"}},
			}, nil
		},
	}

	router, w := setupGinTest()
	handler := NewSnapshotHandler(mockDashboard)
	router.POST("/api/v1/refresh", handler.Refresh)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/refresh", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, refreshed)

	var response dto.RefreshResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "snap-2", response.SnapshotID)
	assert.Equal(t, 1, response.OrchestratorCount)
}

func TestSnapshotHandler_Refresh_FetchErrorIs502(t *testing.T) {
	mockDashboard := &MockDashboard{
		RefreshFunc: func(ctx context.Context) (*domain.Snapshot, error) {
			return nil, fmt.Errorf("%w: gateway down", domain.ErrFetch)
		},
	}

	router, w := setupGinTest()
	handler := NewSnapshotHandler(mockDashboard)
	router.POST("/api/v1/refresh", handler.Refresh)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/refresh", nil)
	router.ServeHTTP(w, req)

	// An explicit refresh reports its failure instead of a banner.
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Snapshot refresh failed", response.Error)
	assert.Contains(t, response.Message, "gateway down")
}

func TestSnapshotHandler_GetStats(t *testing.T) {
	mockDashboard := &MockDashboard{
		StatsFunc: func() service.Stats {
			return service.Stats{Fetches: 5, FetchErrors: 1, ParseErrors: 0, CacheHits: 12}
		},
	}

	router, w := setupGinTest()
	handler := NewSnapshotHandler(mockDashboard)
	router.GET("/api/v1/stats", handler.GetStats)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(5), response.Fetches)
	assert.Equal(t, int64(1), response.FetchErrors)
	assert.Equal(t, int64(0), response.ParseErrors)
	assert.Equal(t, int64(12), response.CacheHits)
}
