package handlers

import (
	"context"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
	"github.com/rickstaa/ai-compute-visualizer/internal/service"
)

// MockDashboard implements service.Dashboard for testing
type MockDashboard struct {
	QueryFunc   func(ctx context.Context, selection domain.FilterSelection) (*service.QueryResult, error)
	RefreshFunc func(ctx context.Context) (*domain.Snapshot, error)
	StatsFunc   func() service.Stats
}

func (m *MockDashboard) Query(ctx context.Context, selection domain.FilterSelection) (*service.QueryResult, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, selection)
	}
	return nil, domain.ErrSnapshotNotFound
}

func (m *MockDashboard) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil, domain.ErrFetch
}

func (m *MockDashboard) Stats() service.Stats {
	if m.StatsFunc != nil {
		return m.StatsFunc()
	}
	return service.Stats{}
}

func setupGinTest() (*gin.Engine, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	w := httptest.NewRecorder()
	return router, w
}
