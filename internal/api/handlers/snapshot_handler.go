package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rickstaa/ai-compute-visualizer/internal/api/dto"
	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
	"github.com/rickstaa/ai-compute-visualizer/internal/service"
)

// SnapshotHandler handles snapshot metadata, manual refresh and stats
type SnapshotHandler struct {
	dashboard service.Dashboard
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(dashboard service.Dashboard) *SnapshotHandler {
	return &SnapshotHandler{
		dashboard: dashboard,
	}
}

// GetSnapshot godoc
// @Summary Get snapshot metadata
// @Description Metadata of the current snapshot: id, fetch time, orchestrator and row counts, skipped records
// @Tags snapshot
// @Accept json
// @Produce json
// @Success 200 {object} dto.SnapshotResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/snapshot [get]
func (h *SnapshotHandler) GetSnapshot(c *gin.Context) {
	result, err := h.dashboard.Query(c.Request.Context(), domain.FilterSelection{})
	if err != nil {
		if isPipelineError(err) {
			c.JSON(http.StatusOK, dto.EmptySnapshotResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:     "Failed to load snapshot",
			Message:   "Internal server error occurred while loading the snapshot",
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToSnapshotResponse(result))
}

// Refresh godoc
// @Summary Refresh the snapshot
// @Description Clear the cached snapshot and fetch a fresh one from the gateway
// @Tags snapshot
// @Accept json
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/refresh [post]
func (h *SnapshotHandler) Refresh(c *gin.Context) {
	snapshot, err := h.dashboard.Refresh(c.Request.Context())
	if err != nil {
		// Refresh is an explicit fetch; report the failure instead of a
		// banner. Subsequent queries serve the empty dataset until a fetch
		// succeeds.
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:     "Snapshot refresh failed",
			Message:   err.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToRefreshResponse(snapshot))
}

// GetStats godoc
// @Summary Get pipeline statistics
// @Description Counters for fetches, fetch/parse errors and cache hits
// @Tags snapshot
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /api/v1/stats [get]
func (h *SnapshotHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToStatsResponse(h.dashboard.Stats()))
}
