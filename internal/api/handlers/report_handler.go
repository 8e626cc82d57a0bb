package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rickstaa/ai-compute-visualizer/internal/api/dto"
	"github.com/rickstaa/ai-compute-visualizer/internal/domain"
	"github.com/rickstaa/ai-compute-visualizer/internal/service"
)

// ReportHandler handles filtered row and aggregate queries
type ReportHandler struct {
	dashboard service.Dashboard
}

// NewReportHandler creates a new report handler
func NewReportHandler(dashboard service.Dashboard) *ReportHandler {
	return &ReportHandler{
		dashboard: dashboard,
	}
}

// selectionFromQuery builds the filter selection from repeatable query
// parameters. Absent parameters mean "no restriction".
func selectionFromQuery(c *gin.Context) domain.FilterSelection {
	return domain.FilterSelection{
		GPUModels:    c.QueryArray("gpu_model"),
		Capabilities: c.QueryArray("capability"),
	}
}

// isPipelineError reports whether err is one of the two recoverable
// pipeline error kinds that surface as a banner instead of a failure.
func isPipelineError(err error) bool {
	return errors.Is(err, domain.ErrFetch) || errors.Is(err, domain.ErrParse)
}

// GetReport godoc
// @Summary Get the dashboard report
// @Description Filtered rows plus GPU, orchestrator and capability distributions computed over the current snapshot
// @Tags report
// @Accept json
// @Produce json
// @Param gpu_model query []string false "GPU models to include (repeatable; none selects all)"
// @Param capability query []string false "Capability names to include (repeatable; none selects all)"
// @Success 200 {object} dto.ReportResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	result, err := h.dashboard.Query(c.Request.Context(), selectionFromQuery(c))
	if err != nil {
		if isPipelineError(err) {
			// Non-fatal: the dashboard stays interactive against an empty
			// dataset until the next successful fetch.
			c.JSON(http.StatusOK, dto.EmptyReportResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:     "Failed to build report",
			Message:   "Internal server error occurred while building the report",
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(result))
}

// ListRows godoc
// @Summary List filtered rows
// @Description Flattened (orchestrator, GPU, capability) rows restricted to the given selection
// @Tags report
// @Accept json
// @Produce json
// @Param gpu_model query []string false "GPU models to include (repeatable; none selects all)"
// @Param capability query []string false "Capability names to include (repeatable; none selects all)"
// @Success 200 {object} dto.RowListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/rows [get]
func (h *ReportHandler) ListRows(c *gin.Context) {
	result, err := h.dashboard.Query(c.Request.Context(), selectionFromQuery(c))
	if err != nil {
		if isPipelineError(err) {
			c.JSON(http.StatusOK, dto.EmptyRowListResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:     "Failed to list rows",
			Message:   "Internal server error occurred while listing rows",
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToRowListResponse(result.Report.Rows))
}

// GetFilters godoc
// @Summary List filter options
// @Description Distinct GPU models and capability names of the current snapshot, for the filter multi-selects
// @Tags report
// @Accept json
// @Produce json
// @Success 200 {object} dto.FiltersResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/filters [get]
func (h *ReportHandler) GetFilters(c *gin.Context) {
	result, err := h.dashboard.Query(c.Request.Context(), domain.FilterSelection{})
	if err != nil {
		if isPipelineError(err) {
			c.JSON(http.StatusOK, dto.EmptyFiltersResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:     "Failed to list filter options",
			Message:   "Internal server error occurred while listing filter options",
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToFiltersResponse(result))
}
