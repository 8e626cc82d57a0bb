package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rickstaa/ai-compute-visualizer/internal/api/handlers"
	"github.com/rickstaa/ai-compute-visualizer/internal/api/middleware"
	"github.com/rickstaa/ai-compute-visualizer/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router manages API routing and handlers
type Router struct {
	engine          *gin.Engine
	reportHandler   *handlers.ReportHandler
	snapshotHandler *handlers.SnapshotHandler
}

// NewRouter creates a new API router with all handlers initialized
func NewRouter(dashboard service.Dashboard) *Router {
	router := &Router{
		engine:          gin.New(),
		reportHandler:   handlers.NewReportHandler(dashboard),
		snapshotHandler: handlers.NewSnapshotHandler(dashboard),
	}

	router.setupMiddleware()
	router.setupRoutes()

	return router
}

// setupMiddleware configures global middleware
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.LoggingMiddleware())
	r.engine.Use(middleware.ErrorHandlerMiddleware())

	// Recovery middleware (catch panics)
	r.engine.Use(gin.Recovery())
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Health check
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "healthy",
		})
	})

	// Swagger UI - serves OpenAPI documentation at /swagger/index.html
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/report", r.reportHandler.GetReport)
		v1.GET("/rows", r.reportHandler.ListRows)
		v1.GET("/filters", r.reportHandler.GetFilters)

		v1.GET("/snapshot", r.snapshotHandler.GetSnapshot)
		v1.POST("/refresh", r.snapshotHandler.Refresh)
		v1.GET("/stats", r.snapshotHandler.GetStats)
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
