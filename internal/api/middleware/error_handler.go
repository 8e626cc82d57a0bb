package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rickstaa/ai-compute-visualizer/internal/api/dto"
)

// ErrorHandlerMiddleware handles errors attached to the gin context and
// formats a standardized response when no handler wrote one. Pipeline
// errors never reach this path (handlers map them to banner payloads);
// this is the safety net for everything else.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			slog.Error("Request error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:     "Internal Server Error",
					Message:   err.Error(),
					Timestamp: time.Now(),
				})
			}
		}
	}
}
