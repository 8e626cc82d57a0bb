package dto

import "time"

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"Snapshot fetch failed"`
	Message   string    `json:"message" example:"fetch error: unexpected status 500"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-18T12:34:56Z"`
}
