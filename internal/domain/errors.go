package domain

import "errors"

// Domain-level errors
var (
	// ErrFetch covers the transport side of a snapshot retrieval: network
	// failures, timeouts and non-2xx gateway responses.
	ErrFetch = errors.New("fetch error")

	// ErrParse covers a retrieved body that is not valid JSON or is missing
	// the orchestrator list the pipeline needs.
	ErrParse = errors.New("parse error")

	// ErrSnapshotNotFound is returned when no cached snapshot is available
	// (never fetched, expired, or cleared by a refresh).
	ErrSnapshotNotFound = errors.New("snapshot not found")

	ErrInvalidInput = errors.New("invalid input")
)
