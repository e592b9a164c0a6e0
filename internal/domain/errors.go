package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNetwork indicates the artwork source could not be reached or answered with a failure status
	ErrNetwork = errors.New("artwork source unreachable")

	// ErrStaleResponse indicates a fetch completed after a newer page was requested
	ErrStaleResponse = errors.New("response is for a superseded page request")

	// ErrInvalidPageSize indicates a page size outside the range the source accepts
	ErrInvalidPageSize = errors.New("page size out of range")
)
