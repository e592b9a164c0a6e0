package artic

import (
	"fmt"

	"github.com/mmcdole/artgrid/internal/domain"
)

// ErrorType classifies a failed request
type ErrorType string

const (
	// ErrorTypeTransport means the request never produced a response
	ErrorTypeTransport ErrorType = "transport"
	// ErrorTypeStatus means the API answered with a non-2xx status
	ErrorTypeStatus ErrorType = "status"
	// ErrorTypeDecode means the response body was not the expected JSON
	ErrorTypeDecode ErrorType = "decode"
)

// Error is returned for every failed fetch.
// It matches domain.ErrNetwork with errors.Is and exposes the cause.
type Error struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Type == ErrorTypeStatus && e.Message != "":
		return fmt.Sprintf("artwork API returned %d: %s", e.StatusCode, e.Message)
	case e.Type == ErrorTypeStatus:
		return fmt.Sprintf("artwork API returned %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("artwork API %s error: %v", e.Type, e.Err)
	default:
		return fmt.Sprintf("artwork API %s error", e.Type)
	}
}

// Unwrap exposes both the domain sentinel and the underlying cause
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrNetwork}
	}
	return []error{domain.ErrNetwork, e.Err}
}
