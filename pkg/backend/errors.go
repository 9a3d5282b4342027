package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid backend configuration")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsStatusError reports whether err carries a backend status answer, as opposed
// to a transport failure where no answer arrived.
func IsStatusError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
