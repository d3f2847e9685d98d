package dhis2

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrJobTimeout indicates that an asynchronous server-side job did not reach
// a terminal state before the polling deadline.
var ErrJobTimeout = errors.New("timed out waiting for job completion")

// ClientError represents a DHIS2 web API error response. Only a small
// allow-list of status codes (401, 403, 404) is treated as a client error;
// every other status is passed through to response decoding.
type ClientError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ClientError) Error() string {
	return fmt.Sprintf("dhis2 client error: status %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *ClientError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsForbidden checks if the error indicates missing authorities
func (e *ClientError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsNotFound checks if the error indicates a missing resource
func (e *ClientError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AsClientError returns the wrapped *ClientError and true if err carries one.
func AsClientError(err error) (*ClientError, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
