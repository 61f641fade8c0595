package myshows

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid myshows configuration")
)

// LoginError indicates the authentication exchange failed. It covers
// transport failures, non-2xx statuses from the session endpoint, and
// service-reported login errors.
type LoginError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *LoginError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("myshows login failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("myshows login failed: %s", e.Message)
}

// Unwrap returns the underlying transport error, if any
func (e *LoginError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx response from the RPC endpoint
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("myshows API error: status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// RPCError represents a JSON-RPC error object returned by the service,
// tagged with the method that produced it.
type RPCError struct {
	Method  string
	Message string
	Code    int
}

// Error implements the error interface
func (e *RPCError) Error() string {
	return fmt.Sprintf("myshows RPC error for method %s: %s", e.Method, e.Message)
}
