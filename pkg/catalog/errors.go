package catalog

import (
	"errors"
	"fmt"
)

// ErrorClass represents a classification of fetch failures.
type ErrorClass string

const (
	// ErrorClassTransport represents connection and timeout errors.
	ErrorClassTransport ErrorClass = "transport"

	// ErrorClassRemote represents non-2xx responses from the Admin API.
	ErrorClassRemote ErrorClass = "remote"

	// ErrorClassMalformed represents schema violations in fetched entries.
	ErrorClassMalformed ErrorClass = "malformed"
)

// TransportError wraps a connection-level failure.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog transport error: %v", e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError represents a non-2xx Admin API response.
type RemoteError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("catalog remote error (status %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("catalog remote error (status %d)", e.StatusCode)
}

// MalformedRecordError indicates a fetched entry violates the record schema.
// Unlike transport and remote failures it propagates out of fetch operations:
// a broken normalization contract must not be masked by the partial-result
// policy.
type MalformedRecordError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed catalog record: field %q %s", e.Field, e.Reason)
}

// Classify categorizes a fetch failure for logging and metrics.
func Classify(err error) ErrorClass {
	var malformed *MalformedRecordError
	var remote *RemoteError

	switch {
	case errors.As(err, &malformed):
		return ErrorClassMalformed
	case errors.As(err, &remote):
		return ErrorClassRemote
	default:
		return ErrorClassTransport
	}
}
