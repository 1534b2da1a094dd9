package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying registrar failures.
// Providers wrap these so callers can branch on the category
// without parsing messages.
//
//	return fmt.Errorf("failed to list records: %w", domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the registrar throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict.
	ErrConflict = errors.New("conflict")

	// ErrRecordMissing indicates a target name has no A record in the zone.
	// Records are never created, so this is a per-target failure.
	ErrRecordMissing = errors.New("record does not exist")
)

// APIError is a well-formed response whose status is ERROR.
type APIError struct {
	// Message is the human-readable message returned by the registrar.
	Message string

	// Kind is one of the sentinels above when the message is recognisable.
	Kind error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// TransportError covers everything that prevented a well-formed response:
// connection failures, timeouts, non-JSON bodies and unknown statuses.
type TransportError struct {
	// Op identifies the request, e.g. "POST /ping".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message returns the text shown to the user for a failed registrar call.
// API errors yield the registrar's own message verbatim.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Error()
	}
	return err.Error()
}
