package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Client-assigned error codes. Server-declared codes (validation_error,
// authentication_failed, ...) are passed through unchanged.
const (
	CodeTimeout = "TIMEOUT_ERROR"
	CodeNetwork = "NETWORK_ERROR"
	CodeHTTP    = "HTTP_ERROR"
	CodeUnknown = "UNKNOWN_ERROR"
)

// Error is the single failure type produced by the Client. Callers
// distinguish kinds by Code, never by message text.
//
// StatusCode is zero when the failure happened before an HTTP status was
// available (timeouts, transport errors). Details carries the server's
// structured error payload when one was provided.
type Error struct {
	Code       string
	Message    string
	StatusCode int
	Details    json.RawMessage
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%s, status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Unwrap exposes the original cause for diagnostics.
func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf returns the error code of err if it is an *Error, CodeUnknown
// otherwise.
func CodeOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return CodeUnknown
}

// IsTimeout reports whether err is a request that exceeded its deadline.
func IsTimeout(err error) bool {
	return CodeOf(err) == CodeTimeout
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	return CodeOf(err) == CodeNetwork
}
