// Package common defines shared constants and sentinel errors used across
// the riskadvisor client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Session lifecycle errors.
	ErrAlreadyInitialized = errors.New("session already initialized")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// ErrSuperseded means an operation's result arrived after a newer
	// state-mutating operation had already started, so it was discarded.
	ErrSuperseded = errors.New("superseded by a newer operation")
)
