// Package store persists the client's two pieces of durable session state:
// the bearer credential and the last-known user snapshot. Both are writable
// only by the session controller, and whenever either is invalidated both
// must be cleared together.
package store

import (
	"context"

	"github.com/morikawa/riskadvisor/internal/client/models"
)

// Store is the persistence boundary for session state.
//
// Absent entries are reported as ("", nil) / (nil, nil), not as errors.
// ClearAll removes both entries with both-or-neither semantics.
type Store interface {
	Credential(ctx context.Context) (string, error)
	SetCredential(ctx context.Context, token string) error
	ClearCredential(ctx context.Context) error

	CachedUser(ctx context.Context) (*models.User, error)
	SetCachedUser(ctx context.Context, u models.User) error
	ClearCachedUser(ctx context.Context) error

	ClearAll(ctx context.Context) error
}
