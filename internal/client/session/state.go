package session

import "github.com/morikawa/riskadvisor/internal/client/models"

// Status is the lifecycle phase of the client session. Exactly one status
// holds at any time.
type Status string

const (
	// StatusUninitialized: the controller exists but Initialize has not run.
	StatusUninitialized   Status = "uninitialized"
	// StatusInitializing: a persisted credential is being validated against
	// the server. A cached user may be visible as provisional during this
	// phase.
	StatusInitializing    Status = "initializing"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

// Session is an immutable snapshot of the controller's state handed to
// consumers.
//
// User is non-nil whenever status is Authenticated. While Initializing it
// may carry the last-known user with Provisional set; consumers must not
// gate authorization-sensitive actions on a provisional user.
//
// Err and ErrCode are an informational flag on top of the status, not a
// separate state; ClearError resets them without changing Status.
type Session struct {
	Status      Status
	User        *models.User
	Provisional bool
	Err         string
	ErrCode     string
}

// IsAuthenticated reports whether the server has confirmed the current
// credential. Provisional users do not count.
func (s Session) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}
