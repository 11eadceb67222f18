package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/morikawa/riskadvisor/internal/common"
)

// WhoAmI prints the current session state and user identity.
func (a *App) WhoAmI() {
	s := a.session.Current()
	fmt.Println("Session:", describe(s))
	if s.User != nil {
		fmt.Printf("  id:    %d\n", s.User.ID)
		fmt.Printf("  name:  %s\n", s.User.Name)
		fmt.Printf("  email: %s\n", s.User.Email)
		fmt.Printf("  role:  %s\n", s.User.Role)
	}
	if s.Err != "" {
		fmt.Printf("  last error: %s\n", s.Err)
	}
}

// Refresh re-validates the session against the server. A transient
// failure keeps the current user.
func (a *App) Refresh(ctx context.Context) {
	if err := a.session.RefreshUser(ctx); err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			fmt.Println("Please login first")
			return
		}
		fmt.Println("Refresh failed, keeping last known user")
		return
	}
	fmt.Println("User refreshed")
}
