package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/morikawa/riskadvisor/internal/client/api"
	"github.com/morikawa/riskadvisor/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and attempts to authenticate. Failures
// are shown using the error's message, never its machine code. The
// password buffer is wiped before returning.
func (a *App) Login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			fmt.Printf("Login failed: %s\n", apiErr.Message)
		} else {
			fmt.Printf("Login failed: %v\n", err)
		}
		return
	}

	fmt.Println("Login successful")
}

// Logout ends the session; it always leaves the client unauthenticated,
// even when the server could not be notified.
func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("Logged out")
}
