package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/morikawa/riskadvisor/internal/client/session"
)

func (a *App) prompt() string {
	s := a.session.Current()
	if s.User == nil {
		return "riskadvisor > "
	}
	marker := ""
	if s.Provisional {
		marker = "?"
	}
	return fmt.Sprintf("riskadvisor %s%s > ", s.User.Email, marker)
}

func (a *App) Main(ctx context.Context) {

	fmt.Println("riskadvisor CLI (type 'help' for commands)")

	for {
		fmt.Print(a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.session.Current().IsAuthenticated() {
				fmt.Println("Available commands: whoami, refresh, industries, alcohol-types, consultations, search, analyze, suggest, extract, logout, exit")
			} else {
				fmt.Println("Available commands: login, industries, alcohol-types, exit")
			}

		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI()
		case "refresh":
			a.Refresh(ctx)
		case "clear-error":
			a.session.ClearError()

		case "industries":
			a.Industries(ctx)
		case "alcohol-types":
			a.AlcoholTypes(ctx)

		case "consultations":
			a.Consultations(ctx, strings.Join(args, " "))
		case "search":
			if len(args) == 0 {
				fmt.Println("Usage: search <keyword>")
				continue
			}
			a.SearchConsultations(ctx, strings.Join(args, " "))
		case "suggest":
			a.Suggest(ctx)

		case "analyze":
			a.Analyze(ctx)
		case "extract":
			if len(args) == 0 {
				fmt.Println("Usage: extract <file>")
				continue
			}
			a.Extract(ctx, args[0])

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

// requireAuth gates commands that need a confirmed session. A provisional
// user is not enough.
func (a *App) requireAuth() bool {
	if !a.session.Current().IsAuthenticated() {
		fmt.Println("Please login first")
		return false
	}
	return true
}

func describe(s session.Session) string {
	switch {
	case s.User == nil:
		return string(s.Status)
	case s.Provisional:
		return fmt.Sprintf("%s (provisional: %s)", s.Status, s.User.Email)
	default:
		return fmt.Sprintf("%s (%s)", s.Status, s.User.Email)
	}
}
