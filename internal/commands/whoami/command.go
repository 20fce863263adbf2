package whoami

import (
	"context"
	"fmt"
	"time"

	"github.com/articledesk/articles-cli/internal/auth"
	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/commands/login"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagCheck      = "check"
	flagCheckUsage = "check that the CMS API is reachable"

	flagClaims      = "claims"
	flagClaimsUsage = "show the claims decoded from the session token"
)

// set of whoami table headers
const (
	headerUsername = "Username"
	headerEmail    = "Email"
	headerToken    = "Token"
	headerExpires  = "Expires"
	headerArticles = "Articles"
)

type inputs struct {
	check  bool
	claims bool
}

// Command is the `whoami` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.BoolVar(&cmd.inputs.check, flagCheck, false, flagCheckUsage)
	fs.BoolVar(&cmd.inputs.claims, flagClaims, false, flagClaimsUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if cmd.inputs.check {
		if err := clients.Strapi.Status(ctx); err != nil {
			return cli.NewPrivilegedErr(fmt.Sprintf("failed to reach %s", profile.APIBaseURL()), err)
		}
		ui.Print(terminal.NewTextLog("The CMS API at %s is reachable", profile.APIBaseURL()))
	}

	token, ok := profile.LoadToken()
	if !ok {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	sess := clients.Session(profile, profile)
	_ = terminal.Spin(ui, "Restoring session", func() error {
		sess.Start(ctx)
		return nil
	})

	login.Greet(ui, sess)

	row := map[string]interface{}{
		headerToken:    auth.Redact(token),
		headerExpires:  expires(token),
		headerArticles: sess.Articles().Collection().Len(),
	}
	if p, ok := sess.Profile(); ok {
		row[headerUsername] = p.Username
		row[headerEmail] = p.Email
	} else {
		row[headerUsername] = profile.Identifier()
	}

	ui.Print(terminal.NewTableLog(
		"Current session",
		[]string{headerUsername, headerEmail, headerToken, headerExpires, headerArticles},
		row,
	))

	if cmd.inputs.claims {
		claims, err := auth.ParseClaims(token)
		if err != nil {
			ui.Print(terminal.NewWarningLog("The session token carries no readable claims"))
			return nil
		}
		ui.Print(terminal.NewTitledJSONLog("Token claims", claims))
	}
	return nil
}

func expires(token string) string {
	claims, err := auth.ParseClaims(token)
	if err != nil {
		return "unknown"
	}
	exp, ok := claims.ExpiresAt()
	if !ok {
		return "never"
	}
	return exp.UTC().Format(time.RFC3339)
}
