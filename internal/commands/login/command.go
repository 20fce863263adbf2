package login

import (
	"context"
	"strings"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/session"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Identifier, flagIdentifier, flagIdentifierShort, "", flagIdentifierUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if _, ok := profile.LoadToken(); ok {
		if existing := profile.Identifier(); existing != "" && existing != cmd.inputs.Identifier {
			proceed, err := ui.Confirm(
				"This action will terminate the existing session for user: %s, would you like to proceed?",
				existing,
			)
			if err != nil {
				return err
			}
			if !proceed {
				return nil
			}
		}
	}

	sess := clients.Session(profile, profile)
	if err := sess.Login(ctx, credentials(cmd.inputs.Identifier, cmd.inputs.Password)); err != nil {
		return err
	}

	profile.SetIdentifier(cmd.inputs.Identifier)
	if err := profile.Save(); err != nil {
		return err
	}

	Greet(ui, sess)
	return nil
}

// Greet welcomes the session's user, if their profile is known
func Greet(ui terminal.UI, sess *session.Manager) {
	if p, ok := sess.Profile(); ok {
		ui.Print(terminal.NewTextLog("Welcome, %s!", p.Username))
	}
}

func credentials(identifier, password string) session.Credentials {
	if strings.Contains(identifier, "@") {
		return session.Credentials{Email: identifier, Password: password}
	}
	return session.Credentials{Username: identifier, Password: password}
}
