package shell

import (
	"context"

	"github.com/articledesk/articles-cli/internal/auth"
	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagEphemeral      = "ephemeral"
	flagEphemeralUsage = "keep the session token in memory only, leaving the profile untouched"
)

type inputs struct {
	ephemeral bool
}

// Command is the `shell` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.BoolVar(&cmd.inputs.ephemeral, flagEphemeral, false, flagEphemeralUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	var tokens auth.TokenStore = profile
	if cmd.inputs.ephemeral {
		tokens = auth.NewMemoryTokenStore()
	}

	return newREPL(clients.Session(profile, tokens), profile, !cmd.inputs.ephemeral, ui).run(ctx)
}
