package article

import (
	"context"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDelete is the `article delete` command
type CommandDelete struct {
	inputs idInputs
}

// Flags is the command flags
func (cmd *CommandDelete) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CommandDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDelete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := requireSession(profile); err != nil {
		return err
	}

	proceed, err := ui.Confirm("Are you sure you want to delete article %d?", cmd.inputs.ID)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	return clients.Articles(profile, profile).Delete(ctx, cmd.inputs.ID)
}
