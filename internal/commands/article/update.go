package article

import (
	"context"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandUpdate is the `article update` command
type CommandUpdate struct {
	id      idInputs
	content contentInputs
}

// Flags is the command flags
func (cmd *CommandUpdate) Flags(fs *pflag.FlagSet) {
	cmd.id.Flags(fs)
	cmd.content.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CommandUpdate) Inputs() cli.InputResolver {
	return &cmd.id
}

// Handler is the command handler
func (cmd *CommandUpdate) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := requireSession(profile); err != nil {
		return err
	}

	m := clients.Articles(profile, profile)
	if err := terminal.Spin(ui, "Loading articles", func() error { return m.Load(ctx) }); err != nil {
		return err
	}

	current, ok := m.Collection().Get(cmd.id.ID)
	if !ok {
		ui.Print(terminal.NewWarningLog("Article %d was not found in your articles", cmd.id.ID))
	}

	if err := cmd.content.resolve(ui, current.Attributes.Title, current.Attributes.Description); err != nil {
		return err
	}

	return m.Edit(ctx, cmd.id.ID, cmd.content.Title, cmd.content.Description)
}
