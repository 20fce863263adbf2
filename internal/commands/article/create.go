package article

import (
	"context"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/spf13/pflag"
)

type createInputs struct {
	contentInputs
}

func (i *createInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	return i.resolve(ui, "", "")
}

// CommandCreate is the `article create` command
type CommandCreate struct {
	inputs createInputs
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := requireSession(profile); err != nil {
		return err
	}

	article, err := clients.Articles(profile, profile).Create(ctx, cmd.inputs.Title, cmd.inputs.Description)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewDebugLog("Article ID: %d", article.ID))
	return nil
}
