package profile

import (
	"context"
	"fmt"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/terminal"
)

const (
	headerName     = "Profile"
	headerUser     = "User"
	headerAPIURL   = "API URL"
	loggedOutLabel = "(logged out)"
)

// CommandList is the `profiles` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	profileMetas, err := user.ProfilesIn(profile.Fs(), profile.Dir())
	if err != nil {
		return err
	}

	rows := make([]map[string]interface{}, 0, len(profileMetas))
	for _, meta := range profileMetas {
		p, err := user.NewProfile(meta.Name, user.WithFs(profile.Fs()), user.WithDir(profile.Dir()))
		if err != nil {
			return err
		}
		if err := p.Load(); err != nil {
			return cli.NewErrw(fmt.Sprintf("failed to read profile %s", meta.Name), err)
		}

		identity := loggedOutLabel
		if _, ok := p.LoadToken(); ok {
			identity = p.Identifier()
		}

		rows = append(rows, map[string]interface{}{
			headerName:   meta.Name,
			headerUser:   identity,
			headerAPIURL: p.APIBaseURL(),
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d profile(s)", len(profileMetas)),
		[]string{headerName, headerUser, headerAPIURL},
		rows...,
	))
	return nil
}
