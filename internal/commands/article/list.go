package article

import (
	"context"
	"fmt"
	"time"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/terminal"
)

// set of article table headers
const (
	headerID          = "ID"
	headerTitle       = "Title"
	headerDescription = "Description"
	headerUpdated     = "Updated"
)

// CommandList is the `article list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := requireSession(profile); err != nil {
		return err
	}

	m := clients.Articles(profile, profile)
	if err := terminal.Spin(ui, "Loading articles", func() error { return m.Load(ctx) }); err != nil {
		return err
	}

	articles := m.Collection().All()

	rows := make([]map[string]interface{}, 0, len(articles))
	for _, article := range articles {
		var updated string
		if at := article.Attributes.UpdatedAt; at != nil {
			updated = at.UTC().Format(time.RFC3339)
		}
		rows = append(rows, map[string]interface{}{
			headerID:          article.ID,
			headerTitle:       article.Attributes.Title,
			headerDescription: article.Attributes.Description,
			headerUpdated:     updated,
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d article(s)", len(articles)),
		[]string{headerID, headerTitle, headerDescription, headerUpdated},
		rows...,
	))
	return nil
}
