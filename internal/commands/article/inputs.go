package article

import (
	"fmt"
	"strconv"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagID      = "id"
	flagIDUsage = "the id of the article"

	flagTitle      = "title"
	flagTitleShort = "t"
	flagTitleUsage = "the title of the article"

	flagDescription      = "description"
	flagDescriptionShort = "d"
	flagDescriptionUsage = "the description of the article"
)

type idInputs struct {
	ID int64
}

func (i *idInputs) Flags(fs *pflag.FlagSet) {
	fs.Int64Var(&i.ID, flagID, 0, flagIDUsage)
}

func (i *idInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.ID > 0 {
		return nil
	}

	var answer string
	if err := ui.AskOne(&answer, &survey.Input{Message: "Article ID"}); err != nil {
		return err
	}

	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid article id: %q", answer)
	}
	i.ID = id
	return nil
}

type contentInputs struct {
	Title       string
	Description string
}

func (i *contentInputs) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.Title, flagTitle, flagTitleShort, "", flagTitleUsage)
	fs.StringVarP(&i.Description, flagDescription, flagDescriptionShort, "", flagDescriptionUsage)
}

// resolve prompts for the missing fields, suggesting the provided defaults
func (i *contentInputs) resolve(ui terminal.UI, title, description string) error {
	var questions []*survey.Question

	if i.Title == "" {
		questions = append(questions, &survey.Question{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Title", Default: title},
			Validate: survey.Required,
		})
	}
	if i.Description == "" {
		questions = append(questions, &survey.Question{
			Name:   "description",
			Prompt: &survey.Input{Message: "Description", Default: description},
		})
	}

	if len(questions) > 0 {
		return ui.Ask(i, questions...)
	}
	return nil
}

func requireSession(profile *user.Profile) error {
	if _, ok := profile.LoadToken(); !ok {
		return cli.ErrNotLoggedIn
	}
	return nil
}
