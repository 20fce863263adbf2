package login

import (
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldIdentifier = "identifier"
	inputFieldPassword   = "password"
)

type inputs struct {
	Identifier string
	Password   string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Identifier == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldIdentifier,
			Prompt:   &survey.Input{Message: "Email or Username", Default: profile.Identifier()},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
