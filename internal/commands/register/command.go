package register

import (
	"context"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/commands/login"
	"github.com/articledesk/articles-cli/internal/session"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagUsername      = "username"
	flagUsernameUsage = "the username of the new account"

	flagEmail      = "email"
	flagEmailUsage = "the email of the new account"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "the password of the new account"
)

type inputs struct {
	Username string
	Email    string
	Password string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Username == "" {
		questions = append(questions, &survey.Question{
			Name:     "username",
			Prompt:   &survey.Input{Message: "Username"},
			Validate: survey.Required,
		})
	}
	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     "email",
			Prompt:   &survey.Input{Message: "Email"},
			Validate: survey.Required,
		})
	}
	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		return ui.Ask(i, questions...)
	}
	return nil
}

// Command is the `register` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Username, flagUsername, "", flagUsernameUsage)
	fs.StringVar(&cmd.inputs.Email, flagEmail, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	sess := clients.Session(profile, profile)

	err := sess.Register(ctx, session.Credentials{
		Username: cmd.inputs.Username,
		Email:    cmd.inputs.Email,
		Password: cmd.inputs.Password,
	})
	if err != nil {
		return err
	}

	profile.SetIdentifier(cmd.inputs.Email)
	if err := profile.Save(); err != nil {
		return err
	}

	login.Greet(ui, sess)
	return nil
}
