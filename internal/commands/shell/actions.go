package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/session"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

var errMissingID = cli.NewErr("an article id is required, e.g. edit 12")

type authAnswers struct {
	Username   string
	Email      string
	Identifier string
	Password   string
}

func (r *repl) registerAccount(ctx context.Context, args []string) error {
	var answers authAnswers
	if err := r.ui.Ask(&answers,
		&survey.Question{Name: "username", Prompt: &survey.Input{Message: "Username"}, Validate: survey.Required},
		&survey.Question{Name: "email", Prompt: &survey.Input{Message: "Email"}, Validate: survey.Required},
		&survey.Question{Name: "password", Prompt: &survey.Password{Message: "Password"}, Validate: survey.Required},
	); err != nil {
		return err
	}

	if err := r.sess.Register(ctx, session.Credentials{
		Username: answers.Username,
		Email:    answers.Email,
		Password: answers.Password,
	}); err != nil {
		return err
	}

	r.remember(answers.Email)
	r.greet()
	return nil
}

func (r *repl) login(ctx context.Context, args []string) error {
	var defaultIdentifier string
	if r.persist {
		defaultIdentifier = r.profile.Identifier()
	}

	var answers authAnswers
	if err := r.ui.Ask(&answers,
		&survey.Question{Name: "identifier", Prompt: &survey.Input{Message: "Email or Username", Default: defaultIdentifier}, Validate: survey.Required},
		&survey.Question{Name: "password", Prompt: &survey.Password{Message: "Password"}, Validate: survey.Required},
	); err != nil {
		return err
	}

	creds := session.Credentials{Username: answers.Identifier, Password: answers.Password}
	if strings.Contains(answers.Identifier, "@") {
		creds = session.Credentials{Email: answers.Identifier, Password: answers.Password}
	}

	if err := r.sess.Login(ctx, creds); err != nil {
		return err
	}

	r.remember(answers.Identifier)
	r.greet()
	return nil
}

// remember saves the identifier to the profile when the session is persisted
func (r *repl) remember(identifier string) {
	if !r.persist {
		return
	}
	r.profile.SetIdentifier(identifier)
	if err := r.profile.Save(); err != nil {
		r.ui.Print(terminal.NewWarningLog("Failed to save profile: %s", err))
	}
}

func (r *repl) logout(ctx context.Context, args []string) error {
	if !r.sess.IsLoggedIn() {
		r.ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}
	if err := r.sess.Logout(); err != nil {
		return err
	}
	r.ui.Print(terminal.NewTextLog("Successfully logged out"))
	return nil
}

func (r *repl) whoami(ctx context.Context, args []string) error {
	if !r.sess.IsLoggedIn() {
		r.ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	p, ok := r.sess.Profile()
	if !ok {
		r.ui.Print(terminal.NewTextLog("Logged in, the user profile has not been loaded"))
		return nil
	}
	r.ui.Print(terminal.NewTextLog("Logged in as %s (%s)", p.Username, p.Email))
	return nil
}

func (r *repl) list(ctx context.Context, args []string) error {
	if !r.sess.IsLoggedIn() {
		return cli.ErrNotLoggedIn
	}

	articles := r.sess.Articles().Collection().All()

	rows := make([]map[string]interface{}, 0, len(articles))
	for _, article := range articles {
		var updated string
		if at := article.Attributes.UpdatedAt; at != nil {
			updated = at.UTC().Format(time.RFC3339)
		}
		rows = append(rows, map[string]interface{}{
			"ID":          article.ID,
			"Title":       article.Attributes.Title,
			"Description": article.Attributes.Description,
			"Updated":     updated,
		})
	}

	r.ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d article(s)", len(articles)),
		[]string{"ID", "Title", "Description", "Updated"},
		rows...,
	))
	return nil
}

func (r *repl) refresh(ctx context.Context, args []string) error {
	if !r.sess.IsLoggedIn() {
		return cli.ErrNotLoggedIn
	}
	return terminal.Spin(r.ui, "Refreshing", func() error { return r.sess.Refresh(ctx) })
}

type articleAnswers struct {
	Title       string
	Description string
}

func (r *repl) askArticle(title, description string) (articleAnswers, error) {
	answers := articleAnswers{title, description}
	err := r.ui.Ask(&answers,
		&survey.Question{Name: "title", Prompt: &survey.Input{Message: "Title", Default: title}, Validate: survey.Required},
		&survey.Question{Name: "description", Prompt: &survey.Input{Message: "Description", Default: description}},
	)
	return answers, err
}

func (r *repl) create(ctx context.Context, args []string) error {
	if !r.sess.IsLoggedIn() {
		return cli.ErrNotLoggedIn
	}

	draft := r.sess.Articles().Draft()

	answers, err := r.askArticle(draft.Values())
	if err != nil {
		return err
	}
	draft.Set(answers.Title, answers.Description)

	_, err = r.sess.Articles().Create(ctx, answers.Title, answers.Description)
	return err
}

func (r *repl) edit(ctx context.Context, args []string) error {
	if !r.sess.IsLoggedIn() {
		return cli.ErrNotLoggedIn
	}

	id, err := parseID(args)
	if err != nil {
		return err
	}

	current, ok := r.sess.Articles().Collection().Get(id)
	if !ok {
		r.ui.Print(terminal.NewWarningLog("Article %d was not found in your articles", id))
	}

	answers, err := r.askArticle(current.Attributes.Title, current.Attributes.Description)
	if err != nil {
		return err
	}

	return r.sess.Articles().Edit(ctx, id, answers.Title, answers.Description)
}

func (r *repl) delete(ctx context.Context, args []string) error {
	if !r.sess.IsLoggedIn() {
		return cli.ErrNotLoggedIn
	}

	id, err := parseID(args)
	if err != nil {
		return err
	}

	proceed, err := r.ui.Confirm("Are you sure you want to delete article %d?", id)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	return r.sess.Articles().Delete(ctx, id)
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errMissingID
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid article id: %q", args[0])
	}
	return id, nil
}
