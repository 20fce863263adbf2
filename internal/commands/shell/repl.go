package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/notify"
	"github.com/articledesk/articles-cli/internal/session"
	"github.com/articledesk/articles-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	surveyterminal "github.com/AlecAivazis/survey/v2/terminal"
)

const (
	promptMessage = "articles"
)

type action struct {
	usage       string
	description string
	run         func(ctx context.Context, args []string) error
}

type repl struct {
	sess    *session.Manager
	profile *user.Profile
	persist bool
	ui      terminal.UI

	actions map[string]action
	order   []string
}

func newREPL(sess *session.Manager, profile *user.Profile, persist bool, ui terminal.UI) *repl {
	r := &repl{sess: sess, profile: profile, persist: persist, ui: ui}

	r.register("help", action{"help", "show the available commands", r.help})
	r.register("register", action{"register", "create an account and log in", r.registerAccount})
	r.register("login", action{"login", "log in to an existing account", r.login})
	r.register("logout", action{"logout", "end the session", r.logout})
	r.register("whoami", action{"whoami", "show the current user", r.whoami})
	r.register("list", action{"list", "show your articles", r.list})
	r.register("refresh", action{"refresh", "fetch your profile and articles again", r.refresh})
	r.register("create", action{"create", "create an article", r.create})
	r.register("edit", action{"edit <id>", "edit an article", r.edit})
	r.register("delete", action{"delete <id>", "delete an article", r.delete})
	r.register("exit", action{"exit", "leave the shell", nil})

	return r
}

func (r *repl) register(name string, a action) {
	if r.actions == nil {
		r.actions = map[string]action{}
	}
	r.actions[name] = a
	r.order = append(r.order, name)
}

func (r *repl) run(ctx context.Context) error {
	if r.sess.Start(ctx) == session.StateAuthenticated {
		r.greet()
	}
	r.ui.Print(terminal.NewTextLog(`Type "help" to see the available commands`))

	for {
		if ctx.Err() != nil {
			return nil
		}

		var line string
		if err := r.ui.AskOne(&line, &survey.Input{Message: r.prompt()}); err != nil {
			if errors.Is(err, surveyterminal.InterruptErr) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		name, args := fields[0], fields[1:]
		if name == "exit" || name == "quit" {
			return nil
		}

		a, ok := r.actions[name]
		if !ok {
			r.ui.Print(terminal.NewWarningLog(`Unknown command "%s", type "help" to see the available commands`, name))
			continue
		}

		if err := a.run(ctx, args); err != nil && !notify.IsReported(err) {
			r.ui.Print(terminal.NewErrorLog(err))
		}
	}
}

func (r *repl) prompt() string {
	if p, ok := r.sess.Profile(); ok {
		return fmt.Sprintf("%s (%s)", promptMessage, p.Username)
	}
	return promptMessage
}

func (r *repl) greet() {
	if p, ok := r.sess.Profile(); ok {
		r.ui.Print(terminal.NewTextLog("Welcome, %s!", p.Username))
	}
}

func (r *repl) help(ctx context.Context, args []string) error {
	rows := make([]map[string]interface{}, 0, len(r.order))
	for _, name := range r.order {
		a := r.actions[name]
		rows = append(rows, map[string]interface{}{
			"Command":     a.usage,
			"Description": a.description,
		})
	}
	r.ui.Print(terminal.NewTableLog("Available commands", []string{"Command", "Description"}, rows...))
	return nil
}
