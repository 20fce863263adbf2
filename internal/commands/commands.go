package commands

import (
	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/commands/article"
	"github.com/articledesk/articles-cli/internal/commands/login"
	"github.com/articledesk/articles-cli/internal/commands/logout"
	"github.com/articledesk/articles-cli/internal/commands/profile"
	"github.com/articledesk/articles-cli/internal/commands/register"
	"github.com/articledesk/articles-cli/internal/commands/shell"
	"github.com/articledesk/articles-cli/internal/commands/whoami"
)

// set of commands
var (
	Register = cli.CommandDefinition{
		Command:     &register.Command{},
		Use:         "register",
		Aliases:     []string{"signup"},
		Description: "Create a new account and start its session",
		Help: `Create a new account and start its session

	The account is created with a username, an email and a password. Once created,
	the session token is stored in the current profile so that later commands are
	authenticated.`,
	}
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Log in with your email or username and password",
		Help: `Log in with your email or username and password

	An identifier containing "@" is sent as an email, anything else as a username.
	Logging in as a different user ends the session stored in the current profile.`,
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "End the current user's session",
		Help:        "Remove the session token from the current profile. The server is not contacted.",
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's details",
		Help:        "Display the current user's details, or check that the CMS API is reachable with --check",
	}

	Article = cli.CommandDefinition{
		Use:         "article",
		Aliases:     []string{"articles"},
		Description: "Manage the articles of the current user",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "article list",
				Description: "List your articles",
				Command:     &article.CommandList{},
			},
			{
				Use:         "create",
				Display:     "article create",
				Description: "Create an article",
				Command:     &article.CommandCreate{},
			},
			{
				Use:         "update",
				Aliases:     []string{"edit"},
				Display:     "article update",
				Description: "Update the title and description of an article",
				Command:     &article.CommandUpdate{},
			},
			{
				Use:         "delete",
				Aliases:     []string{"rm"},
				Display:     "article delete",
				Description: "Delete an article",
				Command:     &article.CommandDelete{},
			},
		},
	}

	Shell = cli.CommandDefinition{
		Command:     &shell.Command{},
		Use:         "shell",
		Description: "Start an interactive session",
		Help: `Start an interactive session

	The shell keeps one session and your articles in memory between commands, so
	changes are applied locally as soon as the server confirms them. Use --ephemeral
	to keep the session token out of the profile.`,
	}

	Profiles = cli.CommandDefinition{
		Command:     &profile.CommandList{},
		Use:         "profiles",
		Description: "List the profiles stored on this machine",
	}
)
