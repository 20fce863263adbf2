package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/notify"
	"github.com/articledesk/articles-cli/internal/terminal"
	"github.com/articledesk/articles-cli/internal/utils/test/assert"
	"github.com/articledesk/articles-cli/internal/utils/test/mock"

	"github.com/spf13/cobra"
)

type testCommand struct {
	handler func(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error
}

func (cmd testCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error {
	return cmd.handler(ctx, profile, ui, clients)
}

func setupFactory(t *testing.T, command Command, args ...string) (*CommandFactory, *cobra.Command, *bytes.Buffer) {
	t.Helper()

	out, ui := mock.NewUI()

	factory := newCommandFactory(mock.NewProfile(t))
	factory.ui = ui
	factory.outWriter = out
	factory.errWriter = out

	root := &cobra.Command{Use: Name, SilenceErrors: true, SilenceUsage: true}
	root.SetOut(out)
	root.SetErr(out)
	factory.SetGlobalFlags(root.PersistentFlags())
	root.AddCommand(factory.Build(CommandDefinition{Use: "test", Command: command}))
	root.SetArgs(append([]string{"test"}, args...))

	return factory, root, out
}

func TestCommandFactoryRun(t *testing.T) {
	t.Run("should run the handler with the command clients", func(t *testing.T) {
		var called bool
		factory, root, out := setupFactory(t, testCommand{func(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error {
			called = true

			assert.NotNil(t, ctx)
			assert.NotNil(t, clients.Strapi)
			assert.NotNil(t, clients.Logger)

			clients.Notifier.Notify(notify.Success("Article created"))
			return nil
		}})

		assert.Equal(t, 0, factory.Run(root))
		assert.True(t, called, "expected the handler to be called")
		assert.Equal(t, "01:23:45 UTC INFO  Article created\n", out.String())
	})

	t.Run("should resolve the profile flags before running the handler", func(t *testing.T) {
		factory, root, _ := setupFactory(t, testCommand{func(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error {
			assert.Equal(t, "http://localhost:1337/api", profile.APIBaseURL())

			policy, err := profile.MutationPolicy()
			assert.Nil(t, err)
			assert.Equal(t, "write-through", policy.String())
			return nil
		}}, "--api-url", "http://localhost:1337/api", "--mutation-policy", "write-through")

		assert.Equal(t, 0, factory.Run(root))
	})

	t.Run("should print an error that has not been reported", func(t *testing.T) {
		factory, root, out := setupFactory(t, testCommand{func(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error {
			return errors.New("something bad happened")
		}})

		assert.Equal(t, 1, factory.Run(root))
		assert.Equal(t, "01:23:45 UTC ERROR test failed: something bad happened\n", out.String())
	})

	t.Run("should not print an error that has already been reported", func(t *testing.T) {
		factory, root, out := setupFactory(t, testCommand{func(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error {
			clients.Notifier.Notify(notify.Failure("Login failed", "Invalid identifier or password"))
			return notify.Reported(errors.New("Invalid identifier or password"))
		}})

		assert.Equal(t, 1, factory.Run(root))
		assert.Equal(t, "01:23:45 UTC ERROR Login failed: Invalid identifier or password\n", out.String())
	})

	t.Run("should print the suggested commands of an error", func(t *testing.T) {
		factory, root, out := setupFactory(t, testCommand{func(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error {
			return ErrNotLoggedIn
		}})

		assert.Equal(t, 1, factory.Run(root))
		assert.Equal(t, `01:23:45 UTC ERROR test failed: no user is currently logged in
01:23:45 UTC DEBUG Try running instead
  articles-cli login
  articles-cli register
`, out.String())
	})

	t.Run("should print usage for an invalid flag value", func(t *testing.T) {
		factory, root, out := setupFactory(t, testCommand{func(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error {
			t.Fatal("handler must not be called")
			return nil
		}}, "--mutation-policy", "eventually")

		assert.Equal(t, 1, factory.Run(root))
		assert.Contains(t, out.String(), "Usage:")
		assert.Contains(t, out.String(), "unsupported mutation policy 'eventually'")
	})

	t.Run("should track telemetry events when enabled", func(t *testing.T) {
		factory, root, out := setupFactory(t, testCommand{func(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error {
			return nil
		}}, "--telemetry", "stdout")

		assert.Equal(t, 0, factory.Run(root))
		assert.Contains(t, out.String(), "UTC TELEM test: COMMAND_START[]")
		assert.Contains(t, out.String(), "UTC TELEM test: COMMAND_COMPLETE[]")
	})
}
