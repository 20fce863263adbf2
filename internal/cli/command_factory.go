package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/articledesk/articles-cli/internal/auth"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/cloud/strapi"
	"github.com/articledesk/articles-cli/internal/logging"
	"github.com/articledesk/articles-cli/internal/notify"
	"github.com/articledesk/articles-cli/internal/telemetry"
	"github.com/articledesk/articles-cli/internal/terminal"

	surveyterminal "github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile          *user.Profile
	ui               terminal.UI
	uiConfig         terminal.UIConfig
	inReader         surveyterminal.FileReader
	outWriter        io.Writer
	errWriter        io.Writer
	outFile          *os.File
	logLevel         *logging.Level
	logger           *zap.Logger
	telemetryService *telemetry.Service
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	profile, profileErr := user.NewDefaultProfile()
	if profileErr != nil {
		return nil, profileErr
	}
	return newCommandFactory(profile), nil
}

func newCommandFactory(profile *user.Profile) *CommandFactory {
	logLevel := logging.NewLevel()
	return &CommandFactory{
		profile:  profile,
		logLevel: logLevel,
		logger:   logging.New(logLevel.Level, os.Stderr),
	}
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command != nil {

		if command, ok := command.Command.(CommandFlags); ok {
			fs := cmd.Flags()
			fs.SortFlags = false // ensures command flags are added unsorted
			command.Flags(fs)
		}

		cmd.PersistentPreRunE = func(c *cobra.Command, a []string) error {
			factory.ensureUI()

			if err := factory.profile.ResolveFlags(); err != nil {
				return errDisableUsage{err}
			}

			var userID string
			if token, ok := factory.profile.LoadToken(); ok {
				if claims, err := auth.ParseClaims(token); err == nil && claims.UserID != 0 {
					userID = fmt.Sprint(claims.UserID)
				}
			}

			factory.telemetryService = telemetry.NewService(
				factory.profile.Flags.TelemetryMode,
				userID,
				display,
				Version,
				telemetry.WithWriter(factory.outWriter),
				telemetry.WithLogger(factory.logger),
			)
			return nil
		}

		if command, ok := command.Command.(CommandInputs); ok {
			cmd.PreRunE = func(c *cobra.Command, a []string) error {
				if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
					return fmt.Errorf("%s setup failed: %w", display, err)
				}
				return nil
			}
		}

		cmd.RunE = func(c *cobra.Command, a []string) error {
			factory.telemetryService.TrackEvent(telemetry.EventTypeCommandStart)

			err := command.Command.Handler(c.Context(), factory.profile, factory.ui, factory.clients())
			if err != nil {
				factory.telemetryService.TrackEvent(
					telemetry.EventTypeCommandError,
					telemetry.EventData{Key: telemetry.EventDataKeyError, Value: err},
				)
				return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
			}

			factory.telemetryService.TrackEvent(telemetry.EventTypeCommandComplete)
			return nil
		}
	}

	return &cmd
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.telemetryService != nil {
		factory.telemetryService.Close()
	}

	if factory.outFile != nil {
		factory.outFile.Close()
	}

	_ = factory.logger.Sync()
}

// Run executes the command and returns the process exit code
func (factory *CommandFactory) Run(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if notify.IsReported(err) {
		return 1
	}

	handleUsage(cmd, err)

	if factory.ui == nil {
		factory.logger.Error("command failed", zap.Error(err))
		return 1
	}

	logs := []terminal.Log{terminal.NewErrorLog(err)}

	var suggester CommandSuggester
	if errors.As(err, &suggester) {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, suggester.SuggestedCommands()...))
	}

	factory.ui.Print(logs...)
	return 1
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, user.FlagProfile, user.DefaultProfile, user.FlagProfileUsage)
	fs.Var(&factory.profile.Flags.TelemetryMode, telemetry.FlagMode, telemetry.FlagModeUsage)
	fs.Var(&factory.profile.Flags.MutationPolicy, user.FlagMutationPolicy, user.FlagMutationPolicyUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, terminal.FlagOutputTargetShort, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)

	// diagnostic flags
	fs.Var(factory.logLevel, logging.FlagLevel, logging.FlagLevelUsage)

	// hidden flags
	fs.StringVar(&factory.profile.Flags.APIBaseURL, user.FlagAPIBaseURL, "", user.FlagAPIBaseURLUsage)
	if err := fs.MarkHidden(user.FlagAPIBaseURL); err != nil {
		panic(err)
	}
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	factory.logger = logging.New(factory.logLevel.Level, os.Stderr)

	if err := factory.profile.Load(); err != nil {
		factory.logger.Fatal("failed to load profile", zap.Error(err))
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.logger.Fatal("failed to open target file", zap.Error(err))
		}
		factory.outFile = f
		factory.outWriter = f
	}
}

func (factory *CommandFactory) clients() Clients {
	return Clients{
		Strapi: strapi.NewClient(
			factory.profile.APIBaseURL(),
			strapi.WithLogger(factory.logger),
		),
		Logger:   factory.logger,
		Notifier: NewUINotifier(factory.ui),
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func handleUsage(cmd *cobra.Command, err error) {
	var disableUsage DisableUsage
	if errors.As(err, &disableUsage) {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
}
