package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tmoapi/internal/api"
	"tmoapi/internal/cli"
	"tmoapi/internal/client"
	"tmoapi/internal/config"
	"tmoapi/internal/profile"
	"tmoapi/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error.
	ExitCodeError = 1
	// ExitCodeValidation indicates bad input: unknown profile, missing
	// credentials, malformed dates.
	ExitCodeValidation = 2
	// ExitCodeAuthentication indicates the API rejected the credentials.
	ExitCodeAuthentication = 3
	// ExitCodeAPI indicates the API returned an error.
	ExitCodeAPI = 4
	// ExitCodeNetwork indicates the API could not be reached.
	ExitCodeNetwork = 5
)

// rootOptions carries the flag values and the seams commands use to reach
// the outside world.
type rootOptions struct {
	flags cli.CommandFlags

	// envFiles are dotenv files layered under the process environment.
	envFiles []string
	// stdin feeds confirmations.
	stdin io.Reader
	// interactive reports whether prompts can be shown.
	interactive func() bool
	// newPrompter opens the prompter used by init.
	newPrompter func() (cli.Prompter, error)
	// fetcherFactory overrides the HTTP transport.
	fetcherFactory cli.FetcherFactory
}

func defaultRootOptions() *rootOptions {
	return &rootOptions{
		envFiles: []string{".env"},
		stdin:    os.Stdin,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		newPrompter: func() (cli.Prompter, error) {
			return cli.NewReadlinePrompter()
		},
	}
}

// rootCmd represents the base command for the tmoapi application.
var rootCmd = newRootCmd(defaultRootOptions())

func newRootCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tmoapi",
		Short: "Command-line client for The Mortgage Office API",
		Long: `tmoapi queries The Mortgage Office API and prints the results as text
or JSON.

Credentials come from a named profile (see 'tmoapi init'), from --token and
--database, or from the TMO_API_TOKEN and TMO_DATABASE environment
variables. Without any of them the public demo sandbox is used.`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelWarn
			if o.flags.Debug {
				level = logging.LevelDebug
			}
			logging.InitForCLI(level, cmd.ErrOrStderr())
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				text.DisableColors()
			}
			return cli.ValidateOutputFormat(o.flags.OutputFormat)
		},
	}

	cli.RegisterCommonFlags(cmd, &o.flags, defaultConfigPath())

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd(o))
	cmd.AddCommand(newProfileCmd(o))
	cmd.AddCommand(newSettingsCmd(o))
	for _, r := range client.Resources {
		cmd.AddCommand(newResourceCmd(o, r))
	}

	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tmoapi version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	kind, ok := api.KindOf(err)
	if !ok {
		return ExitCodeError
	}
	switch kind {
	case api.KindValidation:
		return ExitCodeValidation
	case api.KindAuthentication:
		return ExitCodeAuthentication
	case api.KindAPI:
		return ExitCodeAPI
	case api.KindNetwork:
		return ExitCodeNetwork
	default:
		return ExitCodeError
	}
}

func defaultConfigPath() string {
	path, err := profile.DefaultPath()
	if err != nil {
		return filepath.Join(".tmoapi", "profiles.yaml")
	}
	return path
}

func (o *rootOptions) store() *profile.Storage {
	return profile.NewStorageWithPath(o.flags.ConfigPath)
}

func (o *rootOptions) resolver() (*config.Resolver, error) {
	env, err := config.OSEnv(o.envFiles...)
	if err != nil {
		return nil, err
	}
	return config.NewResolver(o.store(), env), nil
}

func (o *rootOptions) executor(cmd *cobra.Command) (*cli.Executor, error) {
	opts, err := o.flags.ToExecutorOptions()
	if err != nil {
		return nil, err
	}
	resolver, err := o.resolver()
	if err != nil {
		return nil, err
	}
	e := cli.NewExecutor(opts, resolver, cmd.OutOrStdout())
	if o.fetcherFactory != nil {
		e.WithFetcherFactory(o.fetcherFactory)
	}
	return e, nil
}

func isAborted(err error) bool {
	return errors.Is(err, cli.ErrAborted)
}
