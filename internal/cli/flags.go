package cli

import (
	"github.com/spf13/cobra"

	"tmoapi/internal/config"
)

// CommandFlags holds the flag values shared by every command that talks to
// the API or reads the profile store.
type CommandFlags struct {
	// Profile selects a named profile from the profile store
	Profile string
	// Token overrides the profile's API token
	Token string
	// Database overrides the profile's database name
	Database string
	// Environment overrides the profile's environment (us, canada, australia)
	Environment string
	// UserAgent overrides the User-Agent header
	UserAgent string
	// OutputFormat specifies the desired output format (text, json)
	OutputFormat string
	// ConfigPath points at the profiles file
	ConfigPath string
	// Debug enables debug logging on stderr
	Debug bool
	// Quiet suppresses progress indicators
	Quiet bool
}

// DateFlags holds the date window flags of dated commands.
type DateFlags struct {
	StartDate string
	EndDate   string
}

// RegisterCommonFlags registers the persistent flags used by all commands.
//
// The registered flags are:
//   - --profile/-P: Profile name, default "demo"
//   - --token, --database, --environment: per-invocation overrides
//   - --user-agent: User-Agent header override (env: TMO_USER_AGENT)
//   - --output/-o: Output format (text, json), default "text"
//   - --config-path: Profiles file
//   - --debug: Enable debug logging
//   - --quiet/-q: Suppress progress indicators
func RegisterCommonFlags(cmd *cobra.Command, flags *CommandFlags, defaultConfigPath string) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.Profile, "profile", "P", config.DemoProfile, "Profile name from the profiles file")
	pf.StringVar(&flags.Token, "token", "", "API token (overrides profile)")
	pf.StringVar(&flags.Database, "database", "", "Database name (overrides profile)")
	pf.StringVar(&flags.Environment, "environment", "", "API environment: us, canada or australia (overrides profile)")
	pf.StringVar(&flags.UserAgent, "user-agent", "", "Override the default User-Agent header (env: TMO_USER_AGENT)")
	pf.StringVarP(&flags.OutputFormat, "output", "o", string(OutputFormatText), "Output format (text, json)")
	pf.StringVar(&flags.ConfigPath, "config-path", defaultConfigPath, "Profiles file")
	pf.BoolVar(&flags.Debug, "debug", false, "Enable debug output")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress progress indicators")
}

// RegisterDateFlags registers --start-date and --end-date on a dated command.
func RegisterDateFlags(cmd *cobra.Command, flags *DateFlags) {
	cmd.Flags().StringVar(&flags.StartDate, "start-date", "", "Start date (MM/DD/YYYY), default 31 days before the end date")
	cmd.Flags().StringVar(&flags.EndDate, "end-date", "", "End date (MM/DD/YYYY), default today")
}

// Overrides returns the explicitly supplied connection overrides.
func (f *CommandFlags) Overrides() config.Overrides {
	return config.Overrides{
		Token:       f.Token,
		Database:    f.Database,
		Environment: f.Environment,
	}
}

// ToExecutorOptions converts CommandFlags to ExecutorOptions.
func (f *CommandFlags) ToExecutorOptions() (ExecutorOptions, error) {
	format, err := ParseOutputFormat(f.OutputFormat)
	if err != nil {
		return ExecutorOptions{}, err
	}

	return ExecutorOptions{
		Format:    format,
		Quiet:     f.Quiet,
		Profile:   f.Profile,
		Overrides: f.Overrides(),
		UserAgent: f.UserAgent,
	}, nil
}
