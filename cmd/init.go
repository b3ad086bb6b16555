package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tmoapi/internal/api"
	"tmoapi/internal/cli"
	"tmoapi/internal/config"
	"tmoapi/internal/profile"
)

// defaultProfileName is the profile init writes when no name is given.
const defaultProfileName = "default"

func newInitCmd(o *rootOptions) *cobra.Command {
	var timeout int

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create or update a profile",
		Long: `Create or update a named profile in the profiles file.

Values given with --token, --database and --environment are used as is.
When the token or database is missing, init prompts for every value and
offers the current ones as defaults.

Examples:
  tmoapi init
  tmoapi init production
  tmoapi init production --token abc123 --database "Fund A" --environment canada --timeout 60`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultProfileName
			if len(args) == 1 {
				name = args[0]
			}
			timeoutSet := cmd.Flags().Changed("timeout")
			return runInit(o, cmd, name, timeout, timeoutSet)
		},
	}

	cmd.Flags().IntVar(&timeout, "timeout", profile.DefaultTimeout, "Request timeout in seconds")
	return cmd
}

func runInit(o *rootOptions, cmd *cobra.Command, name string, timeout int, timeoutSet bool) error {
	if err := profile.ValidateName(name); err != nil {
		return err
	}

	store := o.store()
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	p := profile.Profile{Name: name, Environment: "us", Timeout: profile.DefaultTimeout}
	if existing := cfg.Get(name); existing != nil {
		p = *existing
		p.Timeout = profile.Seconds(existing.Timeout.Int())
	}

	if o.flags.Token != "" {
		p.Token = o.flags.Token
	}
	if o.flags.Database != "" {
		p.Database = o.flags.Database
	}
	if o.flags.Environment != "" {
		p.Environment = o.flags.Environment
	}
	if timeoutSet {
		if timeout <= 0 {
			return api.NewValidationError("Timeout must be a positive number of seconds")
		}
		p.Timeout = profile.Seconds(timeout)
	}

	if p.Token == "" || p.Database == "" {
		if !o.interactive() {
			return api.NewValidationError("Token and database are required. Pass --token and --database, or run 'tmoapi init' in a terminal.")
		}
		if err := promptProfile(o, &p); err != nil {
			if isAborted(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			return err
		}
	}

	if p.Token == "" {
		return api.NewValidationError("Token cannot be empty")
	}
	if p.Database == "" {
		return api.NewValidationError("Database cannot be empty")
	}

	if p.Environment != "" && !config.IsKnownEnvironment(p.Environment) {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(fmt.Sprintf("Unknown environment %q, requests will use US", p.Environment)))
	}

	if err := store.Put(p); err != nil {
		return err
	}

	if !o.flags.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Profile %q saved to %s", name, store.Location())))
		fmt.Fprintf(cmd.OutOrStdout(), "Use it with: tmoapi pools --profile %s\n", name)
	}
	return nil
}

func promptProfile(o *rootOptions, p *profile.Profile) error {
	prompter, err := o.newPrompter()
	if err != nil {
		return err
	}
	defer prompter.Close()

	if p.Token, err = prompter.AskSecret("API token", p.Token); err != nil {
		return err
	}
	if p.Database, err = prompter.Ask("Database", p.Database); err != nil {
		return err
	}
	if p.Environment, err = prompter.Ask("Environment (us, canada, australia)", p.Environment); err != nil {
		return err
	}

	answer, err := prompter.Ask("Timeout in seconds", strconv.Itoa(p.Timeout.Int()))
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(answer)
	if convErr != nil || n <= 0 {
		return api.Validationf("Timeout must be a positive number of seconds, got %q", answer)
	}
	p.Timeout = profile.Seconds(n)
	return nil
}
