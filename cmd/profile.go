package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tmoapi/internal/cli"
	"tmoapi/internal/config"
	"tmoapi/internal/profile"
	"tmoapi/internal/render"
)

func newProfileCmd(o *rootOptions) *cobra.Command {
	var force bool

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage tmoapi profiles",
		Long: `Inspect and remove the named profiles stored in the profiles file.

Examples:
  tmoapi profile                    # List all profiles
  tmoapi profile list               # List all profiles (alias: ls)
  tmoapi profile show production    # Show a profile (token masked)
  tmoapi profile delete staging     # Remove a profile (alias: rm)

Profiles are created and updated with 'tmoapi init'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileList(o, cmd)
		},
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileList(o, cmd)
		},
	}

	showCmd := &cobra.Command{
		Use:     "show <name>",
		Aliases: []string{"describe"},
		Short:   "Show profile details",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeProfileNames(o), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileShow(o, cmd, args[0])
		},
	}

	deleteCmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a profile",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeProfileNames(o), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileDelete(o, cmd, args[0], force)
		},
	}
	deleteCmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")

	profileCmd.AddCommand(listCmd, showCmd, deleteCmd)
	return profileCmd
}

func completeProfileNames(o *rootOptions) []string {
	cfg, err := o.store().Load()
	if err != nil {
		return nil
	}
	return cfg.Names()
}

func runProfileList(o *rootOptions, cmd *cobra.Command) error {
	store := o.store()
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	out := cmd.OutOrStdout()
	if o.flags.OutputFormat == string(cli.OutputFormatJSON) {
		seq := make(render.Sequence, 0, len(cfg.Profiles))
		for _, p := range cfg.Profiles {
			seq = append(seq, p.RenderFields())
		}
		_, err := fmt.Fprintln(out, render.RenderJSON(seq))
		return err
	}

	if len(cfg.Profiles) == 0 {
		if !o.flags.Quiet {
			fmt.Fprintf(out, "No profiles configured yet in %s.\n", store.Location())
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, "Create one with:")
			fmt.Fprintln(out, "  tmoapi init production")
			fmt.Fprintln(out, "")
			fmt.Fprintf(out, "Until then the built-in %q profile uses the public sandbox.\n", config.DemoProfile)
		}
		return nil
	}

	w := cli.NewListWriter(out, "Name", "Database", "Environment", "Timeout")
	for _, p := range cfg.Profiles {
		w.AppendRow(p.Name, p.Database, p.Environment, strconv.Itoa(p.Timeout.Int()))
	}
	w.Render()
	return nil
}

func runProfileShow(o *rootOptions, cmd *cobra.Command, name string) error {
	p, err := o.store().Get(name)
	if err != nil {
		if !config.IsProfileNotFound(err) || name != config.DemoProfile {
			return err
		}
		p = &profile.Profile{
			Name:        config.DemoProfile,
			Token:       config.DemoToken,
			Database:    config.DemoDatabase,
			Environment: strings.ToLower(config.US.String()),
			Timeout:     config.DefaultTimeout,
		}
	}

	format, err := cli.ParseOutputFormat(o.flags.OutputFormat)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Render(p.RenderFields(), format))
	return err
}

func runProfileDelete(o *rootOptions, cmd *cobra.Command, name string, force bool) error {
	store := o.store()
	out := cmd.OutOrStdout()

	// Check the profile exists before prompting
	if _, err := store.Get(name); err != nil {
		return err
	}

	if !force && !confirmAction(out, o.stdin, fmt.Sprintf("Delete profile %q?", name)) {
		if !o.flags.Quiet {
			fmt.Fprintln(out, "Aborted.")
		}
		return nil
	}

	if err := store.Delete(name); err != nil {
		return err
	}

	if !o.flags.Quiet {
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Profile %q deleted.", name)))
	}
	return nil
}

// confirmAction prompts the user for confirmation and returns true if they confirm.
func confirmAction(out io.Writer, in io.Reader, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
