package cmd

import (
	"github.com/spf13/cobra"
)

func newSettingsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show the resolved connection settings",
		Long: `Resolve the profile, flags and environment variables the same way API
commands do and print the result. The token is masked.

Examples:
  tmoapi settings
  tmoapi settings -P production --database "Fund B"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.executor(cmd)
			if err != nil {
				return err
			}
			settings, err := e.Settings()
			if err != nil {
				return err
			}
			return e.Print(settings.RenderFields())
		},
	}
}
