package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tmoapi/internal/cli"
	"tmoapi/internal/client"
)

// newResourceCmd creates the listing command for one API resource.
func newResourceCmd(o *rootOptions, r client.Resource) *cobra.Command {
	var dates cli.DateFlags

	cmd := &cobra.Command{
		Use:   r.Name,
		Short: r.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.executor(cmd)
			if err != nil {
				return err
			}
			return e.Execute(cmd.Context(), r, dates)
		},
	}

	if r.Dated {
		cli.RegisterDateFlags(cmd, &dates)
		cmd.Long = fmt.Sprintf(`%s.

Dates use the MM/DD/YYYY format. Without --start-date the window starts 31
days before the end date; without --end-date it ends today, or 31 days after
--start-date when that is not in the future. End dates more than one day
after today are rejected.

Examples:
  tmoapi %[2]s
  tmoapi %[2]s --start-date 01/01/2024
  tmoapi %[2]s --start-date 01/01/2024 --end-date 03/31/2024 -o json`, r.Short, r.Name)
	}

	return cmd
}
