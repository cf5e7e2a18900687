package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newUpstreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upstream <package>...",
		Short: "Print the OpenStack upstream project names of packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			names, err := c.app.Upstream(cmd.Context(), args, configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
