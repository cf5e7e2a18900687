package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <module>...",
		Short: "Print the package names of Python modules",
		Long: `Print the distribution package names of Python modules, one line per module.
When several versions are requested the names are space separated, in request order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.app.Translate(cmd.Context(), args, selection(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, names := range results {
				_, _ = fmt.Fprintln(out, strings.Join(names, " "))
			}
			return nil
		},
	}
	addSelectionFlags(cmd)
	return cmd
}
