package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pymod2pkg/internal/app"
)

func (c *CLI) newReqsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reqs -r <file> [-r <file>...]",
		Short: "Translate requirements files into package dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, _ := cmd.Flags().GetStringArray("requirements")
			brief, _ := cmd.Flags().GetBool("brief")
			prefix, _ := cmd.Flags().GetString("prefix")
			outputMode, _ := cmd.Flags().GetString("output-mode")

			return c.app.Requirements(cmd.Context(), app.RequirementsOptions{
				Selection:  selection(cmd),
				Paths:      paths,
				Brief:      brief,
				Prefix:     prefix,
				Output:     cmd.OutOrStdout(),
				OutputMode: outputMode,
			})
		},
	}
	addSelectionFlags(cmd)
	cmd.Flags().StringArrayP("requirements", "r", nil, "Python requirements file to parse (repeatable)")
	cmd.Flags().BoolP("brief", "b", false, "Only print package names")
	cmd.Flags().String("prefix", "", "Label for dependency lines (default: Requires, or Depends for Ubuntu)")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, styled, or plain")
	_ = cmd.MarkFlagRequired("requirements")
	return cmd
}
