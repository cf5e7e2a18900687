// Package commands implements the CLI commands for pymod2pkg.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pymod2pkg/internal/app"
	"go.trai.ch/pymod2pkg/internal/build"
	"go.trai.ch/pymod2pkg/internal/core/domain"
)

// CLI represents the command line interface for pymod2pkg.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Translate(ctx context.Context, modules []string, sel app.Selection) ([][]string, error)
	Upstream(ctx context.Context, modules []string, configPath string) ([]string, error)
	Requirements(ctx context.Context, opts app.RequirementsOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pymod2pkg",
		Short:         "Map Python module names to distribution package names",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: discover "+domain.ConfigFileName+")")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newTranslateCmd())
	rootCmd.AddCommand(c.newUpstreamCmd())
	rootCmd.AddCommand(c.newReqsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// selection reads the flags shared by the translating commands.
func selection(cmd *cobra.Command) app.Selection {
	configPath, _ := cmd.Flags().GetString("config")
	dist, _ := cmd.Flags().GetString("dist")
	pyVersions, _ := cmd.Flags().GetStringArray("pyver")
	return app.Selection{
		Dist:       dist,
		PyVersions: pyVersions,
		ConfigPath: configPath,
	}
}

// addSelectionFlags registers --dist and --pyver on cmd.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dist", "d", "", "Distribution style (default: detected from the host)")
	cmd.Flags().StringArray("pyver", nil,
		"Python versions to return, one of "+versionTagList()+" (repeatable)")
}

// versionTagList joins the accepted --pyver values for help output.
func versionTagList() string {
	tags := domain.VersionTags()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = string(tag)
	}
	return strings.Join(names, ", ")
}
