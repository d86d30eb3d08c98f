// Package commands implements the CLI commands for the initializr composer.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/shubham-dpworld/initializr-ui/internal/cliconfig"
)

// CLI represents the command line interface for the composer.
type CLI struct {
	rootCmd *cobra.Command

	configPath string
	config     cliconfig.Config
}

// New creates a new CLI instance.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "initializr",
		Short:         "Compose project generation requests against an Initializr service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{rootCmd: rootCmd}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a YAML config file (default "+cliconfig.DefaultFileName+" when present)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		path := c.configPath
		explicit := path != ""
		if !explicit {
			path = cliconfig.DefaultFileName
		}
		cfg, err := cliconfig.Load(path, explicit)
		if err != nil {
			return err
		}
		c.config = cfg
		return nil
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newMetadataCmd())
	rootCmd.AddCommand(c.newOnboardCmd())
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

// SetOutput sets the output and error streams for the root command. Used for
// testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
