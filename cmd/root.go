package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for tocfmt.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"tocfmt",
		"Normalize pasted chapter and timestamp listings",
	)

	flags := rootCmd.PersistentFlags()
	flags.String("config-file", "", "Path to a tocfmt YAML config (default: tocfmt section of grove.yml)")
	flags.String("log-level", "", "Diagnostic log level (debug, info, warn, error). Overrides config.")
	if flags.Lookup("verbose") == nil {
		flags.Bool("verbose", false, "Enable debug logging")
	}

	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newTitleCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
