// Package commands implements the bintool CLI commands.
package commands

import (
	"github.com/liamwhite/binel/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bintool",
	Short: "Inspect and round-trip BinEl map files and ghost-network captures",
	Long: `bintool is a small driver around the binel/ghostnet/maps packages:
it parses and re-encodes the binary-element map format and decodes
captured ghost-network byte streams into their constituent frames.

Use "bintool [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel("DEBUG")
		}
	},
}

// Execute adds all child commands to the root command and runs it. This is
// called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(roundtripCmd)
	rootCmd.AddCommand(framesCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Printf("bintool %s (commit: %s, built: %s)\n", Version, Commit, Date)
		return nil
	},
}
