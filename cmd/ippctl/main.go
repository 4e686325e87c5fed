// Ippctl is a control utility for IPP printers and print jobs.
//
// It speaks the Internet Printing Protocol directly over HTTP to pause or
// resume a printer, purge its job queue, and hold, release, or cancel
// individual jobs on CUPS servers and network printers. A lightweight
// status monitor shows whether a printer is reachable.
//
// Usage:
//
//	ippctl [command] [flags]
//
// Printers can be addressed ad hoc with --host/--port/--path or by name
// from the registry managed with 'ippctl add'. See 'ippctl --help' for
// available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ippctl/ippctl/internal/logging"
	"github.com/ippctl/ippctl/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ippctl",
	Short: "IPP printer and job control",
	Long: `Control IPP printers and print jobs from the command line.

Supports pausing and resuming printers, purging job queues, and holding,
releasing, or cancelling individual jobs on CUPS servers and IPP network
printers. No printer drivers required; everything goes over HTTP.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ippctl %s (commit: %s)\n", version.Version, version.Commit)
	},
}
