package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deskpilot",
	Short: "Deskpilot is a remote desktop control service",
	Long: `Deskpilot exposes screen reading, mouse and keyboard control, and
application launching over an HTTP API, an MCP server and a one-shot CLI.
Free-text tasks like "click at 500, 300" or "read screen" are interpreted
into typed actions and executed against the OS, or simulated when no display
is available.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "deskpilot.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("simulate", false, "Force simulation mode (no actual PC control)")
}
