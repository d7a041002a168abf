package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okarin/deskpilot"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the deskpilot version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("deskpilot", deskpilot.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
