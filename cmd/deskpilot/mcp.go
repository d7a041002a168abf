package main

import (
	"github.com/spf13/cobra"

	"github.com/okarin/deskpilot"
	mcpAdapter "github.com/okarin/deskpilot/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdin/stdout",
	Long: `Exposes desktop control as MCP tools (execute_task, read_screen) so
agent hosts can drive this machine over the Model Context Protocol.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, _, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		return mcpAdapter.NewServer(engine, deskpilot.Version).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
