package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okarin/deskpilot/internal/presentation/tui"
	"github.com/okarin/deskpilot/pkg/domain"
)

var runCmd = &cobra.Command{
	Use:   "run <task...>",
	Short: "Execute a single task and print the result",
	Long: `Runs one free-text task through the dispatcher and exits. Examples:

  deskpilot run click at 500, 300
  deskpilot run type Hello, world!
  deskpilot run --simulate read screen`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, _, err := setup(cmd, nil)
		if err != nil {
			return err
		}

		task := strings.Join(args, " ")
		res := engine.Dispatch(cmd.Context(), task)

		ok := res.Status == domain.StatusSuccess
		line := fmt.Sprintf("[%s] %s", res.Status, res.Detail)
		if res.Simulated {
			line += " (simulated)"
		}
		fmt.Println(tui.StatusLine(ok, line))

		if !ok {
			return fmt.Errorf("task failed: %s", res.Detail)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
