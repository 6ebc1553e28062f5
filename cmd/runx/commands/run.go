package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/runx/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <task> [-- args...]",
		Short: "Run a task",
		Long: "Run a task with the configured interpreter.\n\n" +
			"Arguments after the task name are passed to the script.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var taskName string
			var extra []string
			if len(args) > 0 {
				taskName = args[0]
			}
			if len(args) > 1 {
				extra = args[1:]
			}
			if len(extra) > 0 && extra[0] == "--" {
				extra = extra[1:]
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return c.app.Run(cmd.Context(), taskName, app.RunOptions{
				Dir:         c.dir,
				Interpreter: c.interpreter,
				Args:        extra,
				DryRun:      dryRun,
			})
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Print the command line instead of running it")
	// Everything after the task name belongs to the script.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
