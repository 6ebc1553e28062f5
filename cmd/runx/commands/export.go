package commands

import "github.com/spf13/cobra"

func (c *CLI) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the workspace as YAML",
		Long:  "Load the workspace in any supported format and print it as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Export(cmd.Context(), c.dir)
		},
	}
}
