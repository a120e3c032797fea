// Package board implements the board subcommands
package board

import "github.com/spf13/cobra"

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show, export or reset the board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}
