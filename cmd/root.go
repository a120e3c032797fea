package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/cli/board"
	"github.com/thenoetrevino/minitrello/internal/cli/card"
	"github.com/thenoetrevino/minitrello/internal/cli/handler"
	"github.com/thenoetrevino/minitrello/internal/launcher"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "minitrello",
	Short: "Mini Trello - a three column board in your terminal",
	Long: `Mini Trello keeps a single board with Pending, In Progress and Completed
columns. Run it without arguments to open the board, or use the card and
board subcommands from scripts.`,
	Args:          handler.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(dbPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Board database path (default ~/.minitrello/board.db)")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(board.BoardCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
