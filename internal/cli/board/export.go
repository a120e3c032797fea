package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/cli/handler"
	"github.com/thenoetrevino/minitrello/internal/converters"
)

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the stored snapshot as JSON",
		Long: `Print the board in the same versioned JSON format it is stored in.

Examples:
  minitrello board export > board.json`,
		Args: handler.NoArgs,
		RunE: handler.Command(runExport),
	}
}

func runExport(_ context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	data, err := converters.EncodeBoard(c.Board.Board())
	if err != nil {
		return nil, err
	}
	return cli.Raw(append(data, '\n')), nil
}
