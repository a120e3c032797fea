package card

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/cli/handler"
	"github.com/thenoetrevino/minitrello/internal/models"
)

// AddCmd returns the card add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a card to Pending",
		Long: `Add a new card to the end of the Pending column.

Examples:
  minitrello card add Buy milk

  # Capture the new id
  CARD_ID=$(minitrello card add "Buy milk" --quiet)`,
		Args: handler.MinimumArgs(1),
		RunE: handler.Command(runAdd),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	content := strings.Join(args.Args, " ")

	card, err := c.Board.AddCard(ctx, content)
	if err != nil {
		return nil, err
	}
	return newResult(card, models.ColumnPending, "Card "+shortID(card.ID)+" added to "+models.ColumnPending.Title()), nil
}
