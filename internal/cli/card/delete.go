package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/cli/handler"
	"github.com/thenoetrevino/minitrello/internal/models"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card",
		Long:  "Delete a card by id or unique id prefix.",
		Args:  handler.ExactArgs(1),
		RunE:  handler.Command(runDelete),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	card, column, err := cli.ResolveCard(c.Board, args.Args[0])
	if err != nil {
		return nil, err
	}

	deleted, err := c.Board.DeleteCard(ctx, card.ID, column)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, card.ID)
	}
	return newResult(card, column, "Card "+shortID(card.ID)+" deleted"), nil
}
