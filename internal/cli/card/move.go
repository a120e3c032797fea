package card

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/cli/handler"
	"github.com/thenoetrevino/minitrello/internal/models"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <column>",
		Short: "Move a card to the end of another column",
		Long: `Move a card to the end of another column.
Columns: pending, inProgress (in-progress), completed (done).

Examples:
  minitrello card move 3f2a in-progress`,
		Args: handler.ExactArgs(2),
		RunE: handler.Command(runMove),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	target, err := models.ParseColumnID(args.Args[1])
	if err != nil {
		return nil, err
	}

	card, from, err := cli.ResolveCard(c.Board, args.Args[0])
	if err != nil {
		return nil, err
	}

	moved, err := c.Board.MoveCard(ctx, card.ID, from, target)
	if err != nil {
		return nil, err
	}
	if !moved {
		return newResult(card, from, "Card "+shortID(card.ID)+" is already in "+from.Title()), nil
	}
	return newResult(card, target, "Card "+shortID(card.ID)+" moved to "+target.Title()), nil
}
