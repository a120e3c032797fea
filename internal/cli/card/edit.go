package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/cli/handler"
	"github.com/thenoetrevino/minitrello/internal/models"
)

// EditCmd returns the card edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace a card's content",
		Long: `Replace the content of a card. The id may be any unique prefix.

Examples:
  minitrello card edit 3f2a "Buy oat milk"`,
		Args: handler.MinimumArgs(2),
		RunE: handler.Command(runEdit),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runEdit(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	content := strings.Join(args.Args[1:], " ")
	if strings.TrimSpace(content) == "" {
		return nil, models.ErrEmptyContent
	}

	card, column, err := cli.ResolveCard(c.Board, args.Args[0])
	if err != nil {
		return nil, err
	}

	updated, err := c.Board.UpdateCard(ctx, card.ID, content)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, card.ID)
	}

	card.Content = content
	return newResult(card, column, "Card "+shortID(card.ID)+" updated"), nil
}
