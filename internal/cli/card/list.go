package card

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/cli/handler"
	"github.com/thenoetrevino/minitrello/internal/models"
)

// ListCmd returns the card list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards",
		Long: `List every card, grouped by column in board order.

Examples:
  minitrello card list
  minitrello card list --column inProgress --json`,
		Args: handler.NoArgs,
		RunE: handler.Command(runList),
	}
	cmd.Flags().String("column", "", "Only list cards in this column")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runList(_ context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	columns := models.ColumnOrder
	if name, _ := args.GetCmd().Flags().GetString("column"); name != "" {
		id, err := models.ParseColumnID(name)
		if err != nil {
			return nil, err
		}
		columns = []models.ColumnID{id}
	}

	b := c.Board.Board()
	list := List{Cards: []Result{}, columns: columns}
	for _, id := range columns {
		for _, card := range b.Items(id) {
			list.Cards = append(list.Cards, newResult(card, id, ""))
		}
	}
	return list, nil
}
