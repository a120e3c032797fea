package board

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/cli/handler"
	"github.com/thenoetrevino/minitrello/internal/cli/styles"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every card",
		Long:  "Clear the stored board (requires confirmation unless --force or --quiet).",
		Args:  handler.NoArgs,
		RunE:  handler.Command(runReset),
	}
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd)
	return cmd
}

// ResetResult is the output of board reset
type ResetResult struct {
	Reset   bool `json:"reset"`
	Removed int  `json:"removed"`
}

// Human renders the confirmation line
func (r ResetResult) Human() (string, error) {
	if !r.Reset {
		return "Cancelled", nil
	}
	return styles.Check(fmt.Sprintf("Board reset, %d card(s) removed", r.Removed)), nil
}

func runReset(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	count := c.Board.Board().CardCount()

	// Ask for confirmation unless force or quiet mode
	if !args.Bool("force") && !args.Bool("quiet") {
		cmd := args.GetCmd()
		fmt.Fprintf(cmd.OutOrStdout(), "Reset the board and delete %d card(s)? (y/N): ", count)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			return ResetResult{}, nil
		}
	}

	if err := c.Board.Reset(ctx); err != nil {
		return nil, err
	}
	return ResetResult{Reset: true, Removed: count}, nil
}
