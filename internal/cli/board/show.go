package board

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/cli/handler"
	"github.com/thenoetrevino/minitrello/internal/models"
)

const wordWrap = 80

var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
	rendererErr  error
)

func getRenderer() (*glamour.TermRenderer, error) {
	rendererOnce.Do(func() {
		renderer, rendererErr = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrap),
		)
	})
	return renderer, rendererErr
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board",
		Long:  "Print every column and its cards. Human output is rendered markdown.",
		Args:  handler.NoArgs,
		RunE:  handler.Command(runShow),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

// ColumnView is one column of board show output
type ColumnView struct {
	ID    models.ColumnID `json:"id"`
	Title string          `json:"title"`
	Cards []models.Card   `json:"cards"`
}

// View is the output of board show
type View struct {
	Columns []ColumnView `json:"columns"`
}

// GetIDs returns every card id on the board
func (v View) GetIDs() []string {
	var ids []string
	for _, col := range v.Columns {
		for _, card := range col.Cards {
			ids = append(ids, card.ID)
		}
	}
	return ids
}

// Markdown renders the board as a markdown document
func (v View) Markdown() string {
	var b strings.Builder
	b.WriteString("# Mini Trello Board\n")
	for _, col := range v.Columns {
		fmt.Fprintf(&b, "\n## %s (%d)\n\n", col.Title, len(col.Cards))
		if len(col.Cards) == 0 {
			b.WriteString("_No cards_\n")
			continue
		}
		for _, card := range col.Cards {
			fmt.Fprintf(&b, "- %s `%s`\n", escapeMarkdown(card.Content), shortID(card.ID))
		}
	}
	return b.String()
}

// Human renders the markdown for the terminal
func (v View) Human() (string, error) {
	r, err := getRenderer()
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(v.Markdown())
	if err != nil {
		return "", fmt.Errorf("failed to render board: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

func runShow(_ context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	b := c.Board.Board()
	view := View{Columns: make([]ColumnView, 0, len(models.ColumnOrder))}
	for _, col := range b.Columns() {
		view.Columns = append(view.Columns, ColumnView{ID: col.ID, Title: col.Title, Cards: col.Items})
	}
	return view, nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`,
)

// escapeMarkdown keeps card text from being read as markup
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
