package card

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/minitrello/internal/cli/styles"
	"github.com/thenoetrevino/minitrello/internal/models"
)

// shortIDLen is how much of a card id the human output shows
const shortIDLen = 8

// Result describes one card after a command touched it
type Result struct {
	ID      string          `json:"id"`
	Content string          `json:"content"`
	Column  models.ColumnID `json:"column"`

	message string
}

func newResult(card models.Card, column models.ColumnID, message string) Result {
	return Result{ID: card.ID, Content: card.Content, Column: column, message: message}
}

// GetID returns the card id for --quiet output
func (r Result) GetID() string {
	return r.ID
}

// Human renders the confirmation line
func (r Result) Human() (string, error) {
	return styles.Check(r.message), nil
}

// List is the output of card list
type List struct {
	Cards []Result `json:"cards"`

	columns []models.ColumnID
}

// GetIDs returns every listed card id, one per line in --quiet output
func (l List) GetIDs() []string {
	ids := make([]string, 0, len(l.Cards))
	for _, c := range l.Cards {
		ids = append(ids, c.ID)
	}
	return ids
}

// Human renders the cards grouped by column
func (l List) Human() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d card(s)\n", len(l.Cards))

	for _, col := range l.columns {
		var rows []string
		for _, c := range l.Cards {
			if c.Column == col {
				rows = append(rows, "  "+styles.SubtitleStyle.Render(shortID(c.ID))+"  "+styles.ValueStyle.Render(c.Content))
			}
		}
		b.WriteString("\n")
		b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title(), len(rows))))
		b.WriteString("\n")
		for _, row := range rows {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
