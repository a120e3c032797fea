package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/tui/theme"
)

// ColumnProps describes one column to render
type ColumnProps struct {
	Column *models.Column

	// Selected marks the column holding the cursor
	Selected bool
	// SelectedCard is the index of the selected card, -1 for none
	SelectedCard int
	// DropTarget marks the column currently holding a dragged card
	DropTarget bool

	Dragging string

	// EditingID and EditView put one card into inline edit mode
	EditingID string
	EditView  string

	// Height is the minimum rendered height, 0 for auto
	Height int

	// MaxHeight caps the rendered height, 0 for no cap.
	// Cards that do not fit are scrolled out of view starting at ScrollOffset.
	MaxHeight    int
	ScrollOffset int
}

// PlacedCard is a card view with its row offset inside the column
type PlacedCard struct {
	ID   string
	Top  int // relative to the column's top border
	Left int // relative to the column's left border
	View CardView
}

// ColumnView is a rendered column and the placement of its visible cards
type ColumnView struct {
	Content string
	Width   int
	Height  int
	Cards   []PlacedCard

	// ScrollOffset is the index of the first visible card after keeping the
	// selected card in view
	ScrollOffset int
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Title} ({count})
//
//	{Card 1}
//	{Card 2}
//	...
func RenderColumn(props ColumnProps) ColumnView {
	col := props.Column

	views := make([]CardView, len(col.Items))
	for i, card := range col.Items {
		cardProps := CardProps{
			Card:     card,
			Selected: props.Selected && i == props.SelectedCard,
			Dragging: props.Dragging,
		}
		if props.EditingID != "" && card.ID == props.EditingID {
			cardProps.EditView = props.EditView
		}
		views[i] = RenderCard(cardProps)
	}

	first, last := 0, len(views)
	if props.MaxHeight > 0 && len(views) > 0 {
		selected := -1
		if props.Selected {
			selected = props.SelectedCard
		}
		budget := props.MaxHeight - 2*columnBorderLines - headerLines
		first, last = ScrollWindow(cardHeights(views), budget, props.ScrollOffset, selected)
	}

	header := renderColumnHeader(col, first, len(views)-last)

	var placed []PlacedCard
	var body string
	if len(col.Items) == 0 {
		body = HintStyle.Render(emptyColumnText)
	} else {
		parts := make([]string, 0, last-first)
		top := columnBorderLines + headerLines
		for i := first; i < last; i++ {
			placed = append(placed, PlacedCard{ID: col.Items[i].ID, Top: top, Left: cardInsetX, View: views[i]})
			parts = append(parts, views[i].Content)
			top += views[i].Height
		}
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	style := ColumnStyle
	switch {
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropBorder))
	case props.Selected:
		style = style.BorderForeground(SelectedBorderColor())
	}

	content := style.Render(header + "\n\n" + body)
	if props.Height > lipgloss.Height(content) {
		// Grow by re-rendering with a fixed content height; border rows are not counted
		content = style.Height(props.Height - 2).Render(header + "\n\n" + body)
	}
	if props.MaxHeight > 0 && lipgloss.Height(content) > props.MaxHeight {
		// A single card taller than the column is cut at the bottom
		content = strings.Join(strings.Split(content, "\n")[:props.MaxHeight], "\n")
	}

	return ColumnView{
		Content:      content,
		Width:        lipgloss.Width(content),
		Height:       lipgloss.Height(content),
		Cards:        placed,
		ScrollOffset: first,
	}
}

func cardHeights(views []CardView) []int {
	heights := make([]int, len(views))
	for i, v := range views {
		heights[i] = v.Height
	}
	return heights
}

// ScrollWindow returns the half-open range of items to show in budget rows.
// The window starts at offset, moves just far enough to contain selected
// (-1 for none), and pulls back when the tail leaves rows unused.
// At least one item is always shown.
func ScrollWindow(heights []int, budget, offset, selected int) (int, int) {
	n := len(heights)
	if n == 0 {
		return 0, 0
	}
	first := min(max(offset, 0), n-1)

	if selected >= 0 && selected < n {
		if selected < first {
			first = selected
		}
		for first < selected && sum(heights[first:selected+1]) > budget {
			first++
		}
	}
	for first > 0 && sum(heights[first-1:]) <= budget {
		first--
	}

	last := first + 1
	used := heights[first]
	for last < n && used+heights[last] <= budget {
		used += heights[last]
		last++
	}
	return first, last
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// renderColumnHeader renders "Title (count)", with ↑n ↓n for cards scrolled out of view
func renderColumnHeader(col *models.Column, above, below int) string {
	title := TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Items)))
	var more []string
	if above > 0 {
		more = append(more, fmt.Sprintf("↑%d", above))
	}
	if below > 0 {
		more = append(more, fmt.Sprintf("↓%d", below))
	}
	if len(more) == 0 {
		return title
	}
	return title + " " + HintStyle.Render(strings.Join(more, " "))
}

// CardAt returns the card whose rows contain y, relative to the column top
func (v ColumnView) CardAt(y int) (PlacedCard, bool) {
	for _, card := range v.Cards {
		if y >= card.Top && y < card.Top+card.View.Height {
			return card, true
		}
	}
	return PlacedCard{}, false
}
