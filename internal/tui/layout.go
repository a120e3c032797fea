package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/tui/components"
	"github.com/thenoetrevino/minitrello/internal/tui/notifications"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
	"github.com/thenoetrevino/minitrello/internal/tui/theme"
)

const (
	columnGap    = 1 // cells between columns in the wide layout
	footerHeight = 1
	headerTitle  = "Mini Trello Board"

	// minStackedColumnHeight fits the borders, the header and one single-line card
	minStackedColumnHeight = 8
)

// placedColumn is a rendered column and its top-left cell on screen
type placedColumn struct {
	ID   models.ColumnID
	X, Y int
	View components.ColumnView
}

// boardLayout is one frame's worth of rendered pieces and their positions.
// The same layout feeds View and the mouse handlers so clicks land where
// things are drawn.
type boardLayout struct {
	Header    string
	AddBarTop int
	AddBar    string

	// Top is the first row of the columns and Bottom is one past the last
	Top    int
	Bottom int
	Wide   bool
	Board  string

	// Columns holds the columns on screen. In the stacked layout the ones
	// scrolled out of view are left out and ColumnOffset is the first shown.
	Columns      []placedColumn
	ColumnOffset int
}

// columnSizing bounds the rendered height of every column
type columnSizing struct {
	Height    int // minimum, 0 for auto
	MaxHeight int // 0 for no cap
}

// layout renders the header and columns for the current state
func (m Model) layout(b *models.Board) boardLayout {
	title := components.HeaderStyle.Render(headerTitle)
	addBar := m.renderAddBar()

	notice := " "
	if n, ok := m.NotificationState.Latest(); ok {
		notice = notifications.RenderInlineFromState(n)
	}
	header := lipgloss.JoinVertical(lipgloss.Left, title, addBar, notice)

	l := boardLayout{
		Header:    header,
		AddBarTop: lipgloss.Height(title),
		AddBar:    addBar,
		Top:       lipgloss.Height(header) + 1,
	}
	avail := max(m.UIState.Height()-l.Top-footerHeight, 0)
	l.Bottom = l.Top + avail

	// Column width does not depend on height, so one uncapped pass decides the layout
	total := columnGap * (len(models.ColumnOrder) - 1)
	for _, v := range m.renderColumns(b, columnSizing{}) {
		total += v.Width
	}
	l.Wide = m.UIState.Width() >= total

	if l.Wide {
		// Stretch columns to the bottom so the whole strip is a drop target
		views := m.renderColumns(b, columnSizing{Height: avail, MaxHeight: avail})
		parts := make([]string, 0, 2*len(views))
		x := 0
		for i, v := range views {
			if i > 0 {
				parts = append(parts, " ")
				x += columnGap
			}
			parts = append(parts, v.Content)
			l.Columns = append(l.Columns, placedColumn{ID: models.ColumnOrder[i], X: x, Y: l.Top, View: v})
			x += v.Width
		}
		l.Board = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		return l
	}

	// Stacked columns share the rows; when even that does not fit, the stack
	// scrolls to keep the selected column in view
	budget := max(avail/len(models.ColumnOrder), minStackedColumnHeight)
	views := m.renderColumns(b, columnSizing{MaxHeight: budget})
	heights := make([]int, len(views))
	for i, v := range views {
		heights[i] = v.Height
	}
	first, last := components.ScrollWindow(heights, avail, m.UIState.ColumnScrollOffset(), m.UIState.SelectedColumn())
	l.ColumnOffset = first

	parts := make([]string, 0, last-first)
	y := l.Top
	for i := first; i < last; i++ {
		parts = append(parts, views[i].Content)
		l.Columns = append(l.Columns, placedColumn{ID: models.ColumnOrder[i], X: 0, Y: y, View: views[i]})
		y += views[i].Height
	}
	l.Board = lipgloss.JoinVertical(lipgloss.Left, parts...)
	return l
}

// renderColumns renders every column with the current selection, scroll, drag and edit state
func (m Model) renderColumns(b *models.Board, size columnSizing) []components.ColumnView {
	mode := m.UIState.Mode()
	editingID := ""
	editView := ""
	if mode == state.EditMode && m.EditState.Active() {
		editingID = m.EditState.CardID()
		editView = m.EditInput.View()
	}

	views := make([]components.ColumnView, 0, len(models.ColumnOrder))
	for i, col := range b.Columns() {
		selected := i == m.UIState.SelectedColumn()
		selectedCard := -1
		if selected {
			selectedCard = m.UIState.SelectedCard()
		}
		views = append(views, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Selected:     selected,
			SelectedCard: selectedCard,
			DropTarget:   m.Gesture.Active() && m.Gesture.Source() == col.ID,
			Dragging:     m.Gesture.Dragging(),
			EditingID:    editingID,
			EditView:     editView,
			Height:       size.Height,
			MaxHeight:    size.MaxHeight,
			ScrollOffset: m.UIState.CardScrollOffset(i),
		}))
	}
	return views
}

// syncScroll stores the scroll offsets of the current frame so the next one
// starts from them
func (m Model) syncScroll() {
	if m.UIState.Width() == 0 {
		return
	}
	l := m.layout(m.Service.Board())
	for _, col := range l.Columns {
		m.UIState.SetCardScrollOffset(col.ID.Index(), col.View.ScrollOffset)
	}
	if !l.Wide {
		m.UIState.SetColumnScrollOffset(l.ColumnOffset)
	}
}

// renderAddBar renders the add bar, showing the input while adding
func (m Model) renderAddBar() string {
	if m.UIState.Mode() == state.AddMode {
		return components.AddBarStyle.Render(m.AddInput.View())
	}
	hint := components.HintStyle.Render("+ " + addPlaceholder + " (press " + m.Config.KeyMappings.AddCard + ")")
	return components.AddBarStyle.
		BorderForeground(lipgloss.Color(theme.Subtle)).
		Render(hint)
}

// inAddBar reports whether (x, y) falls on the add bar
func (l boardLayout) inAddBar(x, y int) bool {
	return y >= l.AddBarTop && y < l.AddBarTop+lipgloss.Height(l.AddBar) &&
		x >= 0 && x < lipgloss.Width(l.AddBar)
}

// columnAt returns the column under (x, y).
// In the wide layout a column owns its whole vertical strip below the header.
func (l boardLayout) columnAt(x, y int) (placedColumn, bool) {
	if y < l.Top || y >= l.Bottom {
		return placedColumn{}, false
	}
	for _, col := range l.Columns {
		if l.Wide {
			if x >= col.X && x < col.X+col.View.Width {
				return col, true
			}
			continue
		}
		if y >= col.Y && y < col.Y+col.View.Height {
			return col, true
		}
	}
	return placedColumn{}, false
}

// cardHit is a mouse position resolved to a card
type cardHit struct {
	Column  models.ColumnID
	Card    components.PlacedCard
	Control components.Control
}

// cardAt resolves (x, y) to the card drawn there, if any
func (l boardLayout) cardAt(x, y int) (cardHit, bool) {
	col, ok := l.columnAt(x, y)
	if !ok {
		return cardHit{}, false
	}
	relX, relY := x-col.X, y-col.Y
	card, ok := col.View.CardAt(relY)
	if !ok {
		return cardHit{}, false
	}
	if relX < card.Left || relX >= card.Left+lipgloss.Width(card.View.Content) {
		return cardHit{}, false
	}

	hit := cardHit{Column: col.ID, Card: card, Control: components.ControlNone}
	if relY-card.Top == card.View.ControlsRow {
		hit.Control = card.View.ControlAt(relX - card.Left)
	}
	return hit, true
}
