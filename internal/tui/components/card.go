package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/minitrello/internal/models"
)

// Control is a clickable label rendered on a card
type Control int

const (
	ControlNone Control = iota
	ControlEdit
	ControlDelete
	ControlSave
	ControlCancel
)

// ControlSpan is the horizontal extent of one control, relative to the card's left edge
type ControlSpan struct {
	Control Control
	Start   int // first cell
	End     int // one past the last cell
}

// CardProps describes one card to render
type CardProps struct {
	Card     models.Card
	Selected bool

	// Dragging is the id of the lifted card, "" when nothing is lifted
	Dragging string

	// EditView is the rendered inline input; non-empty puts the card in edit mode
	EditView string
}

// CardView is a rendered card plus the geometry needed for mouse hit-testing
type CardView struct {
	Content     string
	Height      int
	ControlsRow int // row of the control line, relative to the card top
	Controls    []ControlSpan
}

// CardStyleFor returns the lifted style for the card being dragged and the
// normal style for every other card.
func CardStyleFor(card models.Card, dragging string, selected bool) lipgloss.Style {
	if dragging != "" && card.ID == dragging {
		return LiftedCardStyle
	}
	if selected {
		return CardStyle.BorderForeground(SelectedBorderColor())
	}
	return CardStyle
}

// RenderCard renders a single card
//
//	╭────────────────────────────╮
//	│ {content}                  │
//	│ [e]dit [d]elete            │
//	╰────────────────────────────╯
//
// In edit mode the content line is replaced by the inline input and the
// controls become [enter] save [esc] cancel.
func RenderCard(props CardProps) CardView {
	style := CardStyleFor(props.Card, props.Dragging, props.Selected)

	var body string
	var labels []string
	var controls []Control
	if props.EditView != "" {
		body = props.EditView
		labels = []string{"[enter] save", "[esc] cancel"}
		controls = []Control{ControlSave, ControlCancel}
	} else {
		body = props.Card.Content
		if strings.TrimSpace(body) == "" {
			body = HintStyle.Render("(empty)")
		}
		labels = []string{"[e]dit", "[d]elete"}
		controls = []Control{ControlEdit, ControlDelete}
	}

	rendered := make([]string, len(labels))
	spans := make([]ControlSpan, len(labels))
	x := controlInsetX
	for i, label := range labels {
		rendered[i] = ControlStyle.Render(label)
		w := lipgloss.Width(rendered[i])
		spans[i] = ControlSpan{Control: controls[i], Start: x, End: x + w}
		x += w + 1
	}
	controlLine := strings.Join(rendered, " ")

	content := style.Render(body + "\n" + controlLine)
	height := lipgloss.Height(content)

	return CardView{
		Content:     content,
		Height:      height,
		ControlsRow: height - 2, // last line above the bottom border
		Controls:    spans,
	}
}

// ControlAt returns the control under column x of the controls row
func (v CardView) ControlAt(x int) Control {
	for _, span := range v.Controls {
		if x >= span.Start && x < span.End {
			return span.Control
		}
	}
	return ControlNone
}
