package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures the bottom status line
type StatusBarProps struct {
	Width int
	Mode  string
	Hint  string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "Mini Trello - {MODE}"
// Right side: the hint, "press ? for help" when empty
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Mini Trello - " + props.Mode
	rightText := props.Hint
	if rightText == "" {
		rightText = "press ? for help"
	}

	leftRendered := StatusBarStyle.Render(leftText)
	rightRendered := StatusBarStyle.Render(rightText)

	// Calculate space between left and right text
	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
