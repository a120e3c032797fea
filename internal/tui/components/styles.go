// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/minitrello/internal/config/colors"
	"github.com/thenoetrevino/minitrello/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// HeaderStyle defines the board title
	HeaderStyle lipgloss.Style

	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines a card at rest
	CardStyle lipgloss.Style

	// LiftedCardStyle defines the card being dragged
	LiftedCardStyle lipgloss.Style

	// TitleStyle defines the appearance of column titles
	TitleStyle lipgloss.Style

	// ControlStyle defines the clickable [e]dit / [d]elete labels
	ControlStyle lipgloss.Style

	// AddBarStyle defines the add bar around the new item input (green border)
	AddBarStyle lipgloss.Style

	// HintStyle defines muted helper text
	HintStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the reset confirmation (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnWidth)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		Foreground(lipgloss.Color(colors.Normal)).
		Padding(0, 1).
		Width(CardWidth)

	LiftedCardStyle = CardStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(colors.LiftedBorder)).
		Background(lipgloss.Color(colors.LiftedBg)).
		Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	ControlStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	AddBarStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(0, 1)

	HintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Italic(true)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))
}

// SelectedBorderColor returns the border color for the focused column or card
func SelectedBorderColor() color.Color {
	return lipgloss.Color(theme.SelectedBorder)
}
