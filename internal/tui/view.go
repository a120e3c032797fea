package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/minitrello/internal/tui/components"
	"github.com/thenoetrevino/minitrello/internal/tui/layers"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
	"github.com/thenoetrevino/minitrello/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)
	view.MouseMode = tea.MouseModeCellMotion

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	l := m.layout(m.Service.Board())
	base := fitHeight(lipgloss.JoinVertical(lipgloss.Left, l.Header, "", l.Board), m.UIState.Height()-footerHeight)

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width: m.UIState.Width(),
		Mode:  m.UIState.Mode().String(),
		Hint:  m.Help.ShortHelpView(m.Keys.ModeHelp(m.UIState.Mode())),
	})
	base = lipgloss.JoinVertical(lipgloss.Left, base, statusBar)

	var modal *lipgloss.Layer
	switch m.UIState.Mode() {
	case state.HelpMode:
		modal = m.renderHelpLayer()
	case state.ResetConfirmMode:
		modal = m.renderResetConfirmLayer()
	}

	view.Content = layers.Compose(base, modal)
	return view
}

// fitHeight drops trailing rows beyond height, padding short content up to it
func fitHeight(content string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderHelpLayer renders the keyboard shortcuts as a centered layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	title := components.HeaderStyle.Render("Mini Trello - Keyboard Shortcuts")
	mouse := components.HintStyle.Render("Mouse: drag a card onto a column, click [e]dit or [d]elete, wheel to scroll")
	editing := components.HintStyle.Render("Editing: alt+enter inserts a line break")
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.Help.FullHelpView(m.Keys.FullHelp()),
		"",
		mouse,
		editing,
	)
	box := components.HelpBoxStyle.Render(body)
	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

// renderResetConfirmLayer renders the reset confirmation prompt as a centered layer
func (m Model) renderResetConfirmLayer() *lipgloss.Layer {
	count := m.Service.Board().CardCount()
	content := fmt.Sprintf("Reset the board?\nThis will delete %d card(s).\n\n[y]es  [n]o", count)
	box := components.DeleteConfirmBoxStyle.Width(40).Render(content)
	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}
