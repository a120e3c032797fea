package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UIState.SetMode(state.HelpMode)
		return m, nil
	case km.AddCard:
		return m.beginAdd()
	case km.EditCard:
		return m.handleEditSelected()
	case km.DeleteCard:
		return m.handleDeleteSelected()
	case km.GrabCard:
		return m.handleGrabSelected()
	case km.ResetBoard:
		m.UIState.SetMode(state.ResetConfirmMode)
		return m, nil
	case km.PrevColumn, "left":
		m.navigateColumn(-1)
	case km.NextColumn, "right":
		m.navigateColumn(1)
	case km.PrevCard, "up":
		m.navigateCard(-1)
	case km.NextCard, "down":
		m.navigateCard(1)
	}
	return m, nil
}

// navigateColumn moves the cursor delta columns, keeping the card index when possible
func (m Model) navigateColumn(delta int) {
	next := m.UIState.SelectedColumn() + delta
	if next < 0 || next >= len(models.ColumnOrder) {
		return
	}
	m.UIState.SetSelectedColumn(next)
	m.clampSelection()
}

// navigateCard moves the cursor delta cards within the column
func (m Model) navigateCard(delta int) {
	m.UIState.SetSelectedCard(m.UIState.SelectedCard() + delta)
	m.clampSelection()
}

// handleEditSelected opens the inline editor on the selected card
func (m Model) handleEditSelected() (tea.Model, tea.Cmd) {
	card, _, ok := m.getCurrentCard(m.Service.Board())
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No card selected")
		return m, nil
	}
	return m.startEdit(card)
}

// handleDeleteSelected removes the selected card
func (m Model) handleDeleteSelected() (tea.Model, tea.Cmd) {
	card, colID, ok := m.getCurrentCard(m.Service.Board())
	if !ok {
		return m, nil
	}
	m.deleteCard(card, colID)
	return m, nil
}

// handleGrabSelected starts a keyboard drag on the selected card
func (m Model) handleGrabSelected() (tea.Model, tea.Cmd) {
	card, colID, ok := m.getCurrentCard(m.Service.Board())
	if !ok {
		return m, nil
	}
	return m, m.startGesture(card, colID, state.OriginKeyboard)
}

// deleteCard removes card from colID; a card that is already gone is ignored
func (m Model) deleteCard(card models.Card, colID models.ColumnID) {
	ctx, cancel := m.opContext()
	defer cancel()

	if _, err := m.Service.DeleteCard(ctx, card.ID, colID); err != nil {
		m.notifyError("Delete failed", err)
		return
	}
	m.clampSelection()
}

// ============================================================================
// HELP / RESET HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case km.ShowHelp, km.Quit, km.CancelForm, "esc", "enter", "space":
		m.UIState.SetMode(state.NormalMode)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// handleResetConfirm handles the y/n prompt before clearing the board.
func (m Model) handleResetConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		ctx, cancel := m.opContext()
		defer cancel()

		m.UIState.SetMode(state.NormalMode)
		if err := m.Service.Reset(ctx); err != nil {
			m.notifyError("Reset failed", err)
			return m, nil
		}
		m.UIState.Select(0, 0)
		m.NotificationState.Add(state.LevelInfo, "Board reset")
	case "n", "N", "esc":
		m.UIState.SetMode(state.NormalMode)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
