package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/services/board"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
)

// ============================================================================
// ADD BAR
// ============================================================================

// beginAdd focuses the add bar
func (m Model) beginAdd() (tea.Model, tea.Cmd) {
	m.UIState.SetMode(state.AddMode)
	cmd := m.AddInput.Focus()
	return m, cmd
}

// handleAddMode handles typing into the add bar.
func (m Model) handleAddMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case km.SaveForm:
		return m.submitAdd()
	case km.CancelForm:
		m.AddInput.Blur()
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.AddInput, cmd = m.AddInput.Update(msg)
	return m, cmd
}

// submitAdd appends the add bar text to Pending and clears the bar.
// Blank text is ignored and left in place.
func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	ctx, cancel := m.opContext()
	defer cancel()

	m.NotificationState.Clear()
	card, err := m.Service.AddCard(ctx, m.AddInput.Value())
	if err != nil {
		if !board.IsNoOp(err) {
			m.notifyError("Add failed", err)
		}
		return m, nil
	}

	m.AddInput.Reset()
	m.selectCard(m.Service.Board(), card.ID)
	return m, nil
}

// ============================================================================
// INLINE EDIT
// ============================================================================

// startEdit puts card into inline edit mode with its content as the draft
func (m Model) startEdit(card models.Card) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()
	m.EditState.Start(card)
	// SetValue leaves the cursor after the last character
	m.EditInput.SetValue(card.Content)
	m.EditInput.SetHeight(editHeight(card.Content))
	m.selectCard(m.Service.Board(), card.ID)
	m.UIState.SetMode(state.EditMode)
	cmd := m.EditInput.Focus()
	return m, cmd
}

// handleEditMode handles typing into the inline editor.
func (m Model) handleEditMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case km.SaveForm:
		return m.saveEdit()
	case km.CancelForm:
		return m.cancelEdit()
	}

	var cmd tea.Cmd
	m.EditInput, cmd = m.EditInput.Update(msg)
	m.EditState.SetDraft(m.EditInput.Value())
	m.EditInput.SetHeight(editHeight(m.EditInput.Value()))
	return m, cmd
}

// saveEdit writes the draft into the edited card and closes the editor.
// A card deleted in the meantime is skipped.
func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	ctx, cancel := m.opContext()
	defer cancel()

	if m.EditState.Active() {
		if _, err := m.Service.UpdateCard(ctx, m.EditState.CardID(), m.EditState.Draft()); err != nil {
			m.notifyError("Save failed", err)
		}
	}
	return m.closeEditor()
}

// cancelEdit closes the editor without writing
func (m Model) cancelEdit() (tea.Model, tea.Cmd) {
	return m.closeEditor()
}

func (m Model) closeEditor() (tea.Model, tea.Cmd) {
	m.EditState.Clear()
	m.EditInput.Blur()
	m.EditInput.Reset()
	m.EditInput.SetHeight(1)
	m.UIState.SetMode(state.NormalMode)
	m.clampSelection()
	return m, nil
}
