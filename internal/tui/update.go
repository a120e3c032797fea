package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
)

// liftMsg applies the lifted style one tick after a gesture starts
type liftMsg struct {
	token int
}

// liftCmd delivers liftMsg on the next loop iteration
func liftCmd(token int) tea.Cmd {
	return func() tea.Msg {
		return liftMsg{token: token}
	}
}

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.dispatch(msg)
	if nm, ok := next.(Model); ok {
		// Keep the selection in view after every message
		nm.syncScroll()
	}
	return next, cmd
}

// dispatch routes msg to its handler
func (m Model) dispatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		return m, nil

	case liftMsg:
		// A gesture that ended before the tick is left alone
		m.Gesture.Lift(msg.token)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	}

	// Cursor blink and other input internals go to the focused field
	return m.updateFocusedInput(msg)
}

// handleKeyPress dispatches key messages to the appropriate mode handler.
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UIState.Mode() {
	case state.AddMode:
		return m.handleAddMode(msg)
	case state.EditMode:
		return m.handleEditMode(msg)
	case state.DragMode:
		return m.handleDragMode(msg)
	case state.ResetConfirmMode:
		return m.handleResetConfirm(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// updateFocusedInput forwards msg to whichever text input has focus
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.UIState.Mode() {
	case state.AddMode:
		m.AddInput, cmd = m.AddInput.Update(msg)
	case state.EditMode:
		m.EditInput, cmd = m.EditInput.Update(msg)
	}
	return m, cmd
}
