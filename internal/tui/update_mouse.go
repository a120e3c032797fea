package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/minitrello/internal/tui/components"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
)

// ============================================================================
// MOUSE
// ============================================================================

// handleMouseClick handles a button press.
// Pressing a card starts a drag; pressing one of its controls runs it instead.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	b := m.Service.Board()
	l := m.layout(b)

	switch m.UIState.Mode() {
	case state.ResetConfirmMode, state.HelpMode, state.DragMode:
		return m, nil

	case state.EditMode:
		hit, ok := l.cardAt(mouse.X, mouse.Y)
		if !ok || !m.EditState.IsEditing(hit.Card.ID) {
			return m, nil
		}
		switch hit.Control {
		case components.ControlSave:
			return m.saveEdit()
		case components.ControlCancel:
			return m.cancelEdit()
		}
		return m, nil

	case state.AddMode:
		if l.inAddBar(mouse.X, mouse.Y) {
			return m, nil
		}
		m.AddInput.Blur()
		m.UIState.SetMode(state.NormalMode)
	}

	m.NotificationState.Clear()

	if l.inAddBar(mouse.X, mouse.Y) {
		return m.beginAdd()
	}

	if hit, ok := l.cardAt(mouse.X, mouse.Y); ok {
		card, colID, found := b.FindCard(hit.Card.ID)
		if !found {
			return m, nil
		}
		switch hit.Control {
		case components.ControlEdit:
			return m.startEdit(card)
		case components.ControlDelete:
			m.deleteCard(card, colID)
			return m, nil
		}
		return m, m.startGesture(card, colID, state.OriginMouse)
	}

	if col, ok := l.columnAt(mouse.X, mouse.Y); ok {
		m.UIState.Select(col.ID.Index(), 0)
		m.clampSelection()
	}
	return m, nil
}

// handleMouseMotion carries a mouse-dragged card into the column under the pointer
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if !m.mouseDragging() {
		return m, nil
	}
	mouse := msg.Mouse()
	if col, ok := m.layout(m.Service.Board()).columnAt(mouse.X, mouse.Y); ok {
		m.enterColumn(col.ID)
	}
	return m, nil
}

// handleMouseRelease drops a mouse-dragged card.
// The card stays in whichever column it last entered.
func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	if !m.mouseDragging() {
		return m, nil
	}
	mouse := msg.Mouse()
	if col, ok := m.layout(m.Service.Board()).columnAt(mouse.X, mouse.Y); ok {
		m.enterColumn(col.ID)
	}
	m.endGesture()
	return m, nil
}

// handleMouseWheel moves the cursor one card through the column under the pointer.
// A column that did not hold the cursor takes it at its first visible card.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	switch m.UIState.Mode() {
	case state.ResetConfirmMode, state.HelpMode, state.DragMode, state.EditMode:
		return m, nil
	}

	mouse := msg.Mouse()
	step := 0
	switch mouse.Button {
	case tea.MouseWheelDown:
		step = 1
	case tea.MouseWheelUp:
		step = -1
	default:
		return m, nil
	}

	col, ok := m.layout(m.Service.Board()).columnAt(mouse.X, mouse.Y)
	if !ok {
		return m, nil
	}
	idx := col.ID.Index()
	if idx != m.UIState.SelectedColumn() {
		m.UIState.Select(idx, col.View.ScrollOffset)
	} else {
		m.UIState.SetSelectedCard(m.UIState.SelectedCard() + step)
	}
	m.clampSelection()
	return m, nil
}

func (m Model) mouseDragging() bool {
	return m.Gesture.Active() && m.Gesture.Origin() == state.OriginMouse
}
