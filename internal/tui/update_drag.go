package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
)

// ============================================================================
// GESTURES
// ============================================================================
//
// Mouse and keyboard drags share these three transitions:
//
//	startGesture  Idle -> Dragging
//	enterColumn   Dragging -> Dragging (card moves to the end of the column)
//	endGesture    Dragging -> Idle

// startGesture captures card and its column and schedules the lift.
func (m Model) startGesture(card models.Card, colID models.ColumnID, origin state.GestureOrigin) tea.Cmd {
	if m.Gesture.Active() {
		return nil
	}
	token := m.Gesture.Start(card, colID, origin)
	m.selectCard(m.Service.Board(), card.ID)
	m.UIState.SetMode(state.DragMode)
	return liftCmd(token)
}

// enterColumn transfers the dragged card to target.
// Without an active gesture, or when target already holds the card, nothing happens.
func (m Model) enterColumn(target models.ColumnID) {
	if !m.Gesture.Active() || !target.Valid() {
		return
	}
	source := m.Gesture.Source()
	if target == source {
		return
	}

	ctx, cancel := m.opContext()
	defer cancel()

	card := m.Gesture.Card()
	moved, err := m.Service.MoveCard(ctx, card.ID, source, target)
	if err != nil {
		m.notifyError("Move failed", err)
		return
	}
	if !moved {
		return
	}
	m.Gesture.MoveTo(target)
	m.selectCard(m.Service.Board(), card.ID)
}

// endGesture clears the gesture context and returns to normal mode
func (m Model) endGesture() {
	m.Gesture.End()
	if m.UIState.Mode() == state.DragMode {
		m.UIState.SetMode(state.NormalMode)
	}
	m.clampSelection()
}

// adjacentColumn returns the column delta steps from id, or "" past either end
func adjacentColumn(id models.ColumnID, delta int) models.ColumnID {
	idx := id.Index() + delta
	if idx < 0 || idx >= len(models.ColumnOrder) {
		return ""
	}
	return models.ColumnOrder[idx]
}

// handleDragMode handles keys while a card is being carried.
func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case km.MoveCardLeft, km.PrevColumn, "left":
		m.enterColumn(adjacentColumn(m.Gesture.Source(), -1))
	case km.MoveCardRight, km.NextColumn, "right":
		m.enterColumn(adjacentColumn(m.Gesture.Source(), 1))
	case km.GrabCard, km.SaveForm, km.CancelForm:
		m.endGesture()
	}
	return m, nil
}
