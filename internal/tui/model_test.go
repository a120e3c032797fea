package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/tui/components"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
)

// ============================================================================
// KEYBOARD
// ============================================================================

// TestKeyboard_BuyMilkLifecycle walks one card from creation to deletion
func TestKeyboard_BuyMilkLifecycle(t *testing.T) {
	m := setupTestModel(t, newStore())

	m = press(m, "a")
	require.Equal(t, state.AddMode, m.UIState.Mode())
	m = typeText(m, "Buy milk")
	m = press(m, "enter")

	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnPending))
	assert.Empty(t, m.AddInput.Value(), "add bar clears after a successful add")
	assert.Equal(t, state.AddMode, m.UIState.Mode(), "add bar stays focused for the next item")

	m = press(m, "esc")
	require.Equal(t, state.NormalMode, m.UIState.Mode())

	// Grab, carry right twice, drop
	m = press(m, "space")
	require.Equal(t, state.DragMode, m.UIState.Mode())
	m = press(m, "L")
	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnInProgress))
	m = press(m, "L", "L") // the last L runs past the final column
	m = press(m, "space")

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.False(t, m.Gesture.Active())
	assert.Empty(t, contents(m, models.ColumnPending))
	assert.Empty(t, contents(m, models.ColumnInProgress))
	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnCompleted))
	assert.Equal(t, 2, m.UIState.SelectedColumn(), "cursor follows the carried card")

	// Edit in place
	m = press(m, "e")
	require.Equal(t, state.EditMode, m.UIState.Mode())
	assert.Equal(t, "Buy milk", m.EditInput.Value())
	m = typeText(m, " now")
	m = press(m, "enter")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, []string{"Buy milk now"}, contents(m, models.ColumnCompleted))

	m = press(m, "d")
	assert.Equal(t, 0, m.Service.Board().CardCount())
}

func TestKeyboard_AddModeTypesCommandKeys(t *testing.T) {
	m := setupTestModel(t, newStore())

	m = press(m, "a")
	m = typeText(m, "quit dq")
	m = press(m, "enter")

	assert.Equal(t, []string{"quit dq"}, contents(m, models.ColumnPending))
}

func TestKeyboard_BlankAddIsIgnored(t *testing.T) {
	m := setupTestModel(t, newStore())

	m = press(m, "a")
	m = typeText(m, "   ")
	m = press(m, "enter")

	assert.Equal(t, 0, m.Service.Board().CardCount())
	assert.Equal(t, "   ", m.AddInput.Value(), "blank text is left in the bar")
	assert.False(t, m.NotificationState.HasAny())
	assert.Equal(t, state.AddMode, m.UIState.Mode())
}

func TestKeyboard_EditCancelKeepsContent(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")

	m = press(m, "e")
	m = typeText(m, " and eggs")
	m = press(m, "esc")

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.False(t, m.EditState.Active())
	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnPending))
}

func TestKeyboard_EditKeepsLongContent(t *testing.T) {
	long := strings.Repeat("a", 300)
	m := setupTestModel(t, newStore(), long)

	m = press(m, "e")
	require.Equal(t, long, m.EditInput.Value())
	m = typeText(m, "!")
	m = press(m, "enter")

	assert.Equal(t, []string{long + "!"}, contents(m, models.ColumnPending))
}

func TestKeyboard_EditKeepsLineBreaks(t *testing.T) {
	m := setupTestModel(t, newStore(), "line1\nline2")

	m = press(m, "e")
	require.Equal(t, "line1\nline2", m.EditInput.Value())
	m = typeText(m, "!")
	m = press(m, "enter")

	assert.Equal(t, []string{"line1\nline2!"}, contents(m, models.ColumnPending))
}

func TestKeyboard_EditWithoutCardNotifies(t *testing.T) {
	m := setupTestModel(t, newStore())

	m = press(m, "e")

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, "No card selected", n.Message)
}

func TestKeyboard_Navigation(t *testing.T) {
	m := setupTestModel(t, newStore(), "one", "two", "three")
	m.UIState.Select(0, 0)

	m = press(m, "j", "j", "j")
	assert.Equal(t, 2, m.UIState.SelectedCard(), "cursor stops on the last card")

	m = press(m, "k")
	assert.Equal(t, 1, m.UIState.SelectedCard())

	m = press(m, "l")
	assert.Equal(t, 1, m.UIState.SelectedColumn())
	assert.Equal(t, 0, m.UIState.SelectedCard(), "empty column clamps the card index")

	m = press(m, "l", "l")
	assert.Equal(t, 2, m.UIState.SelectedColumn())

	m = press(m, "h", "h", "h")
	assert.Equal(t, 0, m.UIState.SelectedColumn())
}

func TestKeyboard_CarryLeftFromFirstColumnIsNoOp(t *testing.T) {
	store := newStore()
	m := setupTestModel(t, store, "Buy milk")
	puts := store.Puts

	m = press(m, "space", "H", "space")

	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnPending))
	assert.Equal(t, puts, store.Puts, "a drop on the source column writes nothing")
}

func TestKeyboard_ResetConfirm(t *testing.T) {
	m := setupTestModel(t, newStore(), "one", "two")

	m = press(m, "R")
	require.Equal(t, state.ResetConfirmMode, m.UIState.Mode())
	m = press(m, "n")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, 2, m.Service.Board().CardCount())

	m = press(m, "R", "y")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, 0, m.Service.Board().CardCount())
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, "Board reset", n.Message)
}

func TestKeyboard_HelpToggle(t *testing.T) {
	m := setupTestModel(t, newStore())

	m = press(m, "?")
	assert.Equal(t, state.HelpMode, m.UIState.Mode())
	assert.NotEmpty(t, m.View().Content)

	m = press(m, "?")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestKeyboard_Quit(t *testing.T) {
	m := setupTestModel(t, newStore())

	_, cmd := updateCmd(m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ============================================================================
// LIFT
// ============================================================================

func TestGesture_LiftAppliesAfterTick(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")
	cardID := m.Service.Board().Items(models.ColumnPending)[0].ID

	m, cmd := updateCmd(m, keyPress("space"))
	require.NotNil(t, cmd)
	assert.Empty(t, m.Gesture.Dragging(), "not lifted until the tick arrives")

	m = update(m, cmd())
	assert.Equal(t, cardID, m.Gesture.Dragging())
}

func TestGesture_StaleLiftIgnored(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")

	m, first := updateCmd(m, keyPress("space"))
	m = press(m, "space") // drop before the tick
	m, second := updateCmd(m, keyPress("space"))

	m = update(m, first())
	assert.Empty(t, m.Gesture.Dragging(), "tick from the finished gesture is ignored")

	m = update(m, second())
	assert.NotEmpty(t, m.Gesture.Dragging())
}

// ============================================================================
// MOUSE
// ============================================================================

func TestMouse_DragAcrossColumns(t *testing.T) {
	store := newStore()
	m := setupTestModel(t, store, "Buy milk", "Walk dog")

	m = update(m, mouseDown(cardPoint(t, m, "Buy milk")))
	require.Equal(t, state.DragMode, m.UIState.Mode())
	assert.Equal(t, state.OriginMouse, m.Gesture.Origin())

	m = update(m, mouseMove(columnPoint(t, m, models.ColumnInProgress)))
	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnInProgress))

	// Hovering the same column again writes nothing
	puts := store.Puts
	m = update(m, mouseMove(columnPoint(t, m, models.ColumnInProgress)))
	assert.Equal(t, puts, store.Puts)

	m = update(m, mouseUp(columnPoint(t, m, models.ColumnCompleted)))
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.False(t, m.Gesture.Active())
	assert.Equal(t, []string{"Walk dog"}, contents(m, models.ColumnPending))
	assert.Empty(t, contents(m, models.ColumnInProgress))
	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnCompleted))
}

func TestMouse_ReleaseOffBoardKeepsLastColumn(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")

	m = update(m, mouseDown(cardPoint(t, m, "Buy milk")))
	m = update(m, mouseMove(columnPoint(t, m, models.ColumnInProgress)))
	m = update(m, mouseUp(point{X: 0, Y: 0}))

	assert.False(t, m.Gesture.Active())
	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnInProgress))
}

func TestMouse_MotionWithoutPressIsIgnored(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")

	m = update(m, mouseMove(columnPoint(t, m, models.ColumnCompleted)))
	m = update(m, mouseUp(columnPoint(t, m, models.ColumnCompleted)))

	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnPending))
}

func TestMouse_KeyboardDragIgnoresPointer(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")

	m = press(m, "space")
	m = update(m, mouseMove(columnPoint(t, m, models.ColumnCompleted)))

	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnPending))
	assert.True(t, m.Gesture.Active())
}

func TestMouse_EditAndSaveControls(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")

	m = update(m, mouseDown(controlPoint(t, m, "Buy milk", components.ControlEdit)))
	require.Equal(t, state.EditMode, m.UIState.Mode())
	assert.False(t, m.Gesture.Active(), "a control press does not start a drag")

	m = typeText(m, "!")
	m = update(m, mouseDown(controlPoint(t, m, "Buy milk", components.ControlSave)))

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, []string{"Buy milk!"}, contents(m, models.ColumnPending))
}

func TestMouse_CancelControl(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")

	m = update(m, mouseDown(controlPoint(t, m, "Buy milk", components.ControlEdit)))
	m = typeText(m, "!")
	m = update(m, mouseDown(controlPoint(t, m, "Buy milk", components.ControlCancel)))

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnPending))
}

func TestMouse_DeleteControl(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk", "Walk dog")

	m = update(m, mouseDown(controlPoint(t, m, "Buy milk", components.ControlDelete)))

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, []string{"Walk dog"}, contents(m, models.ColumnPending))
}

func TestMouse_AddBarFocusesInput(t *testing.T) {
	m := setupTestModel(t, newStore())
	l := m.layout(m.Service.Board())

	m = update(m, mouseDown(point{X: 1, Y: l.AddBarTop + 1}))
	assert.Equal(t, state.AddMode, m.UIState.Mode())
}

func TestMouse_IgnoredInModals(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")
	p := cardPoint(t, m, "Buy milk")

	m = press(m, "?")
	m = update(m, mouseDown(p))

	assert.Equal(t, state.HelpMode, m.UIState.Mode())
	assert.False(t, m.Gesture.Active())
}

// ============================================================================
// LAYOUT / VIEW
// ============================================================================

func TestLayout_WideAndNarrow(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")

	l := m.layout(m.Service.Board())
	require.True(t, l.Wide)
	require.Len(t, l.Columns, 3)
	for i := 1; i < len(l.Columns); i++ {
		assert.Greater(t, l.Columns[i].X, l.Columns[i-1].X)
		assert.Equal(t, l.Columns[0].Y, l.Columns[i].Y)
	}

	m = update(m, tea.WindowSizeMsg{Width: 40, Height: testHeight})
	l = m.layout(m.Service.Board())
	require.False(t, l.Wide)
	for i := 1; i < len(l.Columns); i++ {
		assert.Equal(t, 0, l.Columns[i].X)
		assert.Greater(t, l.Columns[i].Y, l.Columns[i-1].Y)
	}
}

// TestLayout_StackedKeepsEveryColumnOnScreen shares a short terminal between
// the stacked columns instead of pushing the last one off the bottom.
func TestLayout_StackedKeepsEveryColumnOnScreen(t *testing.T) {
	m := setupTestModel(t, newStore(), "one", "two", "three", "four")
	m = update(m, tea.WindowSizeMsg{Width: 40, Height: 30})

	view := m.View().Content
	assert.Contains(t, view, "Pending (4)")
	assert.Contains(t, view, "In Progress (0)")
	assert.Contains(t, view, "Completed (0)")
	assert.Contains(t, view, "↓", "hidden Pending cards are flagged")

	m = press(m, "l", "l")
	require.Equal(t, 2, m.UIState.SelectedColumn())
	assert.Contains(t, m.View().Content, "Completed (0)")

	// Completed stays a drop target
	m = press(m, "h", "h")
	m = update(m, mouseDown(cardPoint(t, m, "one")))
	m = update(m, mouseUp(columnPoint(t, m, models.ColumnCompleted)))
	assert.Equal(t, []string{"one"}, contents(m, models.ColumnCompleted))
}

func TestLayout_StackedScrollsToSelectedColumn(t *testing.T) {
	m := setupTestModel(t, newStore(), "one", "two", "three", "four")
	m = update(m, tea.WindowSizeMsg{Width: 40, Height: 20})
	require.NotContains(t, m.View().Content, "Completed (0)", "terminal too short for every column")

	m = press(m, "l", "l")

	assert.Contains(t, m.View().Content, "Completed (0)")
	assert.NotContains(t, m.View().Content, "Pending (4)")
	assert.Equal(t, 1, m.UIState.ColumnScrollOffset())

	// Hit-testing follows the scrolled stack
	l := m.layout(m.Service.Board())
	require.NotEmpty(t, l.Columns)
	assert.Equal(t, models.ColumnInProgress, l.Columns[0].ID)
	assert.Equal(t, l.Top, l.Columns[0].Y)

	m = update(m, mouseDown(columnPoint(t, m, models.ColumnInProgress)))
	assert.Equal(t, 1, m.UIState.SelectedColumn())
}

func TestLayout_WideScrollsToSelectedCard(t *testing.T) {
	cards := make([]string, 12)
	for i := range cards {
		cards[i] = fmt.Sprintf("card %02d", i)
	}
	m := setupTestModel(t, newStore(), cards...)
	m = update(m, tea.WindowSizeMsg{Width: testWidth, Height: 30})
	require.True(t, m.layout(m.Service.Board()).Wide)
	require.NotContains(t, m.View().Content, "card 11", "terminal too short for every card")

	for range 11 {
		m = press(m, "j")
	}
	require.Equal(t, 11, m.UIState.SelectedCard())

	view := m.View().Content
	assert.Contains(t, view, "card 11")
	assert.NotContains(t, view, "card 00")
	assert.Contains(t, view, "↑")
	assert.Positive(t, m.UIState.CardScrollOffset(0))

	// Pressing the visible card grabs that card, not the one scrolled away
	m = update(m, mouseDown(cardPoint(t, m, "card 11")))
	require.True(t, m.Gesture.Active())
	assert.Equal(t, "card 11", m.Gesture.Card().Content)

	// Moving back up scrolls back
	m = update(m, mouseUp(columnPoint(t, m, models.ColumnPending)))
	for range 11 {
		m = press(m, "k")
	}
	assert.Contains(t, m.View().Content, "card 00")
	assert.Equal(t, 0, m.UIState.CardScrollOffset(0))
}

func TestMouse_WheelMovesCursorThroughColumn(t *testing.T) {
	m := setupTestModel(t, newStore(), "one", "two")
	p := columnPoint(t, m, models.ColumnPending)

	m = update(m, tea.MouseWheelMsg{X: p.X, Y: p.Y, Button: tea.MouseWheelDown})
	assert.Equal(t, 1, m.UIState.SelectedCard())
	m = update(m, tea.MouseWheelMsg{X: p.X, Y: p.Y, Button: tea.MouseWheelDown})
	assert.Equal(t, 1, m.UIState.SelectedCard(), "stops at the last card")
	m = update(m, tea.MouseWheelMsg{X: p.X, Y: p.Y, Button: tea.MouseWheelUp})
	assert.Equal(t, 0, m.UIState.SelectedCard())

	done := columnPoint(t, m, models.ColumnCompleted)
	m = update(m, tea.MouseWheelMsg{X: done.X, Y: done.Y, Button: tea.MouseWheelDown})
	assert.Equal(t, 2, m.UIState.SelectedColumn(), "wheel over another column moves the cursor there")
}

func TestMouse_DragInNarrowLayout(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")
	m = update(m, tea.WindowSizeMsg{Width: 40, Height: testHeight})

	m = update(m, mouseDown(cardPoint(t, m, "Buy milk")))
	m = update(m, mouseUp(columnPoint(t, m, models.ColumnCompleted)))

	assert.Equal(t, []string{"Buy milk"}, contents(m, models.ColumnCompleted))
}

func TestView_Board(t *testing.T) {
	m := setupTestModel(t, newStore(), "Buy milk")

	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Contains(t, view.Content, "Mini Trello Board")
	assert.Contains(t, view.Content, "Pending (1)")
	assert.Contains(t, view.Content, "In Progress (0)")
	assert.Contains(t, view.Content, "Buy milk")
	assert.Contains(t, view.Content, "NORMAL")
}

func TestView_LoadingBeforeResize(t *testing.T) {
	m := setupTestModel(t, newStore())
	m.UIState.SetWidth(0)

	assert.Equal(t, "Loading...", m.View().Content)
}
