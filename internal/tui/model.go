// Package tui renders the board in the terminal and turns key and mouse
// input into board operations.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/minitrello/internal/config"
	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/services/board"
	"github.com/thenoetrevino/minitrello/internal/tui/components"
	"github.com/thenoetrevino/minitrello/internal/tui/state"
)

// storageTimeout bounds each board write issued from the UI
const storageTimeout = 2 * time.Second

// addPlaceholder is shown in the empty add bar
const addPlaceholder = "New item"

const (
	// editWidth fits the inline editor inside a card
	editWidth = components.CardWidth - 4

	// maxEditRows is the tallest the inline editor grows before it scrolls
	maxEditRows = 6
)

// Model represents the application state for the TUI
type Model struct {
	Ctx     context.Context
	Service board.Service
	Config  *config.Config

	UIState           *state.UIState
	Gesture           *state.GestureState
	EditState         *state.EditState
	NotificationState *state.NotificationState

	AddInput  textinput.Model
	EditInput textarea.Model
	Help      help.Model
	Keys      KeyMap
}

// InitialModel creates the TUI model around an already loaded board service
func InitialModel(ctx context.Context, svc board.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	addInput := textinput.New()
	addInput.Placeholder = addPlaceholder
	addInput.Prompt = "+ "
	addInput.CharLimit = 0

	// Cards keep whatever length and line breaks they were given
	editInput := textarea.New()
	editInput.Prompt = ""
	editInput.ShowLineNumbers = false
	editInput.CharLimit = 0
	editInput.MaxHeight = 0
	editInput.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")
	editInput.SetWidth(editWidth)
	editInput.SetHeight(1)

	return Model{
		Ctx:               ctx,
		Service:           svc,
		Config:            cfg,
		UIState:           state.NewUIState(),
		Gesture:           state.NewGestureState(),
		EditState:         state.NewEditState(),
		NotificationState: state.NewNotificationState(),
		AddInput:          addInput,
		EditInput:         editInput,
		Help:              help.New(),
		Keys:              NewKeyMap(cfg.KeyMappings),
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// opContext returns a context for a single storage call
func (m Model) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, storageTimeout)
}

// editHeight returns the editor rows needed to show value, up to maxEditRows
func editHeight(value string) int {
	rows := lipgloss.Height(lipgloss.NewStyle().Width(editWidth).Render(value))
	return min(max(rows, 1), maxEditRows)
}

// cardCounts returns the number of cards per column in display order
func cardCounts(b *models.Board) []int {
	counts := make([]int, 0, len(models.ColumnOrder))
	for _, col := range b.Columns() {
		counts = append(counts, len(col.Items))
	}
	return counts
}

// selectedColumnID returns the id of the column holding the cursor
func (m Model) selectedColumnID() models.ColumnID {
	idx := min(max(m.UIState.SelectedColumn(), 0), len(models.ColumnOrder)-1)
	return models.ColumnOrder[idx]
}

// getCurrentCard returns the card under the cursor
func (m Model) getCurrentCard(b *models.Board) (models.Card, models.ColumnID, bool) {
	colID := m.selectedColumnID()
	items := b.Items(colID)
	idx := m.UIState.SelectedCard()
	if idx < 0 || idx >= len(items) {
		return models.Card{}, colID, false
	}
	return items[idx], colID, true
}

// selectCard moves the cursor onto cardID wherever it lives
func (m Model) selectCard(b *models.Board, cardID string) {
	_, colID, ok := b.FindCard(cardID)
	if !ok {
		return
	}
	col, _ := b.Column(colID)
	m.UIState.Select(colID.Index(), col.IndexOf(cardID))
}

// clampSelection keeps the cursor on the board after a mutation
func (m Model) clampSelection() {
	m.UIState.ClampSelection(cardCounts(m.Service.Board()))
}

// notifyError reports a failed operation in the notification line
func (m Model) notifyError(action string, err error) {
	m.NotificationState.Add(state.LevelError, action+": "+err.Error())
}
