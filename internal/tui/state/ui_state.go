package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode       Mode = iota // Default navigation mode
	AddMode                      // Typing into the add bar
	EditMode                     // Editing one card inline
	DragMode                     // Carrying a card across columns
	ResetConfirmMode             // Confirming a board reset
	HelpMode                     // Displaying help screen
)

// String returns the name shown in the status bar
func (m Mode) String() string {
	switch m {
	case AddMode:
		return "ADD"
	case EditMode:
		return "EDIT"
	case DragMode:
		return "DRAG"
	case ResetConfirmMode:
		return "RESET"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/card selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the currently selected card within the selected column
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// cardScrollOffsets tracks the vertical scroll offset for each column
	// Key: column index, Value: scroll offset (index of first visible card)
	cardScrollOffsets map[int]int

	// columnScrollOffset is the index of the first visible column when
	// columns are stacked vertically
	columnScrollOffset int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		cardScrollOffsets: make(map[int]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Select moves the selection to the given column and card.
func (s *UIState) Select(column, card int) {
	s.selectedColumn = column
	s.selectedCard = card
}

// ClampSelection keeps the selection inside the board.
// cardCounts holds the number of cards in each column, in display order.
func (s *UIState) ClampSelection(cardCounts []int) {
	if len(cardCounts) == 0 {
		s.selectedColumn, s.selectedCard = 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), len(cardCounts)-1)
	count := cardCounts[s.selectedColumn]
	s.selectedCard = max(min(s.selectedCard, count-1), 0)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// CardScrollOffset returns the vertical scroll offset for a given column.
// Returns 0 if the column has no scroll offset set.
func (s *UIState) CardScrollOffset(column int) int {
	if offset, ok := s.cardScrollOffsets[column]; ok {
		return offset
	}
	return 0
}

// SetCardScrollOffset updates the vertical scroll offset for a given column.
func (s *UIState) SetCardScrollOffset(column int, offset int) {
	s.cardScrollOffsets[column] = max(0, offset)
}

// ColumnScrollOffset returns the index of the first visible stacked column.
func (s *UIState) ColumnScrollOffset() int {
	return s.columnScrollOffset
}

// SetColumnScrollOffset updates the first visible stacked column.
func (s *UIState) SetColumnScrollOffset(offset int) {
	s.columnScrollOffset = max(0, offset)
}
