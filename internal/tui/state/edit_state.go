package state

import "github.com/thenoetrevino/minitrello/internal/models"

// EditState tracks the single card being edited inline and its draft text.
type EditState struct {
	cardID string
	draft  string
}

// NewEditState creates an EditState with no card being edited.
func NewEditState() *EditState {
	return &EditState{}
}

// Start begins editing card, seeding the draft with its current content.
// Any edit already in progress is discarded.
func (s *EditState) Start(card models.Card) {
	s.cardID = card.ID
	s.draft = card.Content
}

// Active reports whether a card is being edited.
func (s *EditState) Active() bool {
	return s.cardID != ""
}

// IsEditing reports whether cardID is the card being edited.
func (s *EditState) IsEditing(cardID string) bool {
	return s.cardID != "" && s.cardID == cardID
}

// CardID returns the id of the card being edited.
func (s *EditState) CardID() string {
	return s.cardID
}

// Draft returns the text typed so far.
func (s *EditState) Draft() string {
	return s.draft
}

// SetDraft replaces the draft text.
func (s *EditState) SetDraft(text string) {
	s.draft = text
}

// Clear ends the edit.
func (s *EditState) Clear() {
	s.cardID = ""
	s.draft = ""
}
