package state

import "github.com/thenoetrevino/minitrello/internal/models"

// GestureOrigin identifies the input device driving a gesture
type GestureOrigin int

const (
	// OriginMouse is a press, motion, release drag
	OriginMouse GestureOrigin = iota
	// OriginKeyboard is a grab, move, drop sequence
	OriginKeyboard
)

// GestureState is the context of an in-progress drag.
// It exists from gesture start to gesture end and is never persisted.
//
// Lifecycle:
//
//	Idle --Start--> Dragging --MoveTo--> Dragging --End--> Idle
type GestureState struct {
	active bool
	card   models.Card
	source models.ColumnID
	origin GestureOrigin

	// lifted is set once the deferred lift message arrives
	lifted bool

	// token identifies the current gesture so stale lift messages are dropped
	token int
}

// NewGestureState creates an idle GestureState.
func NewGestureState() *GestureState {
	return &GestureState{}
}

// Start captures the card and the column it is dragged from.
// It returns a token to pass to Lift.
func (s *GestureState) Start(card models.Card, source models.ColumnID, origin GestureOrigin) int {
	s.token++
	s.active = true
	s.card = card
	s.source = source
	s.origin = origin
	s.lifted = false
	return s.token
}

// Lift marks the dragged card as lifted.
// It returns false if token belongs to a gesture that already ended.
func (s *GestureState) Lift(token int) bool {
	if !s.active || token != s.token {
		return false
	}
	s.lifted = true
	return true
}

// MoveTo records that the card now lives in column.
func (s *GestureState) MoveTo(column models.ColumnID) {
	if !s.active {
		return
	}
	s.source = column
}

// End clears the gesture context.
func (s *GestureState) End() {
	s.active = false
	s.lifted = false
	s.card = models.Card{}
	s.source = ""
}

// Active reports whether a gesture is in progress.
func (s *GestureState) Active() bool {
	return s.active
}

// Card returns the dragged card.
func (s *GestureState) Card() models.Card {
	return s.card
}

// Source returns the column currently holding the dragged card.
func (s *GestureState) Source() models.ColumnID {
	return s.source
}

// Origin returns the device that started the gesture.
func (s *GestureState) Origin() GestureOrigin {
	return s.origin
}

// Dragging returns the id of the lifted card, or "" when nothing is lifted.
func (s *GestureState) Dragging() string {
	if !s.active || !s.lifted {
		return ""
	}
	return s.card.ID
}
