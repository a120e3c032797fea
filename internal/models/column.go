package models

import (
	"fmt"
	"strings"
)

// ColumnID identifies one of the fixed board columns.
// The string values double as the keys of the persisted snapshot.
type ColumnID string

const (
	ColumnPending    ColumnID = "pending"
	ColumnInProgress ColumnID = "inProgress"
	ColumnCompleted  ColumnID = "completed"
)

// ColumnOrder is the left-to-right order in which columns are rendered
var ColumnOrder = []ColumnID{ColumnPending, ColumnInProgress, ColumnCompleted}

// columnTitles maps each column to its display title
var columnTitles = map[ColumnID]string{
	ColumnPending:    "Pending",
	ColumnInProgress: "In Progress",
	ColumnCompleted:  "Completed",
}

// Title returns the display title of the column ("" for unknown ids)
func (id ColumnID) Title() string {
	return columnTitles[id]
}

// Valid reports whether id is one of the fixed columns
func (id ColumnID) Valid() bool {
	_, ok := columnTitles[id]
	return ok
}

// Index returns the position of the column in ColumnOrder, or -1
func (id ColumnID) Index() int {
	for i, c := range ColumnOrder {
		if c == id {
			return i
		}
	}
	return -1
}

// ParseColumnID resolves user input to a ColumnID.
// Accepts the canonical ids, the titles, and kebab/snake variants
// ("in-progress", "in_progress"), case insensitive.
func ParseColumnID(s string) (ColumnID, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)

	for _, id := range ColumnOrder {
		if normalized == strings.ToLower(string(id)) {
			return id, nil
		}
	}
	switch normalized {
	case "todo":
		return ColumnPending, nil
	case "done":
		return ColumnCompleted, nil
	}
	return "", fmt.Errorf("%w: %q (must be: pending, inProgress, completed)", ErrUnknownColumn, s)
}

// Column is a named, ordered bucket of cards
type Column struct {
	ID    ColumnID
	Title string
	Items []Card
}

// IndexOf returns the position of the card with the given id, or -1
func (c *Column) IndexOf(cardID string) int {
	for i, card := range c.Items {
		if card.ID == cardID {
			return i
		}
	}
	return -1
}

func newColumn(id ColumnID) *Column {
	return &Column{
		ID:    id,
		Title: id.Title(),
		Items: []Card{},
	}
}
