package models

import "fmt"

// Board maps each fixed column id to its column.
// Every card belongs to exactly one column's Items at all times.
type Board struct {
	columns map[ColumnID]*Column
}

// NewBoard returns the default board: the three fixed columns, all empty
func NewBoard() *Board {
	columns := make(map[ColumnID]*Column, len(ColumnOrder))
	for _, id := range ColumnOrder {
		columns[id] = newColumn(id)
	}
	return &Board{columns: columns}
}

// Columns returns the columns in render order.
// The returned columns are the board's own; callers must not modify them.
func (b *Board) Columns() []*Column {
	cols := make([]*Column, 0, len(ColumnOrder))
	for _, id := range ColumnOrder {
		cols = append(cols, b.columns[id])
	}
	return cols
}

// Column returns the column with the given id
func (b *Board) Column(id ColumnID) (*Column, bool) {
	col, ok := b.columns[id]
	return col, ok
}

// Items returns the cards of a column, nil for unknown ids
func (b *Board) Items(id ColumnID) []Card {
	col, ok := b.columns[id]
	if !ok {
		return nil
	}
	return col.Items
}

// Append adds a card to the end of a column
func (b *Board) Append(id ColumnID, card Card) error {
	col, ok := b.columns[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, id)
	}
	col.Items = append(col.Items, card)
	return nil
}

// FindCard returns the card with the given id and the column that owns it
func (b *Board) FindCard(cardID string) (Card, ColumnID, bool) {
	for _, id := range ColumnOrder {
		col := b.columns[id]
		if i := col.IndexOf(cardID); i >= 0 {
			return col.Items[i], id, true
		}
	}
	return Card{}, "", false
}

// UpdateCard replaces the content of the card with the given id.
// Returns false when no column holds the card.
func (b *Board) UpdateCard(cardID, content string) bool {
	for _, id := range ColumnOrder {
		col := b.columns[id]
		if i := col.IndexOf(cardID); i >= 0 {
			col.Items[i].Content = content
			return true
		}
	}
	return false
}

// RemoveCard removes the card from the given column.
// Returns false when the column does not hold the card.
func (b *Board) RemoveCard(id ColumnID, cardID string) (Card, bool) {
	col, ok := b.columns[id]
	if !ok {
		return Card{}, false
	}
	i := col.IndexOf(cardID)
	if i < 0 {
		return Card{}, false
	}
	card := col.Items[i]
	col.Items = append(col.Items[:i:i], col.Items[i+1:]...)
	return card, true
}

// MoveCard removes the card from one column and appends it to another.
// Moving onto the column that already holds the card leaves it in place.
// Returns false when nothing changed.
func (b *Board) MoveCard(cardID string, from, to ColumnID) bool {
	if from == to {
		return false
	}
	target, ok := b.columns[to]
	if !ok {
		return false
	}
	card, ok := b.RemoveCard(from, cardID)
	if !ok {
		return false
	}
	target.Items = append(target.Items, card)
	return true
}

// CardCount returns the total number of cards across all columns
func (b *Board) CardCount() int {
	total := 0
	for _, col := range b.columns {
		total += len(col.Items)
	}
	return total
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	clone := NewBoard()
	for id, col := range b.columns {
		clone.columns[id].Items = append([]Card{}, col.Items...)
	}
	return clone
}

// Validate checks that no card id is held twice
func (b *Board) Validate() error {
	seen := make(map[string]ColumnID)
	for _, id := range ColumnOrder {
		for _, card := range b.columns[id].Items {
			if prev, dup := seen[card.ID]; dup {
				return fmt.Errorf("%w: %s in %s and %s", ErrDuplicateCard, card.ID, prev, id)
			}
			seen[card.ID] = id
		}
	}
	return nil
}
