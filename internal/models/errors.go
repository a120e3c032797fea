package models

import "errors"

// Domain-specific errors for board operations
var (
	// ErrEmptyContent indicates a card was submitted with blank text
	ErrEmptyContent = errors.New("card content cannot be empty")

	// ErrCardNotFound indicates no column holds a card with the given id
	ErrCardNotFound = errors.New("card not found")

	// ErrUnknownColumn indicates a column id outside the fixed three
	ErrUnknownColumn = errors.New("unknown column")

	// ErrDuplicateCard indicates the same card id appears more than once on a board
	ErrDuplicateCard = errors.New("card appears in more than one place")
)
