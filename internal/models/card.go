package models

// Card represents a single unit of work on the board
type Card struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
