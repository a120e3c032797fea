package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/services/board"
)

// ResolveCard finds a card by full id or by a prefix that matches exactly one card
func ResolveCard(svc board.Service, idOrPrefix string) (models.Card, models.ColumnID, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return models.Card{}, "", Usagef("card id cannot be empty")
	}
	if card, col, ok := svc.FindCard(idOrPrefix); ok {
		return card, col, nil
	}

	var (
		match    models.Card
		matchCol models.ColumnID
		matches  int
	)
	for _, col := range svc.Board().Columns() {
		for _, card := range col.Items {
			if strings.HasPrefix(card.ID, idOrPrefix) {
				match, matchCol = card, col.ID
				matches++
			}
		}
	}

	switch matches {
	case 0:
		return models.Card{}, "", fmt.Errorf("%w: %s", models.ErrCardNotFound, idOrPrefix)
	case 1:
		return match, matchCol, nil
	default:
		return models.Card{}, "", Usagef("card id %q is ambiguous (%d matches)", idOrPrefix, matches)
	}
}
