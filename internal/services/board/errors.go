package board

import (
	"errors"

	"github.com/thenoetrevino/minitrello/internal/models"
)

// ErrSaveFailed wraps storage failures surfaced in strict mode
var ErrSaveFailed = errors.New("failed to save board")

// IsNoOp reports whether err is a rejection that leaves the board untouched
// and should not be shown to the user as a failure.
func IsNoOp(err error) bool {
	return errors.Is(err, models.ErrEmptyContent)
}
