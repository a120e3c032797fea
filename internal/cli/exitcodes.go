package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/services/board"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, failed saves, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Wrong argument count, unknown flags, ambiguous card ids.
	ExitUsage = 2

	// ExitNotFound indicates a requested card was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Blank card content, unknown column names.
	ExitValidation = 5
)

// ExitErr carries the process exit code for a failed command
type ExitErr struct {
	Code int
	Err  error

	// Reported is set once the error has been printed through an OutputFormatter
	Reported bool
}

func (e *ExitErr) Error() string {
	return e.Err.Error()
}

func (e *ExitErr) Unwrap() error {
	return e.Err
}

// WithExitCode attaches an exit code to err
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitErr{Code: code, Err: err}
}

// Usagef returns a usage error with exit code ExitUsage
func Usagef(format string, args ...any) error {
	return WithExitCode(ExitUsage, fmt.Errorf(format, args...))
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitErr
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	code, _ := Classify(err)
	return code
}

// Classify maps a domain error to its exit code and machine-readable error code
func Classify(err error) (int, string) {
	var exitErr *ExitErr
	switch {
	case errors.As(err, &exitErr) && exitErr.Code == ExitUsage:
		return ExitUsage, "USAGE_ERROR"
	case errors.Is(err, models.ErrCardNotFound):
		return ExitNotFound, "CARD_NOT_FOUND"
	case errors.Is(err, models.ErrEmptyContent):
		return ExitValidation, "EMPTY_CONTENT"
	case errors.Is(err, models.ErrUnknownColumn):
		return ExitValidation, "INVALID_COLUMN"
	case errors.Is(err, board.ErrSaveFailed):
		return ExitError, "SAVE_FAILED"
	case errors.As(err, &exitErr):
		return exitErr.Code, "ERROR"
	default:
		return ExitError, "ERROR"
	}
}

// Suggestion returns a hint for the machine-readable error code, "" when there is none
func Suggestion(errCode string) string {
	switch errCode {
	case "CARD_NOT_FOUND":
		return "run `minitrello card list` to see card ids"
	case "INVALID_COLUMN":
		return "use one of: pending, inProgress, completed"
	case "EMPTY_CONTENT":
		return "quote the card text, for example: minitrello card add \"Buy milk\""
	case "USAGE_ERROR":
		return "run with --help to see usage"
	}
	return ""
}
