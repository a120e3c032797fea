package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/services/board"
	"github.com/thenoetrevino/minitrello/internal/testutil"
)

func newTestBoard(t *testing.T, ids ...string) board.Service {
	t.Helper()
	next := 0
	svc := board.NewService(testutil.NewMemoryStore(),
		board.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		board.WithIDGenerator(func() string {
			id := ids[next]
			next++
			return id
		}),
	)
	for range ids {
		_, err := svc.AddCard(context.Background(), "card")
		require.NoError(t, err)
	}
	return svc
}

func TestResolveCard(t *testing.T) {
	svc := newTestBoard(t, "abc123", "abd456", "xyz789")

	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr error
		code    int
	}{
		{name: "full id", input: "abc123", wantID: "abc123"},
		{name: "unique prefix", input: "xy", wantID: "xyz789"},
		{name: "surrounding space", input: " abd ", wantID: "abd456"},
		{name: "ambiguous prefix", input: "ab", code: ExitUsage},
		{name: "missing", input: "nope", wantErr: models.ErrCardNotFound, code: ExitNotFound},
		{name: "empty", input: "  ", code: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, col, err := ResolveCard(svc, tt.input)
			if tt.code != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.code, ExitCode(err))
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, card.ID)
			assert.Equal(t, models.ColumnPending, col)
		})
	}
}

func TestClassifyAndExitCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		errCode string
	}{
		{name: "not found", err: fmt.Errorf("%w: x", models.ErrCardNotFound), code: ExitNotFound, errCode: "CARD_NOT_FOUND"},
		{name: "empty", err: models.ErrEmptyContent, code: ExitValidation, errCode: "EMPTY_CONTENT"},
		{name: "column", err: fmt.Errorf("%w: x", models.ErrUnknownColumn), code: ExitValidation, errCode: "INVALID_COLUMN"},
		{name: "save", err: fmt.Errorf("%w: disk", board.ErrSaveFailed), code: ExitError, errCode: "SAVE_FAILED"},
		{name: "usage", err: Usagef("bad"), code: ExitUsage, errCode: "USAGE_ERROR"},
		{name: "other", err: errors.New("boom"), code: ExitError, errCode: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, errCode := Classify(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.errCode, errCode)
			assert.Equal(t, tt.code, ExitCode(tt.err))
		})
	}

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Nil(t, WithExitCode(ExitError, nil))
}

func TestContextCarriesCLI(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	c := New(newTestBoard(t), nil)
	got, ok := FromContext(WithCLI(context.Background(), c))
	require.True(t, ok)
	assert.Same(t, c, got)
	assert.NoError(t, c.Close(), "a CLI without a database closes cleanly")
}
