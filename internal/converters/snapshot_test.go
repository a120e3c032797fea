package converters

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/minitrello/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func sampleBoard(t *testing.T) *models.Board {
	t.Helper()
	b := models.NewBoard()
	require.NoError(t, b.Append(models.ColumnPending, models.Card{ID: "p1", Content: "Buy milk"}))
	require.NoError(t, b.Append(models.ColumnPending, models.Card{ID: "p2", Content: "Walk dog"}))
	require.NoError(t, b.Append(models.ColumnInProgress, models.Card{ID: "i1", Content: "Write report"}))
	require.NoError(t, b.Append(models.ColumnCompleted, models.Card{ID: "c1", Content: "  spaced  "}))
	return b
}

// ============================================================================
// TEST CASES - EncodeBoard / DecodeBoard
// ============================================================================

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	original := sampleBoard(t)

	data, err := EncodeBoard(original)
	require.NoError(t, err)

	decoded, err := DecodeBoard(data)
	require.NoError(t, err)

	assert.Equal(t, original.Columns(), decoded.Columns())
}

func TestEncodeBoard_Shape(t *testing.T) {
	t.Parallel()

	data, err := EncodeBoard(models.NewBoard())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.EqualValues(t, SnapshotVersion, raw["version"])
	columns, ok := raw["columns"].(map[string]any)
	require.True(t, ok, "columns should be an object")
	assert.Len(t, columns, 3)

	pending := columns["pending"].(map[string]any)
	assert.Equal(t, "pending", pending["id"])
	assert.Equal(t, "Pending", pending["title"])
	assert.Equal(t, []any{}, pending["items"])
}

func TestDecodeBoard_Legacy(t *testing.T) {
	t.Parallel()

	legacy := `{
		"pending": {"id": "pending", "title": "Pending", "items": [{"id": "a", "content": "Buy milk"}]},
		"inProgress": {"id": "inProgress", "title": "In Progress", "items": []},
		"completed": {"id": "completed", "title": "Completed", "items": [{"id": "b", "content": "Done thing"}]}
	}`

	b, err := DecodeBoard([]byte(legacy))
	require.NoError(t, err)

	pending, _ := b.Column(models.ColumnPending)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, models.Card{ID: "a", Content: "Buy milk"}, pending.Items[0])

	completed, _ := b.Column(models.ColumnCompleted)
	require.Len(t, completed.Items, 1)
	assert.Equal(t, "b", completed.Items[0].ID)
}

func TestDecodeBoard_TitlesComeFromFixedColumns(t *testing.T) {
	t.Parallel()

	data := `{"version": 1, "columns": {
		"pending": {"id": "pending", "title": "Something Else", "items": []},
		"inProgress": {"id": "inProgress", "title": "", "items": []},
		"completed": {"id": "completed", "title": "Completed", "items": []}
	}}`

	b, err := DecodeBoard([]byte(data))
	require.NoError(t, err)

	pending, _ := b.Column(models.ColumnPending)
	assert.Equal(t, "Pending", pending.Title)
}

func TestDecodeBoard_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "not json",
			input:   `{not json`,
			wantErr: ErrInvalidSnapshot,
		},
		{
			name:    "json array",
			input:   `[1, 2, 3]`,
			wantErr: ErrInvalidSnapshot,
		},
		{
			name:    "future version",
			input:   `{"version": 7, "columns": {}}`,
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "missing column",
			input:   `{"version": 1, "columns": {"pending": {"items": []}, "inProgress": {"items": []}}}`,
			wantErr: ErrInvalidSnapshot,
		},
		{
			name: "extra column",
			input: `{"pending": {"items": []}, "inProgress": {"items": []},
				"completed": {"items": []}, "archived": {"items": []}}`,
			wantErr: ErrInvalidSnapshot,
		},
		{
			name: "card without id",
			input: `{"version": 1, "columns": {"pending": {"items": [{"content": "x"}]},
				"inProgress": {"items": []}, "completed": {"items": []}}}`,
			wantErr: ErrInvalidSnapshot,
		},
		{
			name: "duplicate card",
			input: `{"version": 1, "columns": {"pending": {"items": [{"id": "a", "content": "x"}]},
				"inProgress": {"items": [{"id": "a", "content": "x"}]}, "completed": {"items": []}}}`,
			wantErr: models.ErrDuplicateCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := DecodeBoard([]byte(tt.input))
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, tt.wantErr), "error = %v, want %v", err, tt.wantErr)
		})
	}
}

func TestDecodeBoard_SchemaErrorPath(t *testing.T) {
	t.Parallel()

	input := `{"version": 1, "columns": {"pending": {"items": [{"id": "a", "content": 5}]},
		"inProgress": {"items": []}, "completed": {"items": []}}}`

	_, err := DecodeBoard([]byte(input))

	var schemaErr *InvalidSnapshotError
	require.True(t, errors.As(err, &schemaErr), "error should be an InvalidSnapshotError, got %v", err)
	assert.Equal(t, "columns.pending.items[0].content", schemaErr.Path)
}

func TestPointerToPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                        "",
		"/":                       "",
		"/columns":                "columns",
		"/columns/pending/items/3": "columns.pending.items[3]",
	}
	for pointer, want := range tests {
		assert.Equal(t, want, pointerToPath(pointer), "pointer %q", pointer)
	}
}
