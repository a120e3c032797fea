// Package converters translates between the in-memory board and its
// persisted JSON snapshot.
package converters

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thenoetrevino/minitrello/internal/models"
)

// SnapshotVersion is the version written by EncodeBoard
const SnapshotVersion = 1

// Snapshot errors
var (
	// ErrUnsupportedVersion indicates a snapshot written by a newer release
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrInvalidSnapshot indicates the stored value does not match the snapshot shape
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// Snapshot is the versioned envelope stored under the board key
type Snapshot struct {
	Version int                       `json:"version"`
	Columns map[string]ColumnSnapshot `json:"columns"`
}

// ColumnSnapshot is the stored shape of a single column
type ColumnSnapshot struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Items []models.Card `json:"items"`
}

// BoardToSnapshot converts a board into its persisted envelope
func BoardToSnapshot(b *models.Board) Snapshot {
	columns := make(map[string]ColumnSnapshot, len(models.ColumnOrder))
	for _, col := range b.Columns() {
		items := make([]models.Card, len(col.Items))
		copy(items, col.Items)
		columns[string(col.ID)] = ColumnSnapshot{
			ID:    string(col.ID),
			Title: col.Title,
			Items: items,
		}
	}
	return Snapshot{Version: SnapshotVersion, Columns: columns}
}

// SnapshotToBoard converts a decoded envelope back into a board.
// Titles always come from the fixed column set, not from the snapshot.
func SnapshotToBoard(s Snapshot) (*models.Board, error) {
	b := models.NewBoard()
	for key, col := range s.Columns {
		id := models.ColumnID(key)
		if !id.Valid() {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidSnapshot, models.ErrUnknownColumn, key)
		}
		for _, card := range col.Items {
			if err := b.Append(id, card); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
			}
		}
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return b, nil
}

// EncodeBoard serializes the full board as a versioned snapshot
func EncodeBoard(b *models.Board) ([]byte, error) {
	data, err := json.Marshal(BoardToSnapshot(b))
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// DecodeBoard parses a stored snapshot.
// Version 1 envelopes and the unversioned legacy column mapping are accepted;
// anything else is rejected so the caller can fall back to a fresh board.
func DecodeBoard(data []byte) (*models.Board, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidSnapshot)
	}

	if _, versioned := obj["version"]; !versioned {
		return decodeLegacy(data, doc)
	}

	var header struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if header.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header.Version)
	}

	if err := validateDocument(snapshotSchema, doc); err != nil {
		return nil, err
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return SnapshotToBoard(s)
}

// decodeLegacy reads the bare column mapping written before snapshots were versioned
func decodeLegacy(data []byte, doc any) (*models.Board, error) {
	if err := validateDocument(legacySchema, doc); err != nil {
		return nil, err
	}

	var columns map[string]ColumnSnapshot
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return SnapshotToBoard(Snapshot{Version: 0, Columns: columns})
}
