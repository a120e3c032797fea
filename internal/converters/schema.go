package converters

import (
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const cardSchema = `{
	"type": "object",
	"required": ["id", "content"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"content": {"type": "string"}
	}
}`

const columnSchema = `{
	"type": "object",
	"required": ["items"],
	"properties": {
		"id": {"type": "string"},
		"title": {"type": "string"},
		"items": {"type": "array", "items": ` + cardSchema + `}
	}
}`

const columnsSchema = `{
	"type": "object",
	"required": ["pending", "inProgress", "completed"],
	"additionalProperties": false,
	"properties": {
		"pending": ` + columnSchema + `,
		"inProgress": ` + columnSchema + `,
		"completed": ` + columnSchema + `
	}
}`

var (
	snapshotSchema = jsonschema.MustCompileString("board-snapshot-v1.json", `{
		"type": "object",
		"required": ["version", "columns"],
		"properties": {
			"version": {"type": "integer", "const": 1},
			"columns": `+columnsSchema+`
		}
	}`)

	legacySchema = jsonschema.MustCompileString("board-snapshot-legacy.json", columnsSchema)
)

// InvalidSnapshotError describes the first schema violation found in a snapshot
type InvalidSnapshotError struct {
	Path    string
	Message string
}

func (e *InvalidSnapshotError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap lets callers match any schema violation with errors.Is(err, ErrInvalidSnapshot)
func (e *InvalidSnapshotError) Unwrap() error {
	return ErrInvalidSnapshot
}

func validateDocument(schema *jsonschema.Schema, doc any) error {
	if err := schema.Validate(doc); err != nil {
		return toSnapshotError(err)
	}
	return nil
}

// toSnapshotError reduces a jsonschema error tree to its first leaf cause
func toSnapshotError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &InvalidSnapshotError{Message: err.Error()}
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	return &InvalidSnapshotError{
		Path:    pointerToPath(leaf.InstanceLocation),
		Message: leaf.Message,
	}
}

// pointerToPath turns "/columns/pending/items/0" into "columns.pending.items[0]"
func pointerToPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	var b strings.Builder
	for i, part := range strings.Split(pointer, "/") {
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
