package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/minitrello/internal/config"
	"github.com/thenoetrevino/minitrello/internal/database"
	"github.com/thenoetrevino/minitrello/internal/models"
	"github.com/thenoetrevino/minitrello/internal/services/board"
	"github.com/thenoetrevino/minitrello/internal/testutil"
	"github.com/thenoetrevino/minitrello/internal/tui/components"
)

const (
	testWidth  = 120
	testHeight = 40
)

// setupTestModel creates a sized model over store with cards added to Pending in order
func setupTestModel(t *testing.T, store database.KVStore, cards ...string) Model {
	t.Helper()
	ctx := context.Background()

	svc := board.NewService(store, board.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, svc.Load(ctx))
	for _, content := range cards {
		_, err := svc.AddCard(ctx, content)
		require.NoError(t, err)
	}

	m := InitialModel(ctx, svc, config.Default())
	return update(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
}

// update feeds msg to m and returns the updated Model
func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

// updateCmd feeds msg to m and returns the updated Model and its Cmd
func updateCmd(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// keyPress builds the key message for a key name as it appears in the key mappings
func keyPress(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: name})
}

// press sends each named key in order
func press(m Model, names ...string) Model {
	for _, name := range names {
		m = update(m, keyPress(name))
	}
	return m
}

// typeText sends s one character at a time
func typeText(m Model, s string) Model {
	for _, r := range s {
		if r == ' ' {
			m = update(m, keyPress("space"))
			continue
		}
		m = update(m, tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)}))
	}
	return m
}

// contents returns the card contents of a column in order
func contents(m Model, id models.ColumnID) []string {
	var out []string
	for _, card := range m.Service.Board().Items(id) {
		out = append(out, card.Content)
	}
	return out
}

// point is a screen cell
type point struct{ X, Y int }

// cardPoint returns a cell on the content row of the card with the given content
func cardPoint(t *testing.T, m Model, content string) point {
	t.Helper()
	b := m.Service.Board()
	l := m.layout(b)
	for _, col := range l.Columns {
		for _, placed := range col.View.Cards {
			card, _, ok := b.FindCard(placed.ID)
			if ok && card.Content == content {
				return point{X: col.X + placed.Left + 1, Y: col.Y + placed.Top + 1}
			}
		}
	}
	t.Fatalf("card %q is not on screen", content)
	return point{}
}

// controlPoint returns the first cell of a control on the card with the given content
func controlPoint(t *testing.T, m Model, content string, ctrl components.Control) point {
	t.Helper()
	b := m.Service.Board()
	l := m.layout(b)
	for _, col := range l.Columns {
		for _, placed := range col.View.Cards {
			card, _, ok := b.FindCard(placed.ID)
			if !ok || card.Content != content {
				continue
			}
			for _, span := range placed.View.Controls {
				if span.Control == ctrl {
					return point{
						X: col.X + placed.Left + span.Start,
						Y: col.Y + placed.Top + placed.View.ControlsRow,
					}
				}
			}
		}
	}
	t.Fatalf("control %d on card %q is not on screen", ctrl, content)
	return point{}
}

// columnPoint returns a cell inside the column below its cards
func columnPoint(t *testing.T, m Model, id models.ColumnID) point {
	t.Helper()
	l := m.layout(m.Service.Board())
	for _, col := range l.Columns {
		if col.ID == id {
			return point{X: col.X + 1, Y: col.Y + 1}
		}
	}
	t.Fatalf("column %q is not on screen", id)
	return point{}
}

func mouseDown(p point) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: p.X, Y: p.Y, Button: tea.MouseLeft}
}

func mouseMove(p point) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: p.X, Y: p.Y, Button: tea.MouseLeft}
}

func mouseUp(p point) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: p.X, Y: p.Y, Button: tea.MouseLeft}
}

// newStore returns an empty in-memory store
func newStore() *testutil.MemoryStore {
	return testutil.NewMemoryStore()
}
