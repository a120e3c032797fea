package cli

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	appcli "github.com/thenoetrevino/minitrello/internal/cli"
	"github.com/thenoetrevino/minitrello/internal/config"
	"github.com/thenoetrevino/minitrello/internal/database"
	"github.com/thenoetrevino/minitrello/internal/services/board"
	"github.com/thenoetrevino/minitrello/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and a CLI over it.
// The board service is strict, as it is for real CLI runs.
func SetupCLITest(t *testing.T) (*sql.DB, *appcli.CLI) {
	t.Helper()
	return SetupCLITestWithStore(t, nil)
}

// SetupCLITestWithStore is SetupCLITest with the board kept in store instead.
// A nil store uses a fresh in-memory database.
func SetupCLITestWithStore(t *testing.T, store database.KVStore) (*sql.DB, *appcli.CLI) {
	t.Helper()

	var db *sql.DB
	if store == nil {
		db = testutil.SetupTestDB(t)
		store = database.NewKVRepo(db)
	}

	svc := board.NewService(store,
		board.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		board.WithStrictPersistence(),
	)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}

	return db, appcli.New(svc, config.Default())
}

// AddTestCard adds a card through the service and returns its id
func AddTestCard(t *testing.T, c *appcli.CLI, content string) string {
	t.Helper()
	card, err := c.Board.AddCard(context.Background(), content)
	if err != nil {
		t.Fatalf("Failed to add card %q: %v", content, err)
	}
	return card.ID
}
