package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/minitrello/internal/cli/styles"
	"github.com/thenoetrevino/minitrello/internal/config"
	"github.com/thenoetrevino/minitrello/internal/database"
	"github.com/thenoetrevino/minitrello/internal/logging"
	"github.com/thenoetrevino/minitrello/internal/services/board"
)

// CLI represents the CLI application context
type CLI struct {
	Board  board.Service
	Config *config.Config

	db        *sql.DB
	logCloser io.Closer
}

// NewCLI opens the board database and loads the board.
// An empty dbPath falls back to the configured path, then the default location.
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	logCloser, err := logging.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// The CLI reports storage failures instead of carrying on
	svc := board.NewService(database.NewKVRepo(db),
		board.WithLogger(logging.Logger),
		board.WithStrictPersistence(),
	)
	if err := svc.Load(ctx); err != nil {
		_ = db.Close()
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	c := New(svc, cfg)
	c.db = db
	c.logCloser = logCloser
	return c, nil
}

// New wraps an already loaded board service
func New(svc board.Service, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	styles.Init(cfg.ColorScheme)
	return &CLI{Board: svc, Config: cfg}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var err error
	if c.db != nil {
		err = c.db.Close()
	}
	if c.logCloser != nil {
		if closeErr := c.logCloser.Close(); closeErr != nil {
			slog.Default().Debug("error closing log file", "error", closeErr)
		}
	}
	return err
}
