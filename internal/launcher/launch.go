// Package launcher wires storage, the board service and the TUI together
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/minitrello/internal/config"
	"github.com/thenoetrevino/minitrello/internal/database"
	"github.com/thenoetrevino/minitrello/internal/logging"
	"github.com/thenoetrevino/minitrello/internal/services/board"
	"github.com/thenoetrevino/minitrello/internal/tui/core"
)

// shutdownGrace bounds how long Launch waits for the program after a signal
const shutdownGrace = 5 * time.Second

// Launch starts the TUI application.
// An empty dbPath falls back to the configured path, then the default location.
func Launch(dbPath string) error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		// Allow time for in-flight writes to complete
		time.Sleep(100 * time.Millisecond)
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	svc := board.NewService(database.NewKVRepo(db), board.WithLogger(logging.Logger))
	if err := svc.Load(ctx); err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}

	tuiApp := core.New(ctx, svc, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not stop within grace period")
		}
	}

	return nil
}
