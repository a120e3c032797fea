package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/thenoetrevino/minitrello/internal/converters"
	"github.com/thenoetrevino/minitrello/internal/database"
	"github.com/thenoetrevino/minitrello/internal/models"
)

// Storage keys
const (
	// BoardKey holds the versioned board snapshot
	BoardKey = "board"

	// LegacyBoardKey holds the unversioned column mapping written by older releases
	LegacyBoardKey = "todoColumn"
)

// Service defines all board operations.
// Every mutation that changes the board writes the full snapshot back to the store.
type Service interface {
	// Read operations
	Board() *models.Board
	FindCard(cardID string) (models.Card, models.ColumnID, bool)

	// Persistence
	Load(ctx context.Context) error
	Reset(ctx context.Context) error

	// Write operations
	AddCard(ctx context.Context, content string) (models.Card, error)
	UpdateCard(ctx context.Context, cardID, content string) (bool, error)
	DeleteCard(ctx context.Context, cardID string, columnID models.ColumnID) (bool, error)
	MoveCard(ctx context.Context, cardID string, from, to models.ColumnID) (bool, error)
}

// service implements Service on top of a key-value store
type service struct {
	mu     sync.Mutex
	board  *models.Board
	store  database.KVStore
	logger *slog.Logger
	newID  func() string
	strict bool
}

// NewService creates a board service holding the default empty board.
// Call Load to replace it with the persisted board.
func NewService(store database.KVStore, opts ...Option) Service {
	cfg := &serviceConfig{
		logger: slog.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &service{
		board:  models.NewBoard(),
		store:  store,
		logger: cfg.logger,
		newID:  cfg.newID,
		strict: cfg.strict,
	}
}

// Board returns a copy of the current board
func (s *service) Board() *models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// FindCard returns the card with the given id and the column that owns it
func (s *service) FindCard(cardID string) (models.Card, models.ColumnID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.FindCard(cardID)
}

// Load reads the persisted board.
// Missing, unreadable or invalid snapshots leave the default board in place.
func (s *service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.readSnapshot(ctx)
	if err != nil {
		if s.strict {
			return err
		}
		s.logger.Error("failed to read saved board", "error", err)
		return nil
	}
	if loaded != nil {
		s.board = loaded
	}
	return nil
}

// readSnapshot returns nil with no error when nothing usable is stored
func (s *service) readSnapshot(ctx context.Context) (*models.Board, error) {
	value, ok, err := s.store.Get(ctx, BoardKey)
	if err != nil {
		return nil, err
	}
	key := BoardKey

	if !ok {
		value, ok, err = s.store.Get(ctx, LegacyBoardKey)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Debug("no saved board, starting empty")
			return nil, nil
		}
		key = LegacyBoardKey
	}

	loaded, err := converters.DecodeBoard([]byte(value))
	if err != nil {
		s.logger.Warn("can't use saved board, starting empty", "key", key, "error", err)
		return nil, nil
	}

	s.logger.Info("loaded board", "key", key, "cards", loaded.CardCount())
	if key == LegacyBoardKey {
		// Rewrite under the versioned key so the legacy value is no longer consulted
		if err := s.persist(ctx, loaded); err != nil {
			s.logger.Warn("failed to migrate legacy board", "error", err)
		}
	}
	return loaded, nil
}

// Reset clears every stored board and starts over with empty columns.
// This is the only operation that deletes persisted data.
func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, BoardKey, LegacyBoardKey); err != nil {
		return fmt.Errorf("failed to reset board: %w", err)
	}
	s.board = models.NewBoard()
	s.logger.Info("board reset")
	return nil
}

// AddCard appends a new card to the Pending column.
// Blank content is rejected with models.ErrEmptyContent and nothing changes.
func (s *service) AddCard(ctx context.Context, content string) (models.Card, error) {
	if strings.TrimSpace(content) == "" {
		return models.Card{}, models.ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := models.Card{ID: s.newID(), Content: content}
	if err := s.board.Append(models.ColumnPending, card); err != nil {
		return models.Card{}, err
	}
	s.logger.Debug("card added", "card_id", card.ID)
	return card, s.save(ctx)
}

// UpdateCard replaces a card's content wherever it lives.
// A missing card is a no-op.
func (s *service) UpdateCard(ctx context.Context, cardID, content string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.board.UpdateCard(cardID, content) {
		s.logger.Debug("update skipped, card not found", "card_id", cardID)
		return false, nil
	}
	return true, s.save(ctx)
}

// DeleteCard removes a card from the given column.
// A card that is not in that column is a no-op.
func (s *service) DeleteCard(ctx context.Context, cardID string, columnID models.ColumnID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.board.RemoveCard(columnID, cardID); !ok {
		s.logger.Debug("delete skipped, card not found", "card_id", cardID, "column", columnID)
		return false, nil
	}
	return true, s.save(ctx)
}

// MoveCard moves a card from one column to the end of another.
// Moving onto the card's own column, or from a column that does not hold it, is a no-op.
func (s *service) MoveCard(ctx context.Context, cardID string, from, to models.ColumnID) (bool, error) {
	if !to.Valid() {
		return false, fmt.Errorf("%w: %q", models.ErrUnknownColumn, to)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.board.MoveCard(cardID, from, to) {
		return false, nil
	}
	s.logger.Debug("card moved", "card_id", cardID, "from", from, "to", to)
	return true, s.save(ctx)
}

// save mirrors the full board to the store.
// Failures are logged and swallowed unless the service is strict.
func (s *service) save(ctx context.Context) error {
	err := s.persist(ctx, s.board)
	if err == nil {
		return nil
	}
	if s.strict {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	s.logger.Error("error occurred trying to save board", "error", err)
	return nil
}

func (s *service) persist(ctx context.Context, b *models.Board) error {
	data, err := converters.EncodeBoard(b)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, BoardKey, string(data))
}
