package scoring

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/storage"
)

// Service scores word batches against its current score table
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	table model.ScoreTable
}

// New creates a new ScoringService using the default score table
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		table:   model.DefaultScoreTable(),
	}
}

// Table returns the active score table
func (s *Service) Table() model.ScoreTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// UseTable replaces the active score table
func (s *Service) UseTable(table model.ScoreTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
}

// LoadFromStorage switches to a named score table from storage
func (s *Service) LoadFromStorage(ctx context.Context, name string) error {
	table, err := s.storage.GetScoreTable(ctx, name)
	if err != nil {
		return err
	}
	s.UseTable(table)
	s.logger.Debug("score table loaded",
		slog.String("name", name),
		slog.Int("letters", len(table)),
	)
	return nil
}

// SaveTable stores the active score table under name
func (s *Service) SaveTable(ctx context.Context, name string) error {
	return s.storage.SaveScoreTable(ctx, name, s.Table())
}

// Score returns the points for a batch of words
func (s *Service) Score(words []string) int {
	return Score(words, s.Table())
}

// Breakdown returns per-word scoring detail for a batch of words
func (s *Service) Breakdown(words []string) []WordScore {
	return Breakdown(words, s.Table())
}

// Interface for dependency injection
type ServiceInterface interface {
	Table() model.ScoreTable
	UseTable(table model.ScoreTable)
	LoadFromStorage(ctx context.Context, name string) error
	SaveTable(ctx context.Context, name string) error
	Score(words []string) int
	Breakdown(words []string) []WordScore
}

var _ ServiceInterface = (*Service)(nil)
