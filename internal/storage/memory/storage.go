package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	dictionaries map[string][]string
	scoreTables  map[string]model.ScoreTable
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		dictionaries: make(map[string][]string),
		scoreTables:  make(map[string]model.ScoreTable),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) SaveDictionaryWords(ctx context.Context, name string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaries[name] = slices.Clone(words)
	return nil
}

func (s *Storage) GetDictionaryWords(ctx context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.dictionaries[name]
	if !ok {
		return nil, model.ErrDictionaryNotFound
	}
	return slices.Clone(words), nil
}

func (s *Storage) ListDictionaries(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.dictionaries)), nil
}

func (s *Storage) DeleteDictionary(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dictionaries, name)
	return nil
}

// Score table operations

func (s *Storage) SaveScoreTable(ctx context.Context, name string, table model.ScoreTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoreTables[name] = maps.Clone(table)
	return nil
}

func (s *Storage) GetScoreTable(ctx context.Context, name string) (model.ScoreTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.scoreTables[name]
	if !ok {
		return nil, model.ErrScoreTableNotFound
	}
	return maps.Clone(table), nil
}
