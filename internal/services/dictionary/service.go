package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/storage"
)

// Service holds the named vocabularies available to a game
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu           sync.RWMutex
	vocabularies map[string]Vocabulary
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage:      storage,
		logger:       logger,
		vocabularies: make(map[string]Vocabulary),
	}
}

// LoadWords directly loads a slice of words under name
func (s *Service) LoadWords(name string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vocabularies[name] = NewVocabulary(words...)
	s.logger.Debug("dictionary loaded",
		slog.String("name", name),
		slog.Int("words", len(s.vocabularies[name])),
	)
	return nil
}

// LoadFromFile reads a word list from disk, saves it to storage and loads it
func (s *Service) LoadFromFile(ctx context.Context, name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary %q: %w", path, err)
	}
	defer file.Close()

	words, err := ReadWords(file)
	if err != nil {
		return fmt.Errorf("read dictionary %q: %w", path, err)
	}

	return s.Store(ctx, name, words)
}

// Store saves words to storage under name and loads them
func (s *Service) Store(ctx context.Context, name string, words []string) error {
	if err := s.storage.SaveDictionaryWords(ctx, name, words); err != nil {
		return fmt.Errorf("save dictionary %q: %w", name, err)
	}
	return s.LoadWords(name, words)
}

// LoadDirectory loads every file below root, named after its file name
func (s *Service) LoadDirectory(ctx context.Context, root string) ([]string, error) {
	files, err := List(root)
	if err != nil {
		return nil, fmt.Errorf("list dictionaries in %q: %w", root, err)
	}

	names := make([]string, 0, len(files))
	for _, path := range files {
		name := NameFromPath(path)
		if err := s.LoadFromFile(ctx, name, path); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// LoadFromStorage loads a previously saved vocabulary
func (s *Service) LoadFromStorage(ctx context.Context, name string) error {
	words, err := s.storage.GetDictionaryWords(ctx, name)
	if err != nil {
		return err
	}
	return s.LoadWords(name, words)
}

// Delete unloads the named vocabulary and removes it from storage
func (s *Service) Delete(ctx context.Context, name string) error {
	if !s.IsLoaded(name) {
		return fmt.Errorf("%w: %q", model.ErrDictionaryNotLoaded, name)
	}
	if err := s.storage.DeleteDictionary(ctx, name); err != nil {
		return fmt.Errorf("delete dictionary %q: %w", name, err)
	}

	s.mu.Lock()
	delete(s.vocabularies, name)
	s.mu.Unlock()

	s.logger.Info("dictionary deleted", slog.String("name", name))
	return nil
}

// Vocabulary returns the named vocabulary
func (s *Service) Vocabulary(name string) (Vocabulary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vocabularies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrDictionaryNotLoaded, name)
	}
	return v, nil
}

// Validate checks words against the named vocabulary
func (s *Service) Validate(name string, words []string) error {
	v, err := s.Vocabulary(name)
	if err != nil {
		return err
	}
	return ValidateWords(words, v)
}

// IsLoaded returns whether the named vocabulary has been loaded
func (s *Service) IsLoaded(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.vocabularies[name]
	return ok
}

// Names returns the loaded vocabulary names, sorted
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.vocabularies))
}

// WordCount returns the number of words in the named vocabulary
func (s *Service) WordCount(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vocabularies[name])
}

// Interface check
type ServiceInterface interface {
	LoadWords(name string, words []string) error
	LoadFromFile(ctx context.Context, name, path string) error
	LoadDirectory(ctx context.Context, root string) ([]string, error)
	Store(ctx context.Context, name string, words []string) error
	LoadFromStorage(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	Vocabulary(name string) (Vocabulary, error)
	Validate(name string, words []string) error
	IsLoaded(name string) bool
	Names() []string
	WordCount(name string) int
}

var _ ServiceInterface = (*Service)(nil)
