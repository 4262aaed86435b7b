package storage

import (
	"context"

	"github.com/mcoot/guavagrams/internal/model"
)

// Storage defines the interface for vocabulary and score table persistence
type Storage interface {
	// Dictionary operations
	SaveDictionaryWords(ctx context.Context, name string, words []string) error
	GetDictionaryWords(ctx context.Context, name string) ([]string, error)
	ListDictionaries(ctx context.Context) ([]string, error)
	DeleteDictionary(ctx context.Context, name string) error

	// Score table operations
	SaveScoreTable(ctx context.Context, name string, table model.ScoreTable) error
	GetScoreTable(ctx context.Context, name string) (model.ScoreTable, error)
}
