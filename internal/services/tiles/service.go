package tiles

import (
	"log/slog"

	"github.com/mcoot/guavagrams/internal/dependencies/random"
	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/services/dictionary"
)

// VocabularySource provides the words a dictionary distribution is derived from
type VocabularySource interface {
	Vocabulary(name string) (dictionary.Vocabulary, error)
}

// Service resolves distributions and draws tiles from them
type Service struct {
	vocabularies VocabularySource
	rnd          random.Random
	logger       *slog.Logger
}

// New creates a new TilesService
func New(vocabularies VocabularySource, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		vocabularies: vocabularies,
		rnd:          rnd,
		logger:       logger,
	}
}

// Distribution resolves a distribution by name. The dictionary
// distribution counts letters of the named vocabulary.
func (s *Service) Distribution(name, dictionaryName string) (Distribution, error) {
	var words []string
	if name == NameDictionary {
		v, err := s.vocabularies.Vocabulary(dictionaryName)
		if err != nil {
			return nil, err
		}
		words = v.Words()
	}
	return ByName(name, words, s.rnd)
}

// NewPile creates a shuffled pile of roughly amount tiles
func (s *Service) NewPile(d Distribution, amount int) model.Pile {
	pile := d.CreatePile(amount)
	Shuffle(pile, s.rnd)
	s.logger.Debug("pile created",
		slog.String("distribution", d.Name()),
		slog.Int("requested", amount),
		slog.Int("size", len(pile)),
	)
	return pile
}

// Draw pulls count letters from d without depleting anything
func (s *Service) Draw(d Distribution, count int) []model.Letter {
	letters := make([]model.Letter, 0, max(count, 0))
	for range count {
		letters = append(letters, d.PullEndless())
	}
	return letters
}

// Interface for dependency injection
type ServiceInterface interface {
	Distribution(name, dictionaryName string) (Distribution, error)
	NewPile(d Distribution, amount int) model.Pile
	Draw(d Distribution, count int) []model.Letter
}

var _ ServiceInterface = (*Service)(nil)
