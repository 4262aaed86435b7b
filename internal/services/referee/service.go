package referee

import (
	"log/slog"

	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/services/dictionary"
	"github.com/mcoot/guavagrams/internal/services/scoring"
)

// Service builds referees from the loaded dictionaries and active score table
type Service struct {
	dictionaries dictionary.ServiceInterface
	scoring      scoring.ServiceInterface
	logger       *slog.Logger
}

// NewService creates a new RefereeService
func NewService(dictionaries dictionary.ServiceInterface, scoring scoring.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		dictionaries: dictionaries,
		scoring:      scoring,
		logger:       logger,
	}
}

// For returns a referee for the named dictionary
func (s *Service) For(dictionaryName string) (*Referee, error) {
	vocabulary, err := s.dictionaries.Vocabulary(dictionaryName)
	if err != nil {
		return nil, err
	}
	return New(vocabulary, s.scoring.Table()), nil
}

// Validate adjudicates a standalone board against the named dictionary
func (s *Service) Validate(dictionaryName string, b *grid.LetterBoard) (Verdict, error) {
	r, err := s.For(dictionaryName)
	if err != nil {
		return Verdict{}, err
	}

	verdict, err := r.Commit(b)
	if err != nil {
		s.logger.Debug("board rejected",
			slog.String("dictionary", dictionaryName),
			slog.Any("error", err),
		)
		return Verdict{}, err
	}

	s.logger.Debug("board accepted",
		slog.String("dictionary", dictionaryName),
		slog.Int("words", len(verdict.Words)),
		slog.Int("score", verdict.Score),
	)
	return verdict, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	For(dictionaryName string) (*Referee, error)
	Validate(dictionaryName string, b *grid.LetterBoard) (Verdict, error)
}

var _ ServiceInterface = (*Service)(nil)
