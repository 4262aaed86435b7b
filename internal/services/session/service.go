package session

import (
	"log/slog"

	"github.com/mcoot/guavagrams/internal/dependencies/clock"
	"github.com/mcoot/guavagrams/internal/dependencies/random"
	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/services/referee"
	"github.com/mcoot/guavagrams/internal/services/tiles"
)

// Options selects what a new game is played with
type Options struct {
	Config
	Distribution string
	Dictionary   string
}

// Service starts sessions from the loaded dictionaries and distributions
type Service struct {
	tiles   tiles.ServiceInterface
	referee referee.ServiceInterface
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewService creates a new SessionService
func NewService(
	tiles tiles.ServiceInterface,
	referee referee.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		tiles:   tiles,
		referee: referee,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Start deals a new game on an empty board
func (s *Service) Start(opts Options) (*Session, error) {
	distribution, err := s.tiles.Distribution(opts.Distribution, opts.Dictionary)
	if err != nil {
		return nil, err
	}
	ref, err := s.referee.For(opts.Dictionary)
	if err != nil {
		return nil, err
	}
	return New(
		opts.Config,
		grid.NewShared(),
		distribution,
		ref,
		s.clock,
		s.random,
		s.logger.With(slog.String("dictionary", opts.Dictionary)),
	)
}
