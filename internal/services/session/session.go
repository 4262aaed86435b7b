package session

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/mcoot/guavagrams/internal/dependencies/clock"
	"github.com/mcoot/guavagrams/internal/dependencies/random"
	"github.com/mcoot/guavagrams/internal/grid"
	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/services/referee"
	"github.com/mcoot/guavagrams/internal/services/tiles"
)

// Defaults for a classic game
const (
	DefaultPileSize = 144
	DefaultHandSize = 21

	// Penalty is deducted for a rejected peel and for every trade
	Penalty = 5

	// TradeSize is the number of tiles drawn when trading one in
	TradeSize = 3
)

// Config holds per-game settings
type Config struct {
	PileSize int
	HandSize int

	// Endless keeps peeling from the distribution once the pile is empty
	Endless bool
}

// DefaultConfig returns the classic game settings
func DefaultConfig() Config {
	return Config{
		PileSize: DefaultPileSize,
		HandSize: DefaultHandSize,
	}
}

// PeelResult describes a successful peel
type PeelResult struct {
	Verdict  referee.Verdict
	Drawn    []model.Letter
	Finished bool
}

// Session is a single player game over a shared board
type Session struct {
	board        *grid.Shared
	distribution tiles.Distribution
	referee      *referee.Referee
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
	cfg          Config

	mu        sync.Mutex
	cursor    grid.Coordinate
	hand      model.Hand
	pile      model.Pile
	score     int
	status    model.GameStatus
	startedAt time.Time
	endedAt   time.Time
}

// New deals a fresh game: the pile is built from the distribution,
// shuffled, and the opening hand drawn from its front.
func New(
	cfg Config,
	board *grid.Shared,
	distribution tiles.Distribution,
	ref *referee.Referee,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) (*Session, error) {
	pile := distribution.CreatePile(cfg.PileSize)
	tiles.Shuffle(pile, random)

	drawn, err := tiles.PullFromPile(&pile, cfg.HandSize)
	if err != nil {
		return nil, fmt.Errorf("deal %d tiles from a pile of %d: %w", cfg.HandSize, len(pile), err)
	}
	hand := model.Hand(drawn)
	hand.Sort()

	s := &Session{
		board:        board,
		distribution: distribution,
		referee:      ref,
		clock:        clock,
		random:       random,
		logger:       logger,
		cfg:          cfg,
		hand:         hand,
		pile:         pile,
		status:       model.GameStatusPlaying,
		startedAt:    clock.Now(),
	}

	logger.Info("game started",
		slog.String("distribution", distribution.Name()),
		slog.Int("pile_size", len(pile)),
		slog.Int("hand_size", len(hand)),
		slog.Bool("endless", cfg.Endless),
	)

	return s, nil
}

// Board returns the shared playing field
func (s *Session) Board() *grid.Shared {
	return s.board
}

// Move shifts the cursor, clamping at the board edges
func (s *Session) Move(delta grid.Coordinate) grid.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = s.cursor.Add(delta)
	return s.cursor
}

// Place puts a letter from the hand onto the cell under the cursor
func (s *Session) Place(letter model.Letter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == model.GameStatusFinished {
		return model.ErrGameOver
	}
	if !s.hand.Contains(letter) {
		return model.ErrLetterNotInHand
	}
	if !s.board.Place(s.cursor, letter) {
		return model.ErrCellOccupied
	}
	s.hand.Remove(letter)
	return nil
}

// PickUp returns the tile under the cursor to the hand
func (s *Session) PickUp() (model.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == model.GameStatusFinished {
		return model.NoLetter, model.ErrGameOver
	}
	letter, ok := s.board.Remove(s.cursor)
	if !ok {
		return model.NoLetter, model.ErrCellEmpty
	}
	s.hand = append(s.hand, letter)
	s.hand.Sort()
	return letter, nil
}

// Peel commits the board once the hand is empty. A rejected board costs
// Penalty points. An accepted board scores its words and either draws
// the next tile or, with the pile spent, finishes the game.
func (s *Session) Peel() (PeelResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == model.GameStatusFinished {
		return PeelResult{}, model.ErrGameOver
	}
	if len(s.hand) > 0 {
		return PeelResult{}, model.ErrHandHasTiles
	}

	verdict, err := s.referee.CommitShared(s.board)
	if err != nil {
		s.score -= Penalty
		s.logger.Info("peel rejected",
			slog.Any("error", err),
			slog.Int("score", s.score),
		)
		return PeelResult{}, err
	}
	s.score += verdict.Score

	result := PeelResult{Verdict: verdict}
	switch {
	case len(s.pile) > 0:
		drawn, err := tiles.PullFromPile(&s.pile, 1)
		if err != nil {
			return PeelResult{}, err
		}
		result.Drawn = drawn
	case s.cfg.Endless:
		result.Drawn = []model.Letter{s.distribution.PullEndless()}
	default:
		s.status = model.GameStatusFinished
		s.endedAt = s.clock.Now()
		result.Finished = true
	}
	s.hand = append(s.hand, result.Drawn...)
	s.hand.Sort()

	s.logger.Info("peel accepted",
		slog.Int("words", len(verdict.Words)),
		slog.Int("points", verdict.Score),
		slog.Int("score", s.score),
		slog.Int("pile_size", len(s.pile)),
		slog.Bool("finished", result.Finished),
	)
	return result, nil
}

// Trade swaps one letter from the hand for TradeSize tiles from the pile,
// then reshuffles the pile. Costs Penalty points.
func (s *Session) Trade(letter model.Letter) ([]model.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == model.GameStatusFinished {
		return nil, model.ErrGameOver
	}
	if !s.hand.Contains(letter) {
		return nil, model.ErrLetterNotInHand
	}

	drawn, err := tiles.PullFromPile(&s.pile, TradeSize)
	if err != nil {
		return nil, err
	}
	s.hand.Remove(letter)
	s.hand = append(s.hand, drawn...)
	s.hand.Sort()

	s.pile = append(s.pile, letter)
	tiles.Shuffle(s.pile, s.random)
	s.score -= Penalty

	s.logger.Debug("tile traded",
		slog.String("letter", letter.String()),
		slog.Int("pile_size", len(s.pile)),
	)
	return slices.Clone(drawn), nil
}

// State returns a snapshot for renderers
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := s.endedAt
	if s.status != model.GameStatusFinished {
		end = s.clock.Now()
	}

	return State{
		Cursor:       s.cursor,
		Hand:         slices.Clone(s.hand),
		PileSize:     len(s.pile),
		Score:        s.score,
		Status:       s.status,
		Elapsed:      end.Sub(s.startedAt),
		Distribution: s.distribution.Name(),
	}
}
