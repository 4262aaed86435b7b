package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/guavagrams/internal/dependencies/clock"
	"github.com/mcoot/guavagrams/internal/dependencies/random"
	"github.com/mcoot/guavagrams/internal/services/dictionary"
	"github.com/mcoot/guavagrams/internal/services/referee"
	"github.com/mcoot/guavagrams/internal/services/scoring"
	"github.com/mcoot/guavagrams/internal/services/session"
	"github.com/mcoot/guavagrams/internal/services/tiles"
	"github.com/mcoot/guavagrams/internal/storage"
	"github.com/mcoot/guavagrams/internal/storage/memory"
	redisstorage "github.com/mcoot/guavagrams/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	DictionaryService *dictionary.Service
	ScoringService    *scoring.Service
	TilesService      *tiles.Service
	RefereeService    *referee.Service
	SessionService    *session.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is a word list file or a directory of them (optional)
	// If empty, dictionaries must be loaded manually
	DictionaryPath string
	// ScoreTable names a stored score table to use instead of the default (optional)
	ScoreTable string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), logger)

	ctx := context.Background()
	if cfg.ScoreTable != "" {
		if err := app.ScoringService.LoadFromStorage(ctx, cfg.ScoreTable); err != nil {
			return nil, fmt.Errorf("load score table %q: %w", cfg.ScoreTable, err)
		}
	}
	if cfg.DictionaryPath != "" {
		if _, err := app.LoadDictionaries(ctx, cfg.DictionaryPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	scoringService := scoring.New(store, logger)
	tilesService := tiles.New(dictService, rnd, logger)
	refereeService := referee.NewService(dictService, scoringService, logger)
	sessionService := session.NewService(tilesService, refereeService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Logger:            logger,
		DictionaryService: dictService,
		ScoringService:    scoringService,
		TilesService:      tilesService,
		RefereeService:    refereeService,
		SessionService:    sessionService,
	}
}

// LoadDictionaries loads a word list file, or every file in a directory,
// and returns the names they were loaded under
func (a *App) LoadDictionaries(ctx context.Context, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary path: %w", err)
	}

	if info.IsDir() {
		return a.DictionaryService.LoadDirectory(ctx, path)
	}

	name := dictionary.NameFromPath(path)
	if err := a.DictionaryService.LoadFromFile(ctx, name, path); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// LoadStoredDictionaries loads every vocabulary previously saved to storage
func (a *App) LoadStoredDictionaries(ctx context.Context) ([]string, error) {
	names, err := a.Storage.ListDictionaries(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := a.DictionaryService.LoadFromStorage(ctx, name); err != nil {
			return nil, fmt.Errorf("load stored dictionary %q: %w", name, err)
		}
	}
	a.Logger.Info("stored dictionaries loaded", slog.Int("count", len(names)))
	return names, nil
}
