package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mcoot/guavagrams/internal/api"
	"github.com/mcoot/guavagrams/internal/factory"
	redisstorage "github.com/mcoot/guavagrams/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		DictionaryPath: getEnvOrDefault("DICTIONARY_PATH", "dictionaries"),
		ScoreTable:     os.Getenv("SCORE_TABLE"),
		Logger:         logger,
		StorageType:    os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory, loading the word lists on disk
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Vocabularies uploaded through the API survive restarts in redis
	if cfg.StorageType == factory.StorageTypeRedis {
		if _, err := app.LoadStoredDictionaries(context.Background()); err != nil {
			logger.Warn("could not load stored dictionaries", slog.String("error", err.Error()))
		}
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		DictionaryService: app.DictionaryService,
		ScoringService:    app.ScoringService,
		RefereeService:    app.RefereeService,
		TilesService:      app.TilesService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
