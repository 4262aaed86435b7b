package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/guavagrams/internal/api/handler"
	"github.com/mcoot/guavagrams/internal/api/middleware"
	"github.com/mcoot/guavagrams/internal/services/dictionary"
	"github.com/mcoot/guavagrams/internal/services/referee"
	"github.com/mcoot/guavagrams/internal/services/scoring"
	"github.com/mcoot/guavagrams/internal/services/tiles"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	DictionaryService dictionary.ServiceInterface
	ScoringService    scoring.ServiceInterface
	RefereeService    referee.ServiceInterface
	TilesService      tiles.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	boardHandler := handler.NewBoardHandler(cfg.RefereeService)
	tilesHandler := handler.NewTilesHandler(cfg.TilesService)
	dictionaryHandler := handler.NewDictionaryHandler(cfg.DictionaryService, cfg.ScoringService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Adjudication
	api.HandleFunc("/boards/validate", boardHandler.Validate).Methods(http.MethodPost)

	// Tile economy
	api.HandleFunc("/piles", tilesHandler.CreatePile).Methods(http.MethodPost)
	api.HandleFunc("/draws", tilesHandler.Draw).Methods(http.MethodPost)
	api.HandleFunc("/distributions/{name}", tilesHandler.Distribution).Methods(http.MethodGet)

	// Vocabularies and scoring
	api.HandleFunc("/dictionaries", dictionaryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/dictionaries/{name}", dictionaryHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/dictionaries/{name}", dictionaryHandler.Save).Methods(http.MethodPut)
	api.HandleFunc("/dictionaries/{name}", dictionaryHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/score-table", dictionaryHandler.ScoreTable).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
