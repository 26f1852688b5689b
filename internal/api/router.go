package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/castlewars/internal/api/handler"
	"github.com/mcoot/castlewars/internal/api/middleware"
	"github.com/mcoot/castlewars/internal/api/response"
	"github.com/mcoot/castlewars/internal/rules"
	"github.com/mcoot/castlewars/internal/services/match"
	"github.com/mcoot/castlewars/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *slog.Logger
	Runner  *match.Runner
	Storage storage.Storage
	// Rules are the base rules for matches started through the API
	Rules rules.Config
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	// Create handlers
	matchHandler := handler.NewMatchHandler(cfg.Runner, cfg.Storage, cfg.Rules, cfg.Logger)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Match routes
	api.HandleFunc("/matches", matchHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/matches", matchHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/matches/stream", matchHandler.Stream).Methods(http.MethodPost)
	api.HandleFunc("/matches/{id}", matchHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}", matchHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
