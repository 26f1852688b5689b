package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/castlewars/internal/api/request"
	"github.com/mcoot/castlewars/internal/api/response"
	"github.com/mcoot/castlewars/internal/api/sse"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/rules"
	"github.com/mcoot/castlewars/internal/services/match"
	"github.com/mcoot/castlewars/internal/storage"
)

const (
	// DefaultListLimit is used when GET /matches has no limit parameter
	DefaultListLimit = 20
	// MaxListLimit caps the limit parameter
	MaxListLimit = 100
	// MaxOpponents caps the number of scripted opponents per match
	MaxOpponents = 16
	// MaxTurnsCap bounds the turn limit a client may request
	MaxTurnsCap = 10000
)

// MatchHandler handles match-related endpoints
type MatchHandler struct {
	runner  *match.Runner
	storage storage.Storage
	rules   rules.Config
	logger  *slog.Logger
}

// NewMatchHandler creates a new match handler. cfg is the base rules for every match.
func NewMatchHandler(runner *match.Runner, store storage.Storage, cfg rules.Config, logger *slog.Logger) *MatchHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MatchHandler{
		runner:  runner,
		storage: store,
		rules:   cfg,
		logger:  logger,
	}
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	setup, err := h.parseSetup(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	summary, err := h.runner.Run(r.Context(), setup)
	if err != nil {
		h.logger.Error("failed to run match", slog.String("error", err.Error()))
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(summary))
}

// Stream handles POST /api/v1/matches/stream.
// The match runs like Create, but every game event, every turn and the outcome
// are sent as server-sent events while it runs.
func (h *MatchHandler) Stream(w http.ResponseWriter, r *http.Request) {
	setup, err := h.parseSetup(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	stream, err := sse.NewStream(w)
	if err != nil {
		h.logger.Error("failed to open stream", slog.String("error", err.Error()))
		WriteError(w, NewInternalError())
		return
	}
	setup.Renderer = stream
	setup.OnEvent = stream.Event

	if _, err := h.runner.Run(r.Context(), setup); err != nil {
		h.logger.Warn("streamed match failed", slog.String("error", err.Error()))
		stream.Error(err)
	}
}

// parseSetup validates a create request and turns it into a match setup
func (h *MatchHandler) parseSetup(r *http.Request) (match.Setup, error) {
	var req request.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return match.Setup{}, NewInvalidRequestError("invalid request body")
	}

	cfg := h.rules
	if req.Opponents != nil {
		if len(req.Opponents) > MaxOpponents {
			return match.Setup{}, NewInvalidRequestError("too many opponents")
		}
		for _, name := range req.Opponents {
			if strings.TrimSpace(name) == "" {
				return match.Setup{}, NewInvalidRequestError("opponent names must not be empty")
			}
		}
		cfg.Opponents = req.Opponents
	}
	if req.MaxTurns < 0 || req.MaxTurns > MaxTurnsCap {
		return match.Setup{}, NewInvalidRequestError(
			"max_turns must be between 0 and " + strconv.Itoa(MaxTurnsCap) + " (0 uses the default turn limit)")
	}
	if req.MaxTurns > 0 {
		cfg.MaxTurns = req.MaxTurns
	}

	return match.Setup{
		HumanName: req.Name,
		Rules:     cfg,
		Seed:      req.Seed,
	}, nil
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = min(n, MaxListLimit)
	}

	matches, err := h.storage.ListMatches(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchListFromModel(matches))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	summary, err := h.storage.GetMatch(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(summary))
}

// Delete handles DELETE /api/v1/matches/{id}
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	if _, err := h.storage.GetMatch(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	if err := h.storage.DeleteMatch(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
