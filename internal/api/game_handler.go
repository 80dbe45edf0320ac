package api

import (
	"log/slog"
	"net/http"

	"github.com/anhvo909090-boop/DAYBE/internal/api/shared"
	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/logger"
	"github.com/anhvo909090-boop/DAYBE/internal/service"
)

// GameHandler handles picture-guessing game HTTP requests
type GameHandler struct {
	games  service.GameService
	logger *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(games service.GameService, logger *slog.Logger) *GameHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameHandler{
		games:  games,
		logger: logger.With("component", "game_handler"),
	}
}

// ListCategories handles GET /api/categories requests
func (h *GameHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, categoriesToResponse(domain.Categories()))
}

// CreateGame handles POST /api/games requests
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	session, err := h.games.CreateSession(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create game")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, gameToResponse(session))
}

// GetGame handles GET /api/games/{id} requests
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := h.games.GetSession(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gameToResponse(session))
}

// EndGame handles DELETE /api/games/{id} requests
func (h *GameHandler) EndGame(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.games.EndSession(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SelectCategory handles POST /api/games/{id}/category requests.
// It selects the category and synchronously fetches the first round.
func (h *GameHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req SelectCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	session, err := h.games.SelectCategory(r.Context(), id, category)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("round served",
		"session_id", id,
		"category", req.Category)
	shared.RespondWithJSON(w, r, http.StatusOK, gameToResponse(session))
}

// ClearCategory handles DELETE /api/games/{id}/category requests
func (h *GameHandler) ClearCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := h.games.ClearCategory(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gameToResponse(session))
}

// NextRound handles POST /api/games/{id}/rounds requests
func (h *GameHandler) NextRound(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := h.games.NextRound(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gameToResponse(session))
}

// Answer handles POST /api/games/{id}/answer requests
func (h *GameHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.games.Answer(r.Context(), id, req.Option)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, answerToResponse(result))
}
