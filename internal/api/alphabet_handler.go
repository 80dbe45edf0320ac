package api

import (
	"log/slog"
	"net/http"

	"github.com/anhvo909090-boop/DAYBE/internal/api/shared"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/logger"
	"github.com/anhvo909090-boop/DAYBE/internal/service"
)

// AlphabetHandler handles alphabet board HTTP requests
type AlphabetHandler struct {
	alphabet service.AlphabetService
	logger   *slog.Logger
}

// NewAlphabetHandler creates a new AlphabetHandler
func NewAlphabetHandler(alphabet service.AlphabetService, logger *slog.Logger) *AlphabetHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AlphabetHandler{
		alphabet: alphabet,
		logger:   logger.With("component", "alphabet_handler"),
	}
}

// GetAlphabet handles GET /api/alphabet requests
func (h *AlphabetHandler) GetAlphabet(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, AlphabetResponse{
		Letters:         h.alphabet.Letters(),
		SpeechAvailable: h.alphabet.SpeechAvailable(),
	})
}

// Speak handles POST /api/alphabet/speak requests
func (h *AlphabetHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req SpeakRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.alphabet.Pronounce(r.Context(), req.Letter)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("letter pronounced",
		"letter", result.Utterance.Text,
		"audio", result.Available)
	shared.RespondWithJSON(w, r, http.StatusOK, speechToResponse(result))
}
