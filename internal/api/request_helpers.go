package api

import (
	"log/slog"
	"net/http"

	"github.com/anhvo909090-boop/DAYBE/internal/api/shared"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathUUID extracts a UUID from the URL path parameters.
//
// Returns ErrInvalidSessionID if the parameter is missing or malformed.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, ErrInvalidSessionID
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, ErrInvalidSessionID
	}

	return id, nil
}

// handlePathUUID extracts a UUID path parameter, writing a 400 response and
// returning false when it is invalid.
func handlePathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	id, err := getPathUUID(r, paramName)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and validates it, writing a
// 400 response and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}
