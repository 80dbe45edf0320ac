package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anhvo909090-boop/DAYBE/internal/api/shared"
	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/generation"
	"github.com/anhvo909090-boop/DAYBE/internal/service"
	"github.com/anhvo909090-boop/DAYBE/internal/store"
)

// ErrInvalidSessionID is returned when a path carries a malformed session ID.
var ErrInvalidSessionID = errors.New("invalid session id")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, store.ErrSessionNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, ErrInvalidSessionID),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidAnswer),
		errors.Is(err, domain.ErrUnknownLetter):
		return http.StatusBadRequest

	// Conflict errors: the session is not in a state that allows the action
	case errors.Is(err, service.ErrNoCategory),
		errors.Is(err, domain.ErrNoActiveRound):
		return http.StatusConflict

	// Upstream generation failures
	case errors.Is(err, generation.ErrRoundGenerationFailed):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, store.ErrSessionNotFound):
		return "Game session not found"

	case errors.Is(err, ErrInvalidSessionID):
		return "Invalid game session ID"

	case errors.Is(err, domain.ErrInvalidCategory):
		return "Invalid category"

	case errors.Is(err, domain.ErrInvalidAnswer):
		return "Answer is not one of the options"

	case errors.Is(err, domain.ErrUnknownLetter):
		return "Unknown letter"

	case errors.Is(err, service.ErrNoCategory):
		return "Select a category first"

	case errors.Is(err, domain.ErrNoActiveRound):
		return "No round in progress"

	// Round generation failures always show the same localized message
	case errors.Is(err, generation.ErrRoundGenerationFailed):
		return generation.UserMessage

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err, logging the redacted
// detail. A non-empty message overrides the safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'AnswerRequest.Option' Error:Field validation for 'Option' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
