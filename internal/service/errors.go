package service

import (
	"errors"
	"fmt"

	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/generation"
	"github.com/anhvo909090-boop/DAYBE/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Round generation failures are returned as is so the tagged error survives
// 3. Unexpected errors are wrapped in ServiceError
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrSessionNotFound indicates that the game session does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrSessionNotFound = errors.New("game session not found")

	// ErrNoCategory indicates a round was requested before a category was chosen.
	// API layer should map this to HTTP 409 Conflict.
	ErrNoCategory = errors.New("no category selected")
)

// ServiceError wraps unexpected errors from the services with context.
type ServiceError struct {
	// Service is the service that failed (e.g., "game", "alphabet")
	Service string
	// Operation is the operation that failed (e.g., "select_category")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// passthroughErrors are returned to callers unchanged.
var passthroughErrors = []error{
	ErrSessionNotFound,
	ErrNoCategory,
	domain.ErrInvalidCategory,
	domain.ErrNoActiveRound,
	domain.ErrInvalidAnswer,
	domain.ErrUnknownLetter,
	generation.ErrRoundGenerationFailed,
}

// NewGameServiceError creates a new error for a failed game service operation.
// It returns known sentinel errors directly without wrapping.
func NewGameServiceError(operation, message string, err error) error {
	return newServiceError("game", operation, message, err)
}

// NewAlphabetServiceError creates a new error for a failed alphabet service operation.
// It returns known sentinel errors directly without wrapping.
func NewAlphabetServiceError(operation, message string, err error) error {
	return newServiceError("alphabet", operation, message, err)
}

func newServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Store-level not found maps to the service-level sentinel
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrSessionNotFound
	}

	for _, sentinel := range passthroughErrors {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
