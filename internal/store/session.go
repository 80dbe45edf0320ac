package store

import (
	"context"
	"time"

	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/google/uuid"
)

// SessionStore defines the interface for game session storage.
//
// Implementations must be safe for concurrent use. Sessions handed in or out
// are copies; mutating a returned session has no effect until it goes back
// through Update.
type SessionStore interface {
	// Create stores a new session.
	// Returns ErrSessionExists if a session with the same ID is already stored.
	Create(ctx context.Context, session *domain.Session) error

	// Get retrieves a copy of the session with the given ID.
	// Returns ErrSessionNotFound if the session does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)

	// Update applies fn to the stored session atomically and returns a copy of
	// the result. If fn returns an error the stored session is left unchanged
	// and the error is returned as is.
	// Returns ErrSessionNotFound if the session does not exist.
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error)

	// Delete removes a session.
	// Returns ErrSessionNotFound if the session does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListIdle returns the IDs of sessions last updated before cutoff.
	ListIdle(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)

	// Count returns the number of stored sessions.
	Count(ctx context.Context) (int, error)
}
