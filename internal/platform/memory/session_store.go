package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/logger"
	"github.com/anhvo909090-boop/DAYBE/internal/store"
	"github.com/google/uuid"
)

// SessionStore implements the store.SessionStore interface with a
// mutex-guarded map. Sessions are copied on the way in and out.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Session
	logger   *slog.Logger
}

// Ensure SessionStore implements store.SessionStore interface
var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty in-memory session store.
// If logger is nil, a default logger will be used.
func NewSessionStore(logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionStore{
		sessions: make(map[uuid.UUID]*domain.Session),
		logger:   logger.With(slog.String("component", "session_store")),
	}
}

// Create implements store.SessionStore.Create
func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if session == nil {
		return store.NewStoreError("session", "create", "session cannot be nil", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		log.Warn("session already exists", slog.String("session_id", session.ID.String()))
		return fmt.Errorf("%w: %s", store.ErrSessionExists, session.ID)
	}

	s.sessions[session.ID] = session.Clone()

	log.Debug("session created", slog.String("session_id", session.ID.String()))
	return nil
}

// Get implements store.SessionStore.Get
func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, store.ErrSessionNotFound
	}

	return session.Clone(), nil
}

// Update implements store.SessionStore.Update
// fn runs on a working copy while the store lock is held, so it must not
// block on remote calls.
func (s *SessionStore) Update(
	ctx context.Context,
	id uuid.UUID,
	fn func(*domain.Session) error,
) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[id]
	if !ok {
		return nil, store.ErrSessionNotFound
	}

	working := current.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	s.sessions[id] = working
	return working.Clone(), nil
}

// Delete implements store.SessionStore.Delete
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return store.ErrSessionNotFound
	}

	delete(s.sessions, id)

	log.Debug("session deleted", slog.String("session_id", id.String()))
	return nil
}

// ListIdle implements store.SessionStore.ListIdle
func (s *SessionStore) ListIdle(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uuid.UUID
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Count implements store.SessionStore.Count
func (s *SessionStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions), nil
}
