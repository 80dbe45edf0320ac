package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/generation"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/logger"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/metrics"
	"github.com/anhvo909090-boop/DAYBE/internal/redact"
	"github.com/anhvo909090-boop/DAYBE/internal/store"
	"github.com/google/uuid"
)

// AnswerResult is the outcome of submitting an answer.
type AnswerResult struct {
	// Session is the session after the answer was applied.
	Session *domain.Session

	// Status is the round status after the answer.
	Status domain.Status

	// Accepted is false when the round had already been answered.
	Accepted bool

	// CorrectAnswer is revealed once the round has been answered.
	CorrectAnswer string
}

// GameService runs picture-guessing game sessions.
type GameService interface {
	// CreateSession starts a new session waiting for a category.
	CreateSession(ctx context.Context) (*domain.Session, error)

	// GetSession returns the current state of a session.
	GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error)

	// SelectCategory sets the session category and fetches its first round.
	SelectCategory(ctx context.Context, id uuid.UUID, category domain.Category) (*domain.Session, error)

	// NextRound fetches a new round for the current category.
	// Returns ErrNoCategory when no category has been selected.
	NextRound(ctx context.Context, id uuid.UUID) (*domain.Session, error)

	// ClearCategory returns the session to category selection.
	ClearCategory(ctx context.Context, id uuid.UUID) (*domain.Session, error)

	// Answer applies the player's answer to the current round.
	// Returns domain.ErrNoActiveRound when there is no round to answer.
	Answer(ctx context.Context, id uuid.UUID, option string) (*AnswerResult, error)

	// EndSession discards a session the player has left.
	EndSession(ctx context.Context, id uuid.UUID) error
}

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions  store.SessionStore
	generator generation.Generator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewGameService creates a new GameService.
// It returns an error if any of the required dependencies are nil.
// metrics may be nil, in which case nothing is recorded.
func NewGameService(
	sessions store.SessionStore,
	generator generation.Generator,
	m *metrics.Metrics,
	logger *slog.Logger,
) (GameService, error) {
	if sessions == nil {
		return nil, &ServiceError{
			Service:   "game",
			Operation: "create_service",
			Message:   "sessions cannot be nil",
		}
	}
	if generator == nil {
		return nil, &ServiceError{
			Service:   "game",
			Operation: "create_service",
			Message:   "generator cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &gameServiceImpl{
		sessions:  sessions,
		generator: generator,
		metrics:   m,
		logger:    logger.With("component", "game_service"),
	}, nil
}

// CreateSession implements GameService.
func (s *gameServiceImpl) CreateSession(ctx context.Context) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session := domain.NewSession()
	if err := s.sessions.Create(ctx, session); err != nil {
		log.Error("failed to create session", "error", redact.Error(err))
		return nil, NewGameServiceError("create_session", "failed to store session", err)
	}

	s.metrics.IncSessionsCreated()
	log.Info("game session created", "session_id", session.ID)
	return session.Clone(), nil
}

// GetSession implements GameService.
func (s *gameServiceImpl) GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, NewGameServiceError("get_session", "failed to load session", err)
	}
	return session, nil
}

// SelectCategory implements GameService.
func (s *gameServiceImpl) SelectCategory(
	ctx context.Context,
	id uuid.UUID,
	category domain.Category,
) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if err := session.SelectCategory(category); err != nil {
			return err
		}
		session.BeginRound()
		return nil
	})
	if err != nil {
		log.Warn("failed to select category",
			"session_id", id,
			"category", string(category),
			"error", err)
		return nil, NewGameServiceError("select_category", "failed to select category", err)
	}

	log.Info("category selected", "session_id", id, "category", string(category))
	return s.fetchRound(ctx, id, category)
}

// NextRound implements GameService.
func (s *gameServiceImpl) NextRound(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var category domain.Category

	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if !session.HasCategory() {
			return ErrNoCategory
		}
		category = session.Category
		session.BeginRound()
		return nil
	})
	if err != nil {
		return nil, NewGameServiceError("next_round", "failed to start round", err)
	}

	return s.fetchRound(ctx, id, category)
}

// fetchRound runs the generator outside the store lock and records the
// outcome on the session. The session must already be marked loading.
// Overlapping fetches for one session are not ordered; whichever completes
// last is what the session shows. A result whose category is no longer
// selected is dropped.
func (s *gameServiceImpl) fetchRound(
	ctx context.Context,
	id uuid.UUID,
	category domain.Category,
) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	start := time.Now()
	round, genErr := s.generator.GenerateRound(ctx, category)
	elapsed := time.Since(start)

	if genErr != nil {
		kind := generation.KindOf(genErr)
		kindName := "unknown"
		if kind != 0 {
			kindName = kind.String()
		}
		s.metrics.ObserveRound(string(category), kindName, elapsed)

		log.Error("round fetch failed",
			"session_id", id,
			"category", string(category),
			"failure_kind", kindName,
			"duration_ms", elapsed.Milliseconds())

		// Any generator error is presented with the same user message.
		if !errors.Is(genErr, generation.ErrRoundGenerationFailed) {
			genErr = generation.NewRoundError(generation.FailureTransport, genErr)
		}

		var recorded bool
		_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
			recorded = session.FailRound(category, generation.UserMessage)
			return nil
		})
		if err != nil {
			return nil, NewGameServiceError("fetch_round", "failed to record round failure", err)
		}
		if !recorded {
			log.Info("round failure discarded, category changed during fetch",
				"session_id", id,
				"category", string(category))
		}
		return nil, genErr
	}

	s.metrics.ObserveRound(string(category), "", elapsed)

	var installed bool
	session, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		installed = session.CompleteRound(category, round)
		return nil
	})
	if err != nil {
		return nil, NewGameServiceError("fetch_round", "failed to store round", err)
	}

	if !installed {
		log.Info("round discarded, category changed during fetch",
			"session_id", id,
			"category", string(category),
			"duration_ms", elapsed.Milliseconds())
		return session, nil
	}

	log.Info("round ready",
		"session_id", id,
		"category", string(category),
		"duration_ms", elapsed.Milliseconds())
	return session, nil
}

// ClearCategory implements GameService.
func (s *gameServiceImpl) ClearCategory(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		session.ClearCategory()
		return nil
	})
	if err != nil {
		return nil, NewGameServiceError("clear_category", "failed to clear category", err)
	}
	return session, nil
}

// Answer implements GameService.
func (s *gameServiceImpl) Answer(ctx context.Context, id uuid.UUID, option string) (*AnswerResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		status   domain.Status
		accepted bool
	)

	session, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		var err error
		status, accepted, err = session.Answer(option)
		return err
	})
	if err != nil {
		return nil, NewGameServiceError("answer", "failed to apply answer", err)
	}

	if accepted {
		s.metrics.IncAnswer(string(status))
		log.Info("answer accepted", "session_id", id, "status", string(status))
	} else {
		log.Debug("answer ignored, round already answered", "session_id", id)
	}

	return &AnswerResult{
		Session:       session,
		Status:        status,
		Accepted:      accepted,
		CorrectAnswer: session.Round.CorrectAnswer(),
	}, nil
}

// EndSession implements GameService.
func (s *gameServiceImpl) EndSession(ctx context.Context, id uuid.UUID) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return NewGameServiceError("end_session", "failed to delete session", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("game session ended", "session_id", id)
	return nil
}
