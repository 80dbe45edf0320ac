package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/anhvo909090-boop/DAYBE/internal/platform/metrics"
	"github.com/anhvo909090-boop/DAYBE/internal/redact"
	"github.com/anhvo909090-boop/DAYBE/internal/store"
)

// SessionJanitorConfig holds configuration for the session janitor
type SessionJanitorConfig struct {
	// IdleTTL is how long a session may go without an update before eviction
	IdleTTL time.Duration

	// SweepInterval defines how often idle sessions are looked for.
	// If zero, defaults to one minute.
	SweepInterval time.Duration
}

// SessionJanitor periodically evicts game sessions nobody has touched for
// IdleTTL, so abandoned games do not accumulate in memory.
type SessionJanitor struct {
	sessions   store.SessionStore
	config     SessionJanitorConfig
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewSessionJanitor creates a SessionJanitor. It does not start sweeping
// until Start is called.
func NewSessionJanitor(
	sessions store.SessionStore,
	config SessionJanitorConfig,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*SessionJanitor, error) {
	if sessions == nil {
		return nil, &ServiceError{
			Service:   "session_janitor",
			Operation: "create_service",
			Message:   "sessions cannot be nil",
		}
	}
	if config.IdleTTL <= 0 {
		return nil, &ServiceError{
			Service:   "session_janitor",
			Operation: "create_service",
			Message:   "idle TTL must be positive",
		}
	}
	if config.SweepInterval <= 0 {
		config.SweepInterval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &SessionJanitor{
		sessions:   sessions,
		config:     config,
		metrics:    m,
		logger:     logger.With("component", "session_janitor"),
		now:        time.Now,
		ctx:        ctx,
		cancelFunc: cancel,
	}, nil
}

// Start launches the background sweep loop.
func (j *SessionJanitor) Start() {
	j.wg.Add(1)
	go j.run()

	j.logger.Info("session janitor started",
		"idle_ttl", j.config.IdleTTL.String(),
		"sweep_interval", j.config.SweepInterval.String())
}

// Stop halts the sweep loop and waits for an in-progress sweep to finish.
func (j *SessionJanitor) Stop() {
	j.cancelFunc()
	j.wg.Wait()
}

func (j *SessionJanitor) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-j.ctx.Done():
			return
		case <-ticker.C:
			if _, err := j.Sweep(j.ctx); err != nil && !errors.Is(err, context.Canceled) {
				j.logger.Error("session sweep failed", "error", redact.Error(err))
			}
		}
	}
}

// Sweep deletes every session idle for longer than IdleTTL and returns how
// many were removed. Sessions that disappear mid-sweep are skipped.
func (j *SessionJanitor) Sweep(ctx context.Context) (int, error) {
	cutoff := j.now().Add(-j.config.IdleTTL)

	ids, err := j.sessions.ListIdle(ctx, cutoff)
	if err != nil {
		return 0, NewGameServiceError("sweep_sessions", "failed to list idle sessions", err)
	}

	evicted := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return evicted, err
		}
		if err := j.sessions.Delete(ctx, id); err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				continue
			}
			j.logger.Error("failed to evict idle session",
				"session_id", id,
				"error", redact.Error(err))
			continue
		}
		evicted++
	}

	j.metrics.AddSessionsEvicted(evicted)
	if count, err := j.sessions.Count(ctx); err == nil {
		j.metrics.SetSessionsActive(count)
	}

	if evicted > 0 {
		j.logger.Info("evicted idle sessions", "count", evicted, "idle_ttl", j.config.IdleTTL.String())
	}
	return evicted, nil
}
