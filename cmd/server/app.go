package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anhvo909090-boop/DAYBE/internal/config"
	"github.com/anhvo909090-boop/DAYBE/internal/generation"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/gemini"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/memory"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/metrics"
	"github.com/anhvo909090-boop/DAYBE/internal/service"
	"github.com/anhvo909090-boop/DAYBE/internal/speech"
	"github.com/anhvo909090-boop/DAYBE/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Stores
	sessionStore store.SessionStore

	// Model-backed ports
	generator generation.Generator
	speaker   speech.Speaker

	// Services
	gameService     service.GameService
	alphabetService service.AlphabetService

	// Background workers
	janitor *service.SessionJanitor
}

// newApplication creates a new application instance with all dependencies initialized.
// models is the Gemini models service (client.Models in production).
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	models gemini.ContentGenerator,
) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	app.sessionStore = memory.NewSessionStore(logger)

	var err error
	app.generator, err = gemini.NewRoundGenerator(
		ctx,
		logger.With("component", "round_generator"),
		cfg.LLM,
		models,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize round generator: %w", err)
	}
	logger.Info("Round generator initialized",
		"text_model", cfg.LLM.TextModel,
		"image_model", cfg.LLM.ImageModel)

	app.speaker, err = newSpeaker(cfg.Speech, logger, models)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}

	app.gameService, err = service.NewGameService(app.sessionStore, app.generator, app.metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize game service: %w", err)
	}

	app.alphabetService = service.NewAlphabetService(
		app.speaker,
		cfg.Speech.Lang,
		cfg.Speech.Rate,
		app.metrics,
		logger,
	)

	app.janitor, err = service.NewSessionJanitor(
		app.sessionStore,
		service.SessionJanitorConfig{
			IdleTTL:       cfg.Sessions.IdleTTL,
			SweepInterval: cfg.Sessions.SweepInterval,
		},
		app.metrics,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session janitor: %w", err)
	}

	return app, nil
}

// newSpeaker returns the Gemini speaker, or speech.Unavailable when speech
// is switched off.
func newSpeaker(cfg config.SpeechConfig, logger *slog.Logger, models gemini.ContentGenerator) (speech.Speaker, error) {
	if !cfg.Enabled {
		logger.Info("Speech disabled, alphabet pronunciation unavailable")
		return speech.Unavailable{}, nil
	}

	speaker, err := gemini.NewSpeaker(logger.With("component", "speaker"), cfg, models)
	if err != nil {
		return nil, err
	}

	logger.Info("Speech synthesis initialized", "model", cfg.Model, "voice", cfg.Voice)
	return speaker, nil
}
