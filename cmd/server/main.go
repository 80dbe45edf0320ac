// Package main implements the entry point for the Bé Vui Học server, which
// serves the Vietnamese alphabet board and the picture-guessing game backed
// by Gemini.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/anhvo909090-boop/DAYBE/internal/config"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/gemini"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run loads configuration, wires the application and serves HTTP until a
// shutdown signal arrives.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"text_model", cfg.LLM.TextModel,
		"image_model", cfg.LLM.ImageModel,
		"speech_enabled", cfg.Speech.Enabled)

	client, err := gemini.NewClient(ctx, cfg.LLM.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	app, err := newApplication(ctx, cfg, l, client.Models)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	app.janitor.Start()
	defer app.janitor.Stop()

	return app.startHTTPServer(ctx, app.setupRouter())
}
