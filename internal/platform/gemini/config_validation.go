package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anhvo909090-boop/DAYBE/internal/config"
	"github.com/anhvo909090-boop/DAYBE/internal/generation"
)

// validateConfig checks the model settings needed for round generation.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.TextModel == "" {
		logger.ErrorContext(ctx, "Missing text model name", "error", "TextModel is empty")
		return fmt.Errorf("%w: text model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ImageModel == "" {
		logger.ErrorContext(ctx, "Missing image model name", "error", "ImageModel is empty")
		return fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}

	logger.DebugContext(ctx, "Gemini configuration validation passed",
		"text_model", cfg.TextModel,
		"image_model", cfg.ImageModel,
		"custom_options_prompt", cfg.OptionsPromptPath != "",
		"custom_image_prompt", cfg.ImagePromptPath != "")
	return nil
}
