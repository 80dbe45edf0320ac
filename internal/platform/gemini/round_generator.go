package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/anhvo909090-boop/DAYBE/internal/config"
	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/generation"
	"github.com/anhvo909090-boop/DAYBE/internal/redact"
	"google.golang.org/genai"
)

const (
	// modalityImage asks the image model to answer with image parts.
	modalityImage = "IMAGE"

	// defaultImageMIMEType is used when an inline image part carries no MIME type.
	defaultImageMIMEType = "image/png"
)

// optionsSchema constrains the options response to {"options": [string, ...]}.
var optionsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"options": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "A list of 4 items.",
		},
	},
	Required: []string{"options"},
}

// RoundGenerator implements the generation.Generator interface using
// Gemini: one structured text request for the answer options followed by one
// image request for the correct answer.
type RoundGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues the generate-content requests
	models ContentGenerator

	textModel  string
	imageModel string

	optionsTemplate *template.Template
	imageTemplate   *template.Template

	// shuffle randomizes option order; replaced in tests
	shuffle func([]string) []string
}

var _ generation.Generator = (*RoundGenerator)(nil)

// NewRoundGenerator creates a RoundGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for initialization logging
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration with model names and optional prompt template paths
//   - models: The Gemini models service, usually client.Models
//
// Returns:
//   - A properly initialized RoundGenerator or an error if initialization fails
func NewRoundGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	models ContentGenerator,
) (*RoundGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if models == nil {
		return nil, fmt.Errorf("%w: models service cannot be nil", generation.ErrInvalidConfig)
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	optionsTemplate, err := loadTemplate("options", cfg.OptionsPromptPath)
	if err != nil {
		return nil, err
	}

	imageTemplate, err := loadTemplate("image", cfg.ImagePromptPath)
	if err != nil {
		return nil, err
	}

	return &RoundGenerator{
		logger:          logger,
		models:          models,
		textModel:       cfg.TextModel,
		imageModel:      cfg.ImageModel,
		optionsTemplate: optionsTemplate,
		imageTemplate:   imageTemplate,
		shuffle:         domain.Shuffle[string],
	}, nil
}

// GenerateRound implements generation.Generator.
//
// The two remote calls are strictly sequential because the image prompt is
// built from the options result. Nothing is cached between calls and failures
// are never retried.
func (g *RoundGenerator) GenerateRound(ctx context.Context, category domain.Category) (*domain.Round, error) {
	round, kind, err := g.generateRound(ctx, category)
	if err != nil {
		g.logger.ErrorContext(ctx, "Round generation failed",
			"category", string(category),
			"failure_kind", kind.String(),
			"error", redact.Error(err))
		return nil, generation.NewRoundError(kind, err)
	}

	g.logger.InfoContext(ctx, "Round generated",
		"category", string(category),
		"option_count", len(round.Options()))
	return round, nil
}

func (g *RoundGenerator) generateRound(
	ctx context.Context,
	category domain.Category,
) (*domain.Round, generation.FailureKind, error) {
	if !category.Valid() {
		return nil, generation.FailureMalformedResponse,
			fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}

	options, err := g.requestOptions(ctx, category)
	if err != nil {
		return nil, failureKind(err, generation.FailureMalformedResponse), err
	}

	// The prompt asks for the correct answer first; nothing in the schema
	// enforces that ordering.
	correctAnswer := options[0]

	image, err := g.requestImage(ctx, correctAnswer)
	if err != nil {
		return nil, failureKind(err, generation.FailureImageGeneration), err
	}

	round, err := domain.NewRound(image, g.shuffle(options), correctAnswer)
	if err != nil {
		return nil, generation.FailureMalformedResponse, err
	}

	return round, 0, nil
}

// requestOptions asks the text model for four options of the category topic.
func (g *RoundGenerator) requestOptions(ctx context.Context, category domain.Category) ([]string, error) {
	prompt, err := renderPrompt(g.optionsTemplate, optionsPromptData{Topic: category.Topic()})
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "Requesting round options",
		"model", g.textModel,
		"category", string(category),
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.textModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   optionsSchema,
		})
	if err != nil {
		return nil, transportError(err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var parsed OptionsSchema
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", ErrInvalidOptions, err)
	}

	if len(parsed.Options) != domain.RoundOptionCount {
		return nil, fmt.Errorf("%w: expected %d options, got %d",
			ErrInvalidOptions, domain.RoundOptionCount, len(parsed.Options))
	}

	return parsed.Options, nil
}

// requestImage asks the image model for an illustration of subject and
// returns it as a data URI.
func (g *RoundGenerator) requestImage(ctx context.Context, subject string) (string, error) {
	prompt, err := renderPrompt(g.imageTemplate, imagePromptData{Subject: subject})
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "Requesting round image",
		"model", g.imageModel,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.imageModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{modalityImage},
		})
	if err != nil {
		return "", transportError(err)
	}

	blob, err := firstInlineData(resp)
	if err != nil {
		return "", err
	}

	mimeType := blob.MIMEType
	if mimeType == "" {
		mimeType = defaultImageMIMEType
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(blob.Data), nil
}

// errTransport marks errors returned by the remote call itself.
type errTransport struct{ err error }

func (e errTransport) Error() string { return e.err.Error() }
func (e errTransport) Unwrap() error { return e.err }

func transportError(err error) error {
	return errTransport{err: err}
}

// failureKind classifies err, using fallback for everything that is not a
// transport failure.
func failureKind(err error, fallback generation.FailureKind) generation.FailureKind {
	var te errTransport
	if errors.As(err, &te) {
		return generation.FailureTransport
	}
	return fallback
}
