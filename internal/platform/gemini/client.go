package gemini

import (
	"context"
	"fmt"

	"github.com/anhvo909090-boop/DAYBE/internal/generation"
	"google.golang.org/genai"
)

// ContentGenerator is the part of the genai Models service used by this
// package. *genai.Models satisfies it; tests substitute fakes.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return client, nil
}

// firstCandidate returns the first candidate's content, rejecting empty or
// safety-blocked responses.
func firstCandidate(resp *genai.GenerateContentResponse) (*genai.Content, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, ErrNoCandidates
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, ErrContentBlocked
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, ErrNoCandidates
	}

	return candidate.Content, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	content, err := firstCandidate(resp)
	if err != nil {
		return "", err
	}

	text := ""
	for _, part := range content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text, nil
}

// firstInlineData returns the first part of the first candidate that carries
// inline bytes.
func firstInlineData(resp *genai.GenerateContentResponse) (*genai.Blob, error) {
	content, err := firstCandidate(resp)
	if err != nil {
		return nil, err
	}

	for _, part := range content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData, nil
		}
	}
	return nil, ErrNoInlineData
}
