package generation

import (
	"context"

	"github.com/anhvo909090-boop/DAYBE/internal/domain"
)

// Generator defines the interface for producing quiz rounds.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// GenerateRound creates one picture-guessing round for the category.
	//
	// Every call is independent: nothing is cached or carried over between
	// calls. On failure the returned error is a *RoundError whose message is
	// safe to show to the player.
	GenerateRound(ctx context.Context, category domain.Category) (*domain.Round, error)
}
