package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGenerator(t *testing.T) {
	t.Run("returns default round", func(t *testing.T) {
		m := NewMockGeneratorWithDefaultRound()

		round, err := m.GenerateRound(context.Background(), domain.CategoryAnimals)
		require.NoError(t, err)
		assert.Equal(t, "Con Mèo", round.CorrectAnswer())
		assert.Equal(t, 1, m.CallCount())
		assert.Equal(t, []domain.Category{domain.CategoryAnimals}, m.Categories())
	})

	t.Run("custom function takes precedence", func(t *testing.T) {
		m := NewMockGeneratorWithDefaultRound()
		sentinel := errors.New("custom")
		m.GenerateRoundFn = func(context.Context, domain.Category) (*domain.Round, error) {
			return nil, sentinel
		}

		_, err := m.GenerateRound(context.Background(), domain.CategoryPlants)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("failure constructors carry the fixed message", func(t *testing.T) {
		for _, m := range []*MockGenerator{
			MockGeneratorThatFails(),
			MockGeneratorWithImageFailure(),
			MockGeneratorWithTransportFailure(),
		} {
			_, err := m.GenerateRound(context.Background(), domain.CategoryObjects)
			assert.ErrorIs(t, err, generation.ErrRoundGenerationFailed)
			assert.Equal(t, generation.UserMessage, err.Error())
		}
	})

	t.Run("reset clears tracking", func(t *testing.T) {
		m := NewMockGeneratorWithDefaultRound()
		_, _ = m.GenerateRound(context.Background(), domain.CategoryAnimals)
		m.Reset()
		assert.Equal(t, 0, m.CallCount())
		assert.Empty(t, m.Categories())
	})
}
