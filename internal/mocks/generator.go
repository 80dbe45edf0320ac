package mocks

import (
	"context"
	"sync"

	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateRoundFn allows test cases to mock the GenerateRound behavior
	GenerateRoundFn func(ctx context.Context, category domain.Category) (*domain.Round, error)

	// Default response values
	Round *domain.Round
	Err   error

	// Call tracking for verification
	GenerateRoundCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateRound was called
		Count int

		// Categories contains all categories passed to GenerateRound calls
		Categories []domain.Category
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateRound implements the generation.Generator interface
func (m *MockGenerator) GenerateRound(ctx context.Context, category domain.Category) (*domain.Round, error) {
	m.GenerateRoundCalls.mu.Lock()
	m.GenerateRoundCalls.Count++
	m.GenerateRoundCalls.Categories = append(m.GenerateRoundCalls.Categories, category)
	m.GenerateRoundCalls.mu.Unlock()

	if m.GenerateRoundFn != nil {
		return m.GenerateRoundFn(ctx, category)
	}

	return m.Round, m.Err
}

// CallCount returns the number of GenerateRound calls so far.
func (m *MockGenerator) CallCount() int {
	m.GenerateRoundCalls.mu.Lock()
	defer m.GenerateRoundCalls.mu.Unlock()
	return m.GenerateRoundCalls.Count
}

// Categories returns a copy of the categories passed to GenerateRound.
func (m *MockGenerator) Categories() []domain.Category {
	m.GenerateRoundCalls.mu.Lock()
	defer m.GenerateRoundCalls.mu.Unlock()
	return append([]domain.Category(nil), m.GenerateRoundCalls.Categories...)
}

// NewMockGeneratorWithRound creates a MockGenerator that returns the specified round
func NewMockGeneratorWithRound(round *domain.Round) *MockGenerator {
	return &MockGenerator{
		Round: round,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// NewMockGeneratorWithDefaultRound creates a MockGenerator with a sample
// animals round whose correct answer is "Con Mèo".
func NewMockGeneratorWithDefaultRound() *MockGenerator {
	return NewMockGeneratorWithRound(DefaultRound())
}

// DefaultRound returns a fixed, valid round for tests.
func DefaultRound() *domain.Round {
	round, err := domain.NewRound(
		"data:image/png;base64,QUJDMTIz",
		[]string{"Con Chó", "Con Mèo", "Con Vịt", "Con Gà"},
		"Con Mèo",
	)
	if err != nil {
		panic(err)
	}
	return round
}

// MockGeneratorThatFails creates a MockGenerator that simulates a malformed
// options response
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(
		generation.NewRoundError(generation.FailureMalformedResponse, generation.ErrMalformedResponse))
}

// MockGeneratorWithImageFailure creates a MockGenerator that simulates a
// response without an inline image
func MockGeneratorWithImageFailure() *MockGenerator {
	return NewMockGeneratorWithError(
		generation.NewRoundError(generation.FailureImageGeneration, generation.ErrImageGenerationFailed))
}

// MockGeneratorWithTransportFailure creates a MockGenerator that simulates a
// failed remote call
func MockGeneratorWithTransportFailure() *MockGenerator {
	return NewMockGeneratorWithError(
		generation.NewRoundError(generation.FailureTransport, generation.ErrTransportFailure))
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateRoundCalls.mu.Lock()
	defer m.GenerateRoundCalls.mu.Unlock()

	m.GenerateRoundCalls.Count = 0
	m.GenerateRoundCalls.Categories = nil
}
