package mocks

import (
	"context"
	"sync"

	"github.com/anhvo909090-boop/DAYBE/internal/speech"
)

// MockSpeaker implements speech.Speaker for testing
type MockSpeaker struct {
	// IsAvailable is returned by Available
	IsAvailable bool

	// SpeakFn allows test cases to mock the Speak behavior
	SpeakFn func(ctx context.Context, u speech.Utterance) (*speech.Audio, error)

	// Default response values
	Audio *speech.Audio
	Err   error

	mu         sync.Mutex
	utterances []speech.Utterance
}

var _ speech.Speaker = (*MockSpeaker)(nil)

// NewMockSpeakerWithAudio creates an available MockSpeaker returning audio.
func NewMockSpeakerWithAudio(audio *speech.Audio) *MockSpeaker {
	return &MockSpeaker{IsAvailable: true, Audio: audio}
}

// Available implements speech.Speaker
func (m *MockSpeaker) Available() bool {
	return m.IsAvailable
}

// Speak implements speech.Speaker
func (m *MockSpeaker) Speak(ctx context.Context, u speech.Utterance) (*speech.Audio, error) {
	m.mu.Lock()
	m.utterances = append(m.utterances, u)
	m.mu.Unlock()

	if m.SpeakFn != nil {
		return m.SpeakFn(ctx, u)
	}
	return m.Audio, m.Err
}

// Utterances returns a copy of the utterances passed to Speak.
func (m *MockSpeaker) Utterances() []speech.Utterance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]speech.Utterance(nil), m.utterances...)
}
