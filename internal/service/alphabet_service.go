package service

import (
	"context"
	"log/slog"

	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/logger"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/metrics"
	"github.com/anhvo909090-boop/DAYBE/internal/redact"
	"github.com/anhvo909090-boop/DAYBE/internal/speech"
)

// Speech result label values recorded in metrics.
const (
	speechResultAudio       = "audio"
	speechResultUnavailable = "unavailable"
	speechResultFailed      = "failed"
)

// AlphabetService serves the Vietnamese alphabet board.
type AlphabetService interface {
	// Letters returns the alphabet in board order.
	Letters() []string

	// SpeechAvailable reports whether Pronounce can return audio.
	SpeechAvailable() bool

	// Pronounce speaks a single letter. An unavailable or failing speaker is
	// reported through the result's notice, not as an error.
	// Returns domain.ErrUnknownLetter for letters outside the alphabet.
	Pronounce(ctx context.Context, letter string) (speech.Result, error)
}

type alphabetServiceImpl struct {
	speaker speech.Speaker
	lang    string
	rate    float64
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAlphabetService creates an AlphabetService speaking through speaker with
// the given language tag and rate. A nil speaker is treated as speech.Unavailable.
func NewAlphabetService(
	speaker speech.Speaker,
	lang string,
	rate float64,
	m *metrics.Metrics,
	logger *slog.Logger,
) AlphabetService {
	if speaker == nil {
		speaker = speech.Unavailable{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &alphabetServiceImpl{
		speaker: speaker,
		lang:    lang,
		rate:    rate,
		metrics: m,
		logger:  logger.With("component", "alphabet_service"),
	}
}

// Letters implements AlphabetService.
func (s *alphabetServiceImpl) Letters() []string {
	return domain.Alphabet()
}

// SpeechAvailable implements AlphabetService.
func (s *alphabetServiceImpl) SpeechAvailable() bool {
	return s.speaker.Available()
}

// Pronounce implements AlphabetService.
func (s *alphabetServiceImpl) Pronounce(ctx context.Context, letter string) (speech.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	parsed, err := domain.ParseLetter(letter)
	if err != nil {
		return speech.Result{}, NewAlphabetServiceError("pronounce", "invalid letter", err)
	}

	u := speech.Utterance{Text: parsed, Lang: s.lang, Rate: s.rate}

	if !s.speaker.Available() {
		s.metrics.IncSpeech(speechResultUnavailable)
		return speech.UnavailableResult(u), nil
	}

	audio, err := s.speaker.Speak(ctx, u)
	if err != nil || audio == nil {
		s.metrics.IncSpeech(speechResultFailed)
		log.Warn("speech synthesis failed, reporting speech as unavailable",
			"letter", parsed,
			"error", redact.Error(err))
		return speech.UnavailableResult(u), nil
	}

	s.metrics.IncSpeech(speechResultAudio)
	log.Debug("letter pronounced", "letter", parsed, "mime_type", audio.MIMEType)
	return speech.Result{
		Utterance: u,
		Available: true,
		Audio:     audio,
	}, nil
}
