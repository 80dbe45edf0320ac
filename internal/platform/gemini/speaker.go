package gemini

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/anhvo909090-boop/DAYBE/internal/config"
	"github.com/anhvo909090-boop/DAYBE/internal/speech"
	"google.golang.org/genai"
)

const (
	modalityAudio = "AUDIO"

	// Gemini TTS answers with 16-bit mono PCM at 24kHz unless the MIME type says otherwise.
	defaultPCMSampleRate = 24000
)

// Speaker implements speech.Speaker with a Gemini text-to-speech model.
type Speaker struct {
	logger *slog.Logger
	models ContentGenerator
	model  string
	voice  string
}

var _ speech.Speaker = (*Speaker)(nil)

// NewSpeaker creates a Speaker for the configured TTS model and voice.
func NewSpeaker(logger *slog.Logger, cfg config.SpeechConfig, models ContentGenerator) (*Speaker, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if models == nil {
		return nil, errors.New("models service cannot be nil")
	}
	if cfg.Model == "" || cfg.Voice == "" {
		return nil, errors.New("speech model and voice must be set")
	}

	return &Speaker{
		logger: logger,
		models: models,
		model:  cfg.Model,
		voice:  cfg.Voice,
	}, nil
}

// Available always returns true; failures surface from Speak.
func (s *Speaker) Available() bool { return true }

// Speak synthesizes u and returns WAV audio.
func (s *Speaker) Speak(ctx context.Context, u speech.Utterance) (*speech.Audio, error) {
	prompt := speechPrompt(u)

	s.logger.DebugContext(ctx, "Requesting speech",
		"model", s.model,
		"voice", s.voice,
		"lang", u.Lang)

	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{modalityAudio},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
				},
			},
		})
	if err != nil {
		return nil, fmt.Errorf("gemini speech request failed: %w", err)
	}

	blob, err := firstInlineData(resp)
	if err != nil {
		return nil, fmt.Errorf("gemini speech response: %w", err)
	}

	if strings.HasPrefix(strings.ToLower(blob.MIMEType), "audio/l16") {
		return &speech.Audio{
			Data:     pcmToWAV(blob.Data, sampleRate(blob.MIMEType)),
			MIMEType: "audio/wav",
		}, nil
	}

	return &speech.Audio{Data: blob.Data, MIMEType: blob.MIMEType}, nil
}

// speechPrompt phrases the utterance as a reading instruction; the TTS model
// takes pacing and language cues from the text itself.
func speechPrompt(u speech.Utterance) string {
	pace := "rõ ràng"
	if u.Rate > 0 && u.Rate < 1 {
		pace = "chậm rãi và rõ ràng"
	}
	return fmt.Sprintf("Đọc %s bằng giọng %s: %s", pace, u.Lang, u.Text)
}

// sampleRate extracts the rate parameter from a MIME type such as
// "audio/L16;codec=pcm;rate=24000".
func sampleRate(mimeType string) int {
	for _, param := range strings.Split(mimeType, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if ok && strings.EqualFold(key, "rate") {
			if rate, err := strconv.Atoi(value); err == nil && rate > 0 {
				return rate
			}
		}
	}
	return defaultPCMSampleRate
}

// pcmToWAV wraps 16-bit little-endian mono PCM samples in a RIFF/WAVE header.
func pcmToWAV(pcm []byte, rate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	blockAlign := channels * bitsPerSample / 8
	byteRate := rate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
