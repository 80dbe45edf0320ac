package api

import (
	"net/http"
	"testing"

	"github.com/anhvo909090-boop/DAYBE/internal/api/shared"
	"github.com/anhvo909090-boop/DAYBE/internal/mocks"
	"github.com/anhvo909090-boop/DAYBE/internal/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAlphabet(t *testing.T) {
	s := newTestServer(t, mocks.NewMockGeneratorWithDefaultRound(), speech.Unavailable{})

	w := s.do(t, http.MethodGet, "/api/alphabet", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[AlphabetResponse](t, w)
	assert.Len(t, resp.Letters, 29)
	assert.Equal(t, "Đ", resp.Letters[6])
	assert.False(t, resp.SpeechAvailable)
}

func TestSpeakWithAudio(t *testing.T) {
	speaker := mocks.NewMockSpeakerWithAudio(&speech.Audio{Data: []byte("ABC123"), MIMEType: "audio/wav"})
	s := newTestServer(t, mocks.NewMockGeneratorWithDefaultRound(), speaker)

	w := s.do(t, http.MethodGet, "/api/alphabet", nil)
	assert.True(t, decodeBody[AlphabetResponse](t, w).SpeechAvailable)

	w = s.do(t, http.MethodPost, "/api/alphabet/speak", SpeakRequest{Letter: "ư"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody[SpeakResponse](t, w)
	assert.True(t, resp.Available)
	assert.Equal(t, "Ư", resp.Text)
	assert.Equal(t, "vi-VN", resp.Lang)
	assert.InDelta(t, 0.8, resp.Rate, 1e-9)
	assert.Equal(t, "data:audio/wav;base64,QUJDMTIz", resp.Audio)
	assert.Equal(t, "audio/wav", resp.MIMEType)
	assert.Empty(t, resp.Notice)
}

func TestSpeakUnavailable(t *testing.T) {
	s := newTestServer(t, mocks.NewMockGeneratorWithDefaultRound(), speech.Unavailable{})

	w := s.do(t, http.MethodPost, "/api/alphabet/speak", SpeakRequest{Letter: "A"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[SpeakResponse](t, w)
	assert.False(t, resp.Available)
	assert.Empty(t, resp.Audio)
	assert.Equal(t, speech.UnavailableNotice, resp.Notice)
	assert.Equal(t, "A", resp.Text)
}

func TestSpeakErrors(t *testing.T) {
	s := newTestServer(t, mocks.NewMockGeneratorWithDefaultRound(), speech.Unavailable{})

	w := s.do(t, http.MethodPost, "/api/alphabet/speak", SpeakRequest{Letter: "W"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown letter", decodeBody[shared.ErrorResponse](t, w).Error)

	w = s.do(t, http.MethodPost, "/api/alphabet/speak", SpeakRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Letter: required field", decodeBody[shared.ErrorResponse](t, w).Error)

	w = s.do(t, http.MethodPost, "/api/alphabet/speak", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", decodeBody[shared.ErrorResponse](t, w).Error)
}
