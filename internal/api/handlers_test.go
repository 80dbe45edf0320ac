package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anhvo909090-boop/DAYBE/internal/api/middleware"
	"github.com/anhvo909090-boop/DAYBE/internal/mocks"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/logger"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/memory"
	"github.com/anhvo909090-boop/DAYBE/internal/service"
	"github.com/anhvo909090-boop/DAYBE/internal/speech"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router    http.Handler
	generator *mocks.MockGenerator
	logs      *logger.TestLogBuffer
}

func newTestServer(t *testing.T, generator *mocks.MockGenerator, speaker speech.Speaker) *testServer {
	t.Helper()

	l, logs := logger.NewTestLogger()

	games, err := service.NewGameService(memory.NewSessionStore(l), generator, nil, l)
	require.NoError(t, err)
	alphabet := service.NewAlphabetService(speaker, "vi-VN", 0.8, nil, l)

	gameHandler := NewGameHandler(games, l)
	alphabetHandler := NewAlphabetHandler(alphabet, l)

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(l))
	r.Route("/api", func(r chi.Router) {
		r.Get("/alphabet", alphabetHandler.GetAlphabet)
		r.Post("/alphabet/speak", alphabetHandler.Speak)
		r.Get("/categories", gameHandler.ListCategories)
		r.Post("/games", gameHandler.CreateGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", gameHandler.GetGame)
			r.Delete("/", gameHandler.EndGame)
			r.Post("/category", gameHandler.SelectCategory)
			r.Delete("/category", gameHandler.ClearCategory)
			r.Post("/rounds", gameHandler.NextRound)
			r.Post("/answer", gameHandler.Answer)
		})
	})

	return &testServer{router: r, generator: generator, logs: logs}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) createGame(t *testing.T) GameResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/games", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody[GameResponse](t, w)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
