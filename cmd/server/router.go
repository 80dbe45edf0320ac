package main

import (
	"net/http"

	"github.com/anhvo909090-boop/DAYBE/internal/api"
	apiMiddleware "github.com/anhvo909090-boop/DAYBE/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	alphabetHandler := api.NewAlphabetHandler(app.alphabetService, app.logger)
	gameHandler := api.NewGameHandler(app.gameService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Alphabet board
		r.Get("/alphabet", alphabetHandler.GetAlphabet)
		r.Post("/alphabet/speak", alphabetHandler.Speak)

		// Picture-guessing game
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

	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
