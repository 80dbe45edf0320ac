package middleware

import (
	"log/slog"
	"net/http"

	"github.com/anhvo909090-boop/DAYBE/internal/api/shared"
	"github.com/anhvo909090-boop/DAYBE/internal/platform/logger"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewTraceMiddleware returns middleware that adds a trace ID and a
// trace-scoped logger to the request context. The chi request ID is reused as
// the trace ID when present. Apply it early in the chain so every handler
// logs with the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if requestID := chimiddleware.GetReqID(ctx); requestID != "" {
				ctx = shared.WithTraceID(ctx, requestID)
			} else {
				ctx = shared.SetTraceID(ctx)
			}

			traceID := shared.GetTraceID(ctx)
			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithContext(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set("X-Trace-ID", traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
