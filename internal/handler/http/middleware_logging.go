package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log entry per request. The chi route pattern
// is logged next to the raw URI so requests for different zones group
// together.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log := logger.FromRequest(r)
		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Warn()
		}

		var pattern string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			pattern = rctx.RoutePattern()
		}

		event.
			Str("uri", r.RequestURI).
			Str("route", pattern).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Bool("hijacked", lw.hijacked).
			Send()
	})
}
