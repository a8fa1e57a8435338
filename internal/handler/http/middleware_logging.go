package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/ucip-keeper/internal/logger"
)

// withLogging writes one access-log entry per request, at error level for
// 5xx responses. The path is logged without the query string.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		status := rec.Status()
		log := logger.FromRequest(r)
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", rec.bytes).
			Msg("request served")
	})
}
