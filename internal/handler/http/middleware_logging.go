package http

import (
	"net/http"
	"time"

	"showshelf/internal/logger"
)

// withLogging emits one structured line per request after the response is
// written: method, path, remote address, status, response size and handling
// time. The trace id travels on the logger placed in the context by
// withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lw := &responseWriter{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(lw, r)

		// handlers that never call WriteHeader implicitly respond 200
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("size", lw.size).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	})
}
