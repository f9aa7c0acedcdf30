package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records one observation per completed request, labelled with
// the chi route pattern rather than the raw URL to keep cardinality bounded.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		h.metrics.RecordRequest(r.Method, route, status, time.Since(start))
	})
}
