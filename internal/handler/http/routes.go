package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withCORS(h.cfg.CORSAllowedOrigin))

	router.Get("/health", h.health)
	router.Method("GET", "/metrics", h.metrics.Handler())

	registerLimiter := newIPRateLimiter(h.cfg.RegisterRateLimit)

	router.Route("/api", func(r chi.Router) {
		r.With(registerLimiter.limit).Post("/users", h.registerUser)

		r.Get("/tmdb/search", h.searchTMDB)

		r.Route("/list/{username}", func(r chi.Router) {
			r.Use(h.withUser)
			r.Post("/", h.addListItem)
			r.Get("/", h.getListItems)
			r.Put("/{item_id}", h.updateListItem)
			r.Delete("/{item_id}", h.deleteListItem)
		})
	})

	return router
}
