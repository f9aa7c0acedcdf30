package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"showshelf/internal/logger"
	"showshelf/internal/utils"
	"showshelf/models"
)

// withUser resolves the {username} route parameter to a registered account
// and stores it in the request context. Requests naming an unknown user are
// rejected with 404 before reaching the list handlers.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		username := chi.URLParam(r, "username")

		user, err := h.services.UserService.ResolveUser(ctx, username)
		if err != nil {
			log.Debug().Str("username", username).Msg("list request for unknown user")
			utils.WriteJSON(w, models.ErrorResponse{Message: "User not found."}, http.StatusNotFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
