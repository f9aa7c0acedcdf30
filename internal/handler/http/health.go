package http

import (
	"net/http"

	"showshelf/internal/logger"
	"showshelf/internal/utils"
	"showshelf/models"
)

// health handles GET /health: liveness plus a storage ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("storage ping failed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "storage unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
