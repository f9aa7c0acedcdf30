package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"showshelf/internal/logger"
	"showshelf/internal/tmdb"
	"showshelf/internal/utils"
	"showshelf/models"
)

// searchTMDB handles GET /api/tmdb/search?query=...&type=movie|tv.
//
// On success the provider's response body is relayed verbatim. When the
// provider rejects the request its status code and status_message are
// relayed instead; transport failures map to a generic 500.
func (h *Handler) searchTMDB(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.search.Configured() {
		utils.WriteJSON(w, models.ErrorResponse{Message: "TMDB API key is not configured on the server."}, http.StatusInternalServerError)
		return
	}

	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		utils.WriteJSON(w, models.ErrorResponse{Message: "Search query string is required."}, http.StatusBadRequest)
		return
	}

	mediaType := r.URL.Query().Get("type")
	if !models.ValidMediaType(mediaType) {
		utils.WriteJSON(w, models.ErrorResponse{Message: "Search type must be either 'movie' or 'tv'."}, http.StatusBadRequest)
		return
	}

	body, err := h.search.Search(ctx, query, mediaType)
	if err != nil {
		var apiErr *tmdb.APIError
		if errors.As(err, &apiErr) {
			utils.WriteJSON(w, models.ErrorResponse{
				Message: fmt.Sprintf("TMDB API Error: %s", apiErr.StatusMessage),
			}, apiErr.StatusCode)
			return
		}

		log.Err(err).Msg("provider request failed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Failed to fetch data from TMDB."}, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
