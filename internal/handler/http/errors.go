package http

import (
	"errors"
	"net/http"

	"showshelf/internal/logger"
	"showshelf/internal/service"
	"showshelf/internal/store"
	"showshelf/internal/utils"
	"showshelf/models"
)

// errorResponse pairs an HTTP status with the client-facing message for a
// known sentinel error.
type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrUsernameRequired:      {http.StatusBadRequest, "Username is required and must be a non-empty string."},
	service.ErrMissingRequiredFields: {http.StatusBadRequest, "tmdb_id, media_type, title, and user_list_type are required."},
	service.ErrInvalidMediaType:      {http.StatusBadRequest, "media_type must be either 'movie' or 'tv'."},
	service.ErrInvalidListType:       {http.StatusBadRequest, "user_list_type must be one of 'Watching', 'Completed', 'On Hold', 'Dropped', 'Plan to Watch'."},
	service.ErrInvalidRating:         {http.StatusBadRequest, "rating must be between 1 and 10."},

	store.ErrNoUserWasFound:    {http.StatusNotFound, "User not found."},
	store.ErrItemAlreadyExists: {http.StatusConflict, "This item already exists in your list."},
	store.ErrItemNotFound:      {http.StatusNotFound, "Item not found in list."},
	store.ErrNothingToUpdate:   {http.StatusBadRequest, "No update fields provided."},
	store.ErrInvalidItemData:   {http.StatusBadRequest, "Invalid item data provided."},
}

// respondError writes the mapped response for a known sentinel error, or
// the per-endpoint fallback message with status 500. Backend details are
// logged and never sent to the client.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			utils.WriteJSON(w, models.ErrorResponse{Message: response.message}, response.status)
			return
		}
	}

	log.Err(err).Str("uri", r.RequestURI).Msg("request failed with an unexpected error")
	utils.WriteJSON(w, models.ErrorResponse{Message: fallback}, http.StatusInternalServerError)
}
