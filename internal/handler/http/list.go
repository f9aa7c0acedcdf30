package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"showshelf/internal/logger"
	"showshelf/internal/utils"
	"showshelf/models"
)

// addListItem handles POST /api/list/{username}.
func (h *Handler) addListItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Message: "User not found."}, http.StatusNotFound)
		return
	}

	var item models.ListItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "tmdb_id, media_type, title, and user_list_type are required."}, http.StatusBadRequest)
		return
	}

	saved, err := h.services.ListService.Add(ctx, user.UserID, item)
	if err != nil {
		h.respondError(w, r, err, "Failed to add item to list.")
		return
	}

	log.Info().
		Int64("user_id", user.UserID).
		Int64("item_id", saved.ItemID).
		Int64("tmdb_id", saved.TmdbID).
		Msg("list item added")

	utils.WriteJSON(w, saved, http.StatusCreated)
}

// getListItems handles GET /api/list/{username}. The response is always a
// JSON array, empty when the list has no entries.
func (h *Handler) getListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Message: "User not found."}, http.StatusNotFound)
		return
	}

	items, err := h.services.ListService.Get(ctx, user.UserID)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch list.")
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// updateListItem handles PUT /api/list/{username}/{item_id}. Only the
// mutable fields are decoded; anything else in the body is ignored.
func (h *Handler) updateListItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Message: "User not found."}, http.StatusNotFound)
		return
	}

	itemID, err := itemIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Message: "Item not found in list."}, http.StatusNotFound)
		return
	}

	var update models.ListItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "No update fields provided."}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ListService.Update(ctx, user.UserID, itemID, update)
	if err != nil {
		h.respondError(w, r, err, "Failed to update item.")
		return
	}

	log.Info().
		Int64("user_id", user.UserID).
		Int64("item_id", itemID).
		Msg("list item updated")

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteListItem handles DELETE /api/list/{username}/{item_id}.
func (h *Handler) deleteListItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Message: "User not found."}, http.StatusNotFound)
		return
	}

	itemID, err := itemIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Message: "Item not found in list."}, http.StatusNotFound)
		return
	}

	deletedID, err := h.services.ListService.Delete(ctx, user.UserID, itemID)
	if err != nil {
		h.respondError(w, r, err, "Failed to delete item.")
		return
	}

	log.Info().
		Int64("user_id", user.UserID).
		Int64("item_id", deletedID).
		Msg("list item deleted")

	utils.WriteJSON(w, models.DeleteResponse{
		Message: "Item deleted successfully.",
		ItemID:  deletedID,
	}, http.StatusOK)
}

func itemIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
}
