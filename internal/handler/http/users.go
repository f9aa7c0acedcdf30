package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"showshelf/internal/logger"
	"showshelf/internal/utils"
	"showshelf/models"
)

// registerUser handles POST /api/users.
//
// Registration is idempotent: the first request for a given sanitized name
// creates the account (201), repeated requests greet the existing account
// (200). Both outcomes return the account's storage reference.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Username is required and must be a non-empty string."}, http.StatusBadRequest)
		return
	}

	user, created, err := h.services.UserService.EnsureUser(ctx, request.Username)
	if err != nil {
		h.respondError(w, r, err, "Server error while processing user.")
		return
	}

	if created {
		log.Info().Int64("user_id", user.UserID).Str("table_name", user.TableName).Msg("user registered")
		utils.WriteJSON(w, models.UserResponse{
			Message:   fmt.Sprintf("User '%s' created successfully. Welcome!", request.Username),
			TableName: user.TableName,
		}, http.StatusCreated)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Message:   fmt.Sprintf("User '%s' already exists. Welcome back!", request.Username),
		TableName: user.TableName,
	}, http.StatusOK)
}
