package models

// CreateUserRequest is the body accepted by POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username"`
}
