package models

// UserResponse is the body returned by POST /api/users for both the
// "created" (201) and "already exists" (200) outcomes.
type UserResponse struct {
	Message   string `json:"message"`
	TableName string `json:"tableName"`
}

// DeleteResponse is the body returned by DELETE /api/list/{username}/{item_id}.
type DeleteResponse struct {
	Message string `json:"message"`
	ItemID  int64  `json:"item_id"`
}

// ErrorResponse is the uniform error body: a human-readable message only,
// never raw backend detail.
type ErrorResponse struct {
	Message string `json:"message"`
}
