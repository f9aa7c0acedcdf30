package models

import "time"

// User is a registered watch-list owner.
//
// Username keeps the display name exactly as the first registrant typed it.
// TableName is the deterministic storage reference derived from the
// sanitized username ("user_" prefix + sanitized name). Two display names
// that sanitize identically share one TableName and therefore one account;
// that collision is the documented registration contract of the public API.
type User struct {
	UserID    int64     `json:"-"`
	Username  string    `json:"username"`
	TableName string    `json:"tableName"`
	CreatedAt time.Time `json:"-"`
}
