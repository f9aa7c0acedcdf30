package store

import (
	"context"

	"showshelf/models"
)

// UserRepository persists and looks up registered users. A user is keyed by
// the deterministic table_name storage reference, never by the raw display
// name.
type UserRepository interface {
	// CreateUser registers the user if its storage reference is not taken
	// yet. The returned flag is true when a new row was created and false
	// when an identically sanitized user already existed. Both outcomes
	// return the canonical database row.
	CreateUser(ctx context.Context, user models.User) (models.User, bool, error)

	// FindUserByTableName looks up a user by storage reference.
	// Returns ErrNoUserWasFound when no such user is registered.
	FindUserByTableName(ctx context.Context, tableName string) (models.User, error)
}

// ListItemRepository executes watch-list CRUD. Every operation is scoped to
// a single owner's user_id; no call can touch another user's rows.
type ListItemRepository interface {
	// InsertItem stores a new list entry and returns it with the
	// server-assigned item_id and timestamps. Returns ErrItemAlreadyExists
	// when (tmdb_id, media_type) is already listed for the owner.
	InsertItem(ctx context.Context, item models.ListItem) (models.ListItem, error)

	// GetItems returns all of the owner's entries ordered by date_updated
	// descending, then date_added descending. An owner with no entries gets
	// an empty slice, not an error.
	GetItems(ctx context.Context, userID int64) ([]models.ListItem, error)

	// UpdateItem applies a partial update and returns the refreshed row
	// (date_updated is advanced by the table trigger). Returns
	// ErrNothingToUpdate when the update carries no fields and
	// ErrItemNotFound when the item does not belong to the owner.
	UpdateItem(ctx context.Context, userID, itemID int64, update models.ListItemUpdate) (models.ListItem, error)

	// DeleteItem removes the item and returns its identifier.
	// Returns ErrItemNotFound when the item does not belong to the owner.
	DeleteItem(ctx context.Context, userID, itemID int64) (int64, error)
}
