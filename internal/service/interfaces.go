package service

import (
	"context"

	"showshelf/models"
)

// UserService handles idempotent registration of users.
type UserService interface {
	// EnsureUser validates the raw display name, derives the storage
	// reference and creates the account if it does not exist yet. The
	// returned flag is true when the account was created by this call.
	EnsureUser(ctx context.Context, username string) (models.User, bool, error)

	// ResolveUser maps a raw display name to its registered account.
	// Returns store.ErrNoUserWasFound when nobody registered under the
	// equivalent storage reference.
	ResolveUser(ctx context.Context, username string) (models.User, error)
}

// ListService handles watch-list CRUD for a resolved user.
type ListService interface {
	Add(ctx context.Context, userID int64, item models.ListItem) (models.ListItem, error)
	Get(ctx context.Context, userID int64) ([]models.ListItem, error)
	Update(ctx context.Context, userID, itemID int64, update models.ListItemUpdate) (models.ListItem, error)
	Delete(ctx context.Context, userID, itemID int64) (int64, error)
}
