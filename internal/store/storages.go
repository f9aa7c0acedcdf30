package store

import "showshelf/internal/logger"

// Storages bundles every repository backed by the shared connection pool.
type Storages struct {
	UserRepository     UserRepository
	ListItemRepository ListItemRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		ListItemRepository: NewListItemRepository(db, log),
	}
}
