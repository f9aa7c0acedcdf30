package service

import (
	"context"

	"showshelf/internal/logger"
	"showshelf/internal/store"
	"showshelf/models"
)

type listService struct {
	listItemRepository store.ListItemRepository

	logger *logger.Logger
}

func NewListService(listItemRepository store.ListItemRepository, logger *logger.Logger) ListService {
	return &listService{
		listItemRepository: listItemRepository,
		logger:             logger,
	}
}

// Add validates and stores a new list entry for the user.
//
// tmdb_id, media_type, title and user_list_type are mandatory
// ([ErrMissingRequiredFields]); media_type, user_list_type and rating must
// fall inside their accepted sets. The repository reports a duplicate
// (tmdb_id, media_type) pair as store.ErrItemAlreadyExists.
func (s *listService) Add(ctx context.Context, userID int64, item models.ListItem) (models.ListItem, error) {
	if item.TmdbID == 0 || item.MediaType == "" || item.Title == "" || item.UserListType == "" {
		return models.ListItem{}, ErrMissingRequiredFields
	}
	if !models.ValidMediaType(item.MediaType) {
		return models.ListItem{}, ErrInvalidMediaType
	}
	if !models.ValidListType(item.UserListType) {
		return models.ListItem{}, ErrInvalidListType
	}
	if item.Rating != nil && !models.ValidRating(*item.Rating) {
		return models.ListItem{}, ErrInvalidRating
	}

	item.UserID = userID

	return s.listItemRepository.InsertItem(ctx, item)
}

// Get returns all of the user's entries, most recently touched first.
func (s *listService) Get(ctx context.Context, userID int64) ([]models.ListItem, error) {
	return s.listItemRepository.GetItems(ctx, userID)
}

// Update applies a partial update to one of the user's entries.
//
// Unknown request fields never reach this layer: the update struct only
// carries the mutable columns. An update with no recognized field is
// rejected with store.ErrNothingToUpdate before touching the database.
func (s *listService) Update(ctx context.Context, userID, itemID int64, update models.ListItemUpdate) (models.ListItem, error) {
	if update.IsEmpty() {
		return models.ListItem{}, store.ErrNothingToUpdate
	}
	if update.UserListType != nil && !models.ValidListType(*update.UserListType) {
		return models.ListItem{}, ErrInvalidListType
	}
	if update.Rating != nil && !models.ValidRating(*update.Rating) {
		return models.ListItem{}, ErrInvalidRating
	}

	return s.listItemRepository.UpdateItem(ctx, userID, itemID, update)
}

// Delete removes one of the user's entries and returns the removed id.
func (s *listService) Delete(ctx context.Context, userID, itemID int64) (int64, error) {
	return s.listItemRepository.DeleteItem(ctx, userID, itemID)
}
