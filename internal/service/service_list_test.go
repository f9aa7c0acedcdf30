package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"showshelf/internal/logger"
	"showshelf/internal/mock"
	"showshelf/internal/store"
	"showshelf/models"
)

func newTestListSvc(t *testing.T, ctrl *gomock.Controller) (ListService, *mock.MockListItemRepository) {
	t.Helper()
	mockRepo := mock.NewMockListItemRepository(ctrl)
	svc := NewListService(mockRepo, logger.Nop())
	return svc, mockRepo
}

func validNewItem() models.ListItem {
	return models.ListItem{
		TmdbID:       550,
		MediaType:    models.MediaTypeMovie,
		Title:        "Fight Club",
		UserListType: models.ListTypePlanToWatch,
	}
}

func TestListService_Add_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	item := validNewItem()
	withOwner := item
	withOwner.UserID = 3

	saved := withOwner
	saved.ItemID = 11
	saved.DateAdded = time.Now()
	saved.DateUpdated = saved.DateAdded

	mockRepo.EXPECT().
		InsertItem(ctx, withOwner).
		Return(saved, nil)

	got, err := svc.Add(ctx, 3, item)
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ItemID)
	assert.Equal(t, int64(3), got.UserID)
}

func TestListService_Add_MissingRequiredFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestListSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.ListItem)
	}{
		{"no tmdb_id", func(i *models.ListItem) { i.TmdbID = 0 }},
		{"no media_type", func(i *models.ListItem) { i.MediaType = "" }},
		{"no title", func(i *models.ListItem) { i.Title = "" }},
		{"no user_list_type", func(i *models.ListItem) { i.UserListType = "" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			item := validNewItem()
			test.mutate(&item)

			_, err := svc.Add(ctx, 3, item)
			assert.ErrorIs(t, err, ErrMissingRequiredFields)
		})
	}
}

func TestListService_Add_InvalidEnums(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestListSvc(t, ctrl)
	ctx := context.Background()

	item := validNewItem()
	item.MediaType = "book"
	_, err := svc.Add(ctx, 3, item)
	assert.ErrorIs(t, err, ErrInvalidMediaType)

	item = validNewItem()
	item.UserListType = "Binging"
	_, err = svc.Add(ctx, 3, item)
	assert.ErrorIs(t, err, ErrInvalidListType)

	item = validNewItem()
	badRating := 11
	item.Rating = &badRating
	_, err = svc.Add(ctx, 3, item)
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestListService_Add_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		InsertItem(ctx, gomock.Any()).
		Return(models.ListItem{}, store.ErrItemAlreadyExists)

	_, err := svc.Add(ctx, 3, validNewItem())
	require.ErrorIs(t, err, store.ErrItemAlreadyExists)
}

func TestListService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	items := []models.ListItem{{ItemID: 1}, {ItemID: 2}}

	mockRepo.EXPECT().
		GetItems(ctx, int64(3)).
		Return(items, nil)

	got, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	newType := models.ListTypeCompleted
	update := models.ListItemUpdate{UserListType: &newType}

	updated := models.ListItem{ItemID: 11, UserID: 3, UserListType: newType}

	mockRepo.EXPECT().
		UpdateItem(ctx, int64(3), int64(11), update).
		Return(updated, nil)

	got, err := svc.Update(ctx, 3, 11, update)
	require.NoError(t, err)
	assert.Equal(t, newType, got.UserListType)
}

func TestListService_Update_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestListSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Update(ctx, 3, 11, models.ListItemUpdate{})
	require.ErrorIs(t, err, store.ErrNothingToUpdate)
}

func TestListService_Update_InvalidValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestListSvc(t, ctrl)
	ctx := context.Background()

	badType := "Binging"
	_, err := svc.Update(ctx, 3, 11, models.ListItemUpdate{UserListType: &badType})
	assert.ErrorIs(t, err, ErrInvalidListType)

	badRating := 0
	_, err = svc.Update(ctx, 3, 11, models.ListItemUpdate{Rating: &badRating})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestListService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	title := "Renamed"
	update := models.ListItemUpdate{Title: &title}

	mockRepo.EXPECT().
		UpdateItem(ctx, int64(3), int64(404), update).
		Return(models.ListItem{}, store.ErrItemNotFound)

	_, err := svc.Update(ctx, 3, 404, update)
	require.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestListService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		DeleteItem(ctx, int64(3), int64(11)).
		Return(int64(11), nil)

	deletedID, err := svc.Delete(ctx, 3, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(11), deletedID)
}

func TestListService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		DeleteItem(ctx, int64(3), int64(404)).
		Return(int64(0), store.ErrItemNotFound)

	_, err := svc.Delete(ctx, 3, 404)
	require.ErrorIs(t, err, store.ErrItemNotFound)
}
