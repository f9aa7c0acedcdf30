package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"showshelf/internal/logger"
	"showshelf/models"

	"github.com/jackc/pgerrcode"
)

// listItemRepository is the PostgreSQL-backed implementation of
// [ListItemRepository]. It executes all watch-list CRUD against the
// "list_items" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, item_id, tmdb_id).
type listItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewListItemRepository constructs a [ListItemRepository] backed by the
// provided database connection and logger.
func NewListItemRepository(db *DB, logger *logger.Logger) ListItemRepository {
	return &listItemRepository{
		DB:     db,
		logger: logger,
	}
}

// InsertItem stores a new list entry and reads back the canonical row,
// including the server-assigned item_id and both timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrItemAlreadyExists].
//   - PostgreSQL check_violation (23514) → [ErrInvalidItemData].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (p *listItemRepository) InsertItem(ctx context.Context, item models.ListItem) (models.ListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertListItemQuery(item)
	if err != nil {
		log.Err(err).
			Str("func", "listItemRepository.InsertItem").
			Int64("user_id", item.UserID).
			Msg("failed to create query")
		return models.ListItem{}, err
	}

	row := p.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return models.ListItem{}, p.mapInsertError(ctx, item, err)
	}

	var saved models.ListItem
	if scanErr := scanListItemColumns(row, &saved); scanErr != nil {
		return models.ListItem{}, p.mapInsertError(ctx, item, scanErr)
	}

	return saved, nil
}

// mapInsertError translates a failed insert into a sentinel error.
// Driver errors can surface either from row.Err or from Scan, so both call
// paths funnel here.
func (p *listItemRepository) mapInsertError(ctx context.Context, item models.ListItem, err error) error {
	log := logger.FromContext(ctx)

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		log.Debug().
			Int64("user_id", item.UserID).
			Int64("tmdb_id", item.TmdbID).
			Str("media_type", item.MediaType).
			Msg("duplicate list item rejected")
		return ErrItemAlreadyExists
	case pgerrcode.CheckViolation:
		return ErrInvalidItemData
	}

	log.Err(err).
		Str("func", "listItemRepository.InsertItem").
		Int64("user_id", item.UserID).
		Msg("failed to insert list item")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// GetItems retrieves every list entry owned by the given user, most
// recently touched first.
//
// Returns an empty slice when no records are found.
func (p *listItemRepository) GetItems(ctx context.Context, userID int64) ([]models.ListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListItemsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "listItemRepository.GetItems").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "listItemRepository.GetItems").
			Int64("user_id", userID).
			Msg("failed to execute query for getting list items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.ListItem, 0, 20)

	for rows.Next() {
		var item models.ListItem

		if scanErr := scanListItemColumns(rows, &item); scanErr != nil {
			log.Err(scanErr).
				Str("func", "listItemRepository.GetItems").
				Int64("user_id", userID).
				Msg("failed to scan list item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "listItemRepository.GetItems").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateItem applies a partial update to one of the owner's entries and
// reads back the refreshed row. date_updated is advanced by the
// touch_date_updated trigger as part of the same statement.
//
// Error handling:
//   - Empty update → [ErrNothingToUpdate] (from the query builder).
//   - No matching row for (item_id, user_id) → [ErrItemNotFound].
//   - PostgreSQL check_violation (23514) → [ErrInvalidItemData].
func (p *listItemRepository) UpdateItem(ctx context.Context, userID, itemID int64, update models.ListItemUpdate) (models.ListItem, error) {
	query, args, err := buildUpdateListItemQuery(userID, itemID, update)
	if err != nil {
		return models.ListItem{}, err
	}

	row := p.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return models.ListItem{}, p.mapUpdateError(ctx, userID, itemID, err)
	}

	var updated models.ListItem
	if scanErr := scanListItemColumns(row, &updated); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.ListItem{}, ErrItemNotFound
		}
		return models.ListItem{}, p.mapUpdateError(ctx, userID, itemID, scanErr)
	}

	return updated, nil
}

func (p *listItemRepository) mapUpdateError(ctx context.Context, userID, itemID int64, err error) error {
	log := logger.FromContext(ctx)

	if postgresError(err) == pgerrcode.CheckViolation {
		return ErrInvalidItemData
	}

	log.Err(err).
		Str("func", "listItemRepository.UpdateItem").
		Int64("user_id", userID).
		Int64("item_id", itemID).
		Msg("failed to update list item")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// DeleteItem removes one of the owner's entries and returns the removed
// identifier.
//
// Error handling:
//   - No matching row for (item_id, user_id) → [ErrItemNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (p *listItemRepository) DeleteItem(ctx context.Context, userID, itemID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteListItemQuery(userID, itemID)
	if err != nil {
		log.Err(err).
			Str("func", "listItemRepository.DeleteItem").
			Int64("user_id", userID).
			Msg("failed to create query")
		return 0, err
	}

	var deletedID int64
	row := p.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "listItemRepository.DeleteItem").
			Int64("user_id", userID).
			Int64("item_id", itemID).
			Msg("failed to delete list item")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if scanErr := row.Scan(&deletedID); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return 0, ErrItemNotFound
		}
		log.Err(scanErr).
			Str("func", "listItemRepository.DeleteItem").
			Int64("user_id", userID).
			Int64("item_id", itemID).
			Msg("failed to scan deleted item id")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return deletedID, nil
}
