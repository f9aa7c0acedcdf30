package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"showshelf/models"
)

const (
	createUser = `INSERT INTO users (username, table_name)
    VALUES ($1, $2)
    ON CONFLICT (table_name) DO NOTHING
    RETURNING user_id, username, table_name, created_at;`

	findUserByTableName = `SELECT user_id, username, table_name, created_at
    FROM users
    WHERE table_name = $1;`
)

// listItemColumns is the canonical column order shared by every list item
// query; scanListItemColumns must stay in sync with it.
var listItemColumns = []string{
	"item_id",
	"user_id",
	"tmdb_id",
	"media_type",
	"title",
	"poster_path",
	"release_date",
	"user_list_type",
	"rating",
	"current_season",
	"current_episode",
	"notes",
	"date_added",
	"date_updated",
}

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($N placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningListItemColumns() string {
	suffix := "RETURNING"
	for i, col := range listItemColumns {
		if i > 0 {
			suffix += ","
		}
		suffix += " " + col
	}
	return suffix
}

// buildInsertListItemQuery builds the INSERT for a new list entry. The
// server-assigned columns (item_id and both timestamps) are left to their
// defaults and read back via RETURNING.
func buildInsertListItemQuery(item models.ListItem) (string, []any, error) {
	query, args, err := psql.
		Insert("list_items").
		Columns(
			"user_id",
			"tmdb_id",
			"media_type",
			"title",
			"poster_path",
			"release_date",
			"user_list_type",
			"rating",
			"current_season",
			"current_episode",
			"notes",
		).
		Values(
			item.UserID,
			item.TmdbID,
			item.MediaType,
			item.Title,
			item.PosterPath,
			item.ReleaseDate,
			item.UserListType,
			item.Rating,
			item.CurrentSeason,
			item.CurrentEpisode,
			item.Notes,
		).
		Suffix(returningListItemColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectListItemsQuery builds the owner-scoped list query, most
// recently touched entries first.
func buildSelectListItemsQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(listItemColumns...).
		From("list_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date_updated DESC", "date_added DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateListItemQuery builds the partial UPDATE for an existing entry.
// Only non-nil fields of update produce SET clauses; date_updated is
// refreshed by the table trigger, not here. Returns ErrNothingToUpdate when
// every updatable field is nil.
func buildUpdateListItemQuery(userID, itemID int64, update models.ListItemUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update("list_items")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.PosterPath != nil {
		builder = builder.Set("poster_path", *update.PosterPath)
	}
	if update.ReleaseDate != nil {
		builder = builder.Set("release_date", update.ReleaseDate)
	}
	if update.UserListType != nil {
		builder = builder.Set("user_list_type", *update.UserListType)
	}
	if update.Rating != nil {
		builder = builder.Set("rating", *update.Rating)
	}
	if update.CurrentSeason != nil {
		builder = builder.Set("current_season", *update.CurrentSeason)
	}
	if update.CurrentEpisode != nil {
		builder = builder.Set("current_episode", *update.CurrentEpisode)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	query, args, err := builder.
		Where(sq.Eq{"item_id": itemID, "user_id": userID}).
		Suffix(returningListItemColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteListItemQuery builds the owner-scoped DELETE returning the
// removed identifier.
func buildDeleteListItemQuery(userID, itemID int64) (string, []any, error) {
	query, args, err := psql.
		Delete("list_items").
		Where(sq.Eq{"item_id": itemID, "user_id": userID}).
		Suffix("RETURNING item_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanListItemColumns reads one row in listItemColumns order.
func scanListItemColumns(row scanner, item *models.ListItem) error {
	return row.Scan(
		&item.ItemID,
		&item.UserID,
		&item.TmdbID,
		&item.MediaType,
		&item.Title,
		&item.PosterPath,
		&item.ReleaseDate,
		&item.UserListType,
		&item.Rating,
		&item.CurrentSeason,
		&item.CurrentEpisode,
		&item.Notes,
		&item.DateAdded,
		&item.DateUpdated,
	)
}
