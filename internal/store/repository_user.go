package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"showshelf/internal/logger"
	"showshelf/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles registration and lookup against the "users" table.
//
// Registration is a single INSERT ... ON CONFLICT DO NOTHING statement, so
// two concurrent registrations of identically sanitized names cannot race:
// exactly one creates the row, the other observes it as existing.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser registers the user under its storage reference.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause. When the storage reference is already taken the
// conflict clause suppresses the insert, RETURNING produces no row, and the
// existing account is fetched instead — reported with created=false.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.TableName)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")
		return models.User{}, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	err := row.Scan(&user.UserID, &user.Username, &user.TableName, &user.CreatedAt)
	if err == nil {
		return user, true, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	// conflict path: the reference is taken, fetch the existing account
	existing, err := r.FindUserByTableName(ctx, user.TableName)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: conflict lookup failed")
		return models.User{}, false, err
	}

	return existing, false, nil
}

// FindUserByTableName retrieves the user registered under the given storage
// reference.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByTableName(ctx context.Context, tableName string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByTableName, tableName)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByTableName").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.TableName, &foundUser.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByTableName").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
