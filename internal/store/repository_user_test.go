package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"showshelf/internal/logger"
	"showshelf/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Created(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:  "Alice!",
		TableName: "user_alice_",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "username", "table_name", "created_at"}).
		AddRow(1, user.Username, user.TableName, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.TableName).
		WillReturnRows(rows)

	created, wasCreated, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !wasCreated {
		t.Error("expected created=true for a fresh user")
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.TableName != user.TableName {
		t.Errorf("expected table name %s, got %s", user.TableName, created.TableName)
	}
}

func TestCreateUser_Existing(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "alice", TableName: "user_alice"}

	// ON CONFLICT DO NOTHING suppresses the insert: RETURNING yields no row
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.TableName).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "table_name", "created_at"}))

	existingRows := sqlmock.
		NewRows([]string{"user_id", "username", "table_name", "created_at"}).
		AddRow(7, "Alice", "user_alice", time.Now())

	mock.ExpectQuery("SELECT user_id").
		WithArgs(user.TableName).
		WillReturnRows(existingRows)

	found, wasCreated, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wasCreated {
		t.Error("expected created=false for an already registered user")
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.Username != "Alice" {
		t.Errorf("expected stored display name of first registrant, got %s", found.Username)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "alice", TableName: "user_alice"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, _, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByTableName_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"user_id", "username", "table_name", "created_at"}).
		AddRow(3, "bob", "user_bob", time.Now())

	mock.ExpectQuery("SELECT user_id").
		WithArgs("user_bob").
		WillReturnRows(rows)

	found, err := repo.FindUserByTableName(ctx, "user_bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 3 {
		t.Errorf("expected UserID=3, got %d", found.UserID)
	}
}

func TestFindUserByTableName_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("user_ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "table_name", "created_at"}))

	_, err := repo.FindUserByTableName(ctx, "user_ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
