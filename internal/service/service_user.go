package service

import (
	"context"
	"strings"

	"showshelf/internal/logger"
	"showshelf/internal/store"
	"showshelf/internal/utils"
	"showshelf/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// EnsureUser registers the account for the given display name, or fetches
// the one already registered under the equivalent storage reference.
//
// The display name is trimmed before validation; an empty result is
// rejected with [ErrUsernameRequired]. Names differing only in case or
// punctuation sanitize to the same reference and therefore share one
// account.
func (s *userService) EnsureUser(ctx context.Context, username string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return models.User{}, false, ErrUsernameRequired
	}

	user := models.User{
		Username:  trimmed,
		TableName: utils.TableNameForUsername(trimmed),
	}

	saved, created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).
			Str("func", "userService.EnsureUser").
			Str("table_name", user.TableName).
			Msg("registration failed")
		return models.User{}, false, err
	}

	return saved, created, nil
}

// ResolveUser looks up the account a raw display name maps to.
func (s *userService) ResolveUser(ctx context.Context, username string) (models.User, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return models.User{}, ErrUsernameRequired
	}

	return s.userRepository.FindUserByTableName(ctx, utils.TableNameForUsername(trimmed))
}
