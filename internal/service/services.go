package service

import (
	"showshelf/internal/logger"
	"showshelf/internal/store"
)

type Services struct {
	UserService UserService
	ListService ListService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.UserRepository, logger),
		ListService: NewListService(storages.ListItemRepository, logger),
	}
}
