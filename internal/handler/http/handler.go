package http

import (
	"github.com/mkhayatov/go-user-manager/internal/logger"
	"github.com/mkhayatov/go-user-manager/internal/store"
)

type Handler struct {
	users store.UserRepository

	logger *logger.Logger
}

func NewHandler(storages *store.Storages, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		users:  storages.UserRepository,
		logger: logger,
	}
}
