package client

import (
	"context"

	"github.com/mkhayatov/go-user-manager/internal/logger"
	"github.com/mkhayatov/go-user-manager/internal/service"
	"github.com/mkhayatov/go-user-manager/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	return &App{
		services: services,
		tui:      ui,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	a.logger.Info().Msg("starting main loop")

	return a.tui.MainLoop(ctx)
}
