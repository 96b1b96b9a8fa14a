package main

import (
	"fmt"

	"github.com/mkhayatov/go-user-manager/internal/adapter"
	"github.com/mkhayatov/go-user-manager/internal/client"
	"github.com/mkhayatov/go-user-manager/internal/config"
	"github.com/mkhayatov/go-user-manager/internal/logger"
	"github.com/mkhayatov/go-user-manager/internal/service"
	"github.com/mkhayatov/go-user-manager/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("user-manager-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	collection, err := adapter.NewHTTPUserCollection(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create user collection")
	}

	services := service.NewClientServices(collection, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
