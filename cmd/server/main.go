package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/handler"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/server"
	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-social-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-social-server", cfg.App.LogLevel)
	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Print(info)
}
