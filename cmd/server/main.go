package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-media-hub/internal/adapter"
	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/handler"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/server"
	"github.com/MKhiriev/go-media-hub/internal/service"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/models"
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
		logger.NewLogger("go-media-hub", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-media-hub", cfg.App.LogLevel)
	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	rdb, err := store.NewConnectRedis(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting redis")
	}
	defer rdb.Close()

	storages := store.NewStorages(db, rdb, cfg, log)

	mail, err := adapter.NewMailSender(cfg.Adapter.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail sender")
	}

	services, err := service.NewServices(storages, mail, cfg, buildInfo, log)
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

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
