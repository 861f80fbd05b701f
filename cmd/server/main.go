package main

import (
	"context"
	"os"

	"github.com/MKhiriev/danmu-client/internal/config"
	"github.com/MKhiriev/danmu-client/internal/devserver"
	"github.com/MKhiriev/danmu-client/internal/logger"
	"github.com/MKhiriev/danmu-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("danmu-devserver")
	cfg, err := config.GetDevServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	srv, err := devserver.NewServer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dev server")
	}

	if err = srv.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("dev server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	_, _ = info.WriteTo(os.Stdout)
}
