package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/danmu-client/internal/client"
	"github.com/MKhiriev/danmu-client/internal/config"
	"github.com/MKhiriev/danmu-client/internal/logger"
	"github.com/MKhiriev/danmu-client/internal/notify"
	"github.com/MKhiriev/danmu-client/internal/pipeline"
	"github.com/MKhiriev/danmu-client/internal/router"
	"github.com/MKhiriev/danmu-client/internal/session"
	"github.com/MKhiriev/danmu-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("danmu-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}
	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}

	store, err := session.NewFileStore(cfg.Session.FilePath, log)
	if err != nil {
		log.Error().Err(err).Msg("open session store")
		fmt.Fprintf(os.Stderr, "session error: %v\n", err)
		os.Exit(1)
	}

	nav := router.NewMemory(log)

	api, err := pipeline.New(cfg.API, pipeline.Dependencies{
		Session:   store,
		Navigator: nav,
		Notifier:  notify.NewTerminal(os.Stderr, log),
	}, log)
	if err != nil {
		log.Error().Err(err).Msg("create request pipeline")
		fmt.Fprintf(os.Stderr, "pipeline error: %v\n", err)
		os.Exit(1)
	}

	app, err := client.NewApp(api, store, nav, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Error().Err(err).Strs("args", cfg.Args).Msg("client run error")
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) ||
			errors.Is(err, client.ErrNotLoggedIn) || errors.Is(err, client.ErrInvalidBody) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
