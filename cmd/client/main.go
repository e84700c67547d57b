package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/simbaid-sync/internal/client"
	"github.com/MKhiriev/simbaid-sync/internal/config"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("simbaid-sync-client", cfg.Log.File)
	log.SetLevel(cfg.Log.Level)
	log.Info().
		Str("version", buildInfo.Version).
		Str("commit", buildInfo.Commit).
		Str("device_id", cfg.App.DeviceID).
		Msg("starting sync client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)
	if err = app.Close(); err != nil {
		log.Error().Err(err).Msg("error closing client")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
	log.Info().Msg("sync client stopped")
}
