package main

import (
	"context"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/MKhiriev/go-diary/internal/client"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-diary-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runErr := app.Run(ctx)
	if err = app.Close(); err != nil {
		log.Error().Err(err).Msg("error closing client")
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("client run error")
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
