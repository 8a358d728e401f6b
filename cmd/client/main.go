package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shielded-nft/internal/adapter"
	"github.com/MKhiriev/shielded-nft/internal/client"
	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("shielded-nft-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	registry, err := adapter.NewRegistryAdapter(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapter")
	}
	defer registry.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(registry, buildInfo(), os.Stdin, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, app.Usage())
		}
		log.Error().Err(err).Msg("command failed")
		stop()
		registry.Close()
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
