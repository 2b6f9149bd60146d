package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dkotenko/abook/internal/client"
	"github.com/dkotenko/abook/internal/config"
	"github.com/dkotenko/abook/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("abook", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("abook", cfg.App.LogLevel)

	app, err := client.New(cfg, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("client init error")
	}
	defer app.Teardown()

	log.Info().Msg("address book client is running")
	<-ctx.Done()
	log.Info().Msg("shutting down")
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
