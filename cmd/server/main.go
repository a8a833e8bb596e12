package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/arraboard/arraboard/internal/config"
	handler "github.com/arraboard/arraboard/internal/handler/http"
	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/server"
	"github.com/arraboard/arraboard/internal/service"
	"github.com/arraboard/arraboard/internal/store"
	"github.com/arraboard/arraboard/internal/workers"
	"github.com/arraboard/arraboard/migrations"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

func main() {
	printBuildInfo()

	log := logger.NewLogger("server")

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}
	defer db.Close()

	if err := migrations.Run(ctx, db.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	httpHandler := handler.NewHandler(services, log)

	background := workers.NewWorkers(storages.Records, cfg.Storage.Files.Dir, cfg.Storage.Files.SweepInterval, log)
	background.Run(ctx)

	srv := server.NewServer(cfg.Server, httpHandler.Init())

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("server listening")
		serverErrors <- srv.Run()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	background.Stop()
	log.Info().Msg("server stopped")
}
