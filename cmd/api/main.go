package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"category-service/internal/config"
	"category-service/internal/db"
	"category-service/internal/httpserver"
	"category-service/internal/logger"
	categoryrepo "category-service/internal/repository/category"
	categorysvc "category-service/internal/service/category"
	"github.com/rs/zerolog"
)

var version = "dev"

func main() {
	boot := zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "api").Logger()
	if err := config.LoadDotEnv(); err != nil {
		boot.Fatal().Err(err).Msg("load .env")
	}
	cfg, err := config.FromEnv()
	if err != nil {
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Environment, cfg.LogLevel).With().Str("cmd", "api").Logger()

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	categoryRepo, err := categoryrepo.Open(cfg.DBDriver, dbpool, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("open category repository")
	}
	categoryService := categorysvc.New(categoryRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, log, dbpool, httpserver.Deps{
		CategorySvc: categoryService,
		CORSMaxAge:  cfg.CORSMaxAge,
		Version:     version,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.DBDriver).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		log.Info().Msg("server stopped")
	}
}
