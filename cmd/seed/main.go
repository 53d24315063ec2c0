package main

import (
	"context"
	"os"

	"category-service/internal/config"
	"category-service/internal/db"
	"category-service/internal/logger"
	"category-service/internal/seed"
	"github.com/rs/zerolog"
)

func main() {
	boot := zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "seed").Logger()
	if err := config.LoadDotEnv(); err != nil {
		boot.Fatal().Err(err).Msg("load .env")
	}
	cfg, err := config.FromEnv()
	if err != nil {
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Environment, cfg.LogLevel).With().Str("cmd", "seed").Logger()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	inserted, err := seed.Apply(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("seed apply")
	}

	log.Info().Int("inserted", inserted).Msg("seed applied")
}
