package main

import (
	"context"
	"flag"
	"os"
	"time"

	"category-service/internal/config"
	"category-service/internal/db"
	"category-service/internal/importer"
	"category-service/internal/logger"
	categoryrepo "category-service/internal/repository/category"
	categorysvc "category-service/internal/service/category"
	"github.com/rs/zerolog"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a CSV file with a title column")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	boot := zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "importer").Logger()
	if err := config.LoadDotEnv(); err != nil {
		boot.Fatal().Err(err).Msg("load .env")
	}
	cfg, err := config.FromEnv()
	if err != nil {
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Environment, cfg.LogLevel).With().Str("cmd", "importer").Logger()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open file")
	}
	defer f.Close()

	repo, err := categoryrepo.Open(cfg.DBDriver, pool, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("open category repository")
	}
	svc := categorysvc.New(repo)
	imp := importer.NewCSVImporter(f, svc)

	start := time.Now()
	report, err := imp.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Int("created", report.Created).Msg("import failed")
	}
	for _, s := range report.Skipped {
		log.Warn().Int("line", s.Line).Str("title", s.Title).Str("reason", s.Reason).Msg("row skipped")
	}

	log.Info().
		Int("created", report.Created).
		Int("skipped", len(report.Skipped)).
		Dur("took", time.Since(start).Truncate(time.Millisecond)).
		Msg("import finished")
}
