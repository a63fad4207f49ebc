// Command seed loads the built-in lessons and vocabulary cards, and optionally
// imports extra cards from an .xlsx or .csv file.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"ai_linguo/internal/cache"
	"ai_linguo/internal/config"
	"ai_linguo/internal/logging"
	"ai_linguo/internal/repository"
	"ai_linguo/internal/seed"

	flag "github.com/spf13/pflag"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	importPath := flag.String("import", "", "extra cards to import (.xlsx, .xlsm or .csv)")
	skipBuiltin := flag.Bool("skip-builtin", false, "do not insert the built-in lessons and cards")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.New(cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := repository.AutoMigrate(db); err != nil {
		logger.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// Seeding must drop cached listings so the API sees new cards.
	contentCache := cache.NewNoopContentCache()
	if cfg.Redis.Addr != "" {
		if redisCache, err := cache.NewRedisContentCache(cfg.Redis, logger); err != nil {
			logger.Warn("Redis unavailable, cached listings will expire on their own", slog.Any("error", err))
		} else {
			contentCache = redisCache
		}
	}
	defer contentCache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	seeder := seed.New(db, repository.NewGormCardRepository(), repository.NewGormLessonRepository(), contentCache)

	if !*skipBuiltin {
		res, err := seeder.SeedBuiltin(ctx)
		if err != nil {
			logger.Error("Seeding built-in content failed", slog.Any("error", err))
			os.Exit(1)
		}
		report(logger, "builtin", res)
	}

	if *importPath != "" {
		res, err := seeder.ImportCards(ctx, *importPath)
		if err != nil {
			logger.Error("Importing cards failed", slog.String("path", *importPath), slog.Any("error", err))
			os.Exit(1)
		}
		report(logger, *importPath, res)
	}
}

func report(logger *slog.Logger, source string, res *seed.Result) {
	logger.Info("Seeding finished",
		slog.String("source", source),
		slog.Int("lessons_created", res.LessonsCreated),
		slog.Int("lessons_skipped", res.LessonsSkipped),
		slog.Int("cards_created", res.CardsCreated),
		slog.Int("cards_skipped", res.CardsSkipped),
	)
	for _, p := range res.Problems {
		logger.Warn("Skipped row", slog.String("source", source), slog.String("problem", p))
	}
}
