package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai_linguo/internal/cache"
	"ai_linguo/internal/config"
	"ai_linguo/internal/handlers"
	"ai_linguo/internal/logging"
	"ai_linguo/internal/pronunciation"
	"ai_linguo/internal/reminder"
	"ai_linguo/internal/repository"
	"ai_linguo/internal/service"
	"ai_linguo/internal/srs"
	"ai_linguo/internal/tutor"
)

func main() {
	// Temporary logger until the config is read.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Config loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(config.Cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	slog.Info("Application starting...")

	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	contentCache := cache.NewNoopContentCache()
	if config.Cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisContentCache(config.Cfg.Redis, logger)
		if err != nil {
			slog.Warn("Redis unavailable, serving content without cache", slog.Any("error", err))
		} else {
			contentCache = redisCache
		}
	}
	defer func() {
		if err := contentCache.Close(); err != nil {
			slog.Error("Error closing content cache", slog.Any("error", err))
		}
	}()

	// Dependency injection
	cardRepo := repository.NewGormCardRepository()
	reviewRepo := repository.NewGormReviewRepository()
	userRepo := repository.NewGormUserRepository()
	lessonRepo := repository.NewGormLessonRepository()
	chatRepo := repository.NewGormChatRepository()
	pronunciationRepo := repository.NewGormPronunciationRepository()

	cfg := &config.Cfg
	reviewService := service.NewReviewService(db, cardRepo, reviewRepo, userRepo, contentCache, srs.NewScheduler(), cfg)
	authService := service.NewAuthService(db, userRepo, cfg)
	userService := service.NewUserService(db, userRepo)
	lessonService := service.NewLessonService(db, lessonRepo, userRepo, contentCache)
	chatService := service.NewChatService(db, chatRepo, tutor.New(cfg.Tutor, logger), cfg)
	pronunciationService := service.NewPronunciationService(db, pronunciationRepo, pronunciation.NewMockAnalyzer())

	if cfg.Reminder.Enabled {
		mailer, err := service.NewMailer(cfg)
		if err != nil {
			slog.Error("Error initializing reminder mailer", slog.Any("error", err))
			os.Exit(1)
		}
		reminderService := service.NewReminderService(db, userRepo, cardRepo, mailer)
		reminders := reminder.New(reminderService, cfg.Reminder.Interval, logger)
		if err := reminders.Start(); err != nil {
			slog.Error("Error starting reminder scheduler", slog.Any("error", err))
			os.Exit(1)
		}
		defer reminders.Stop()
	}

	router := handlers.NewRouter(&handlers.Handlers{
		Auth:          handlers.NewAuthHandler(authService),
		Review:        handlers.NewReviewHandler(reviewService),
		User:          handlers.NewUserHandler(userService),
		Lesson:        handlers.NewLessonHandler(lessonService),
		Chat:          handlers.NewChatHandler(chatService),
		Pronunciation: handlers.NewPronunciationHandler(pronunciationService),
		Health:        handlers.NewHealthHandler(db),
	}, handlers.RouterOptions{
		Logger: logger,
		Auth:   cfg.Auth,
		CORS:   cfg.CORS,
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 65 * time.Second, // tutor calls may take a while
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
