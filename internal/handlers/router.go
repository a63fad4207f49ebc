package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"ai_linguo/internal/config"
	"ai_linguo/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth          *AuthHandler
	Review        *ReviewHandler
	User          *UserHandler
	Lesson        *LessonHandler
	Chat          *ChatHandler
	Pronunciation *PronunciationHandler
	Health        *HealthHandler
}

type RouterOptions struct {
	Logger  *slog.Logger
	Auth    config.AuthConfig
	CORS    config.CORSConfig
	Timeout time.Duration // 0 means 60s
}

// NewRouter builds the chi router with the shared middleware stack and the
// /api/v1 routes. Protected routes use JWT auth when enabled and the
// X-User-ID dev middleware otherwise.
func NewRouter(h *Handlers, opts RouterOptions) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   opts.CORS.AllowedOrigins,
		AllowedMethods:   opts.CORS.AllowedMethods,
		AllowedHeaders:   opts.CORS.AllowedHeaders,
		ExposedHeaders:   opts.CORS.ExposedHeaders,
		AllowCredentials: opts.CORS.AllowCredentials,
		MaxAge:           opts.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	var authMiddleware func(http.Handler) http.Handler
	if opts.Auth.Enabled {
		logger.Info("Applying JWT authentication middleware")
		authMiddleware = middleware.JWTAuthMiddleware(opts.Auth.JWT.SecretKey)
	} else {
		logger.Warn("Authentication disabled: trusting X-User-ID header")
		authMiddleware = middleware.DevUserContextMiddleware
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Get("/vocabulary/cards", h.Review.ListCards)
		r.Get("/health", h.Health.Check)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Route("/vocabulary", func(r chi.Router) {
				r.Post("/review", h.Review.SubmitReview)
				r.Get("/due", h.Review.GetDueCards)
			})

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", h.User.GetMe)
				r.Post("/progress", h.User.RecordProgress)
			})

			r.Route("/lessons", func(r chi.Router) {
				r.Get("/", h.Lesson.ListLessons)
				r.Post("/{lesson_id}/complete", h.Lesson.CompleteLesson)
			})

			r.Post("/tutor", h.Chat.Tutor)
			r.Route("/chat/sessions", func(r chi.Router) {
				r.Post("/", h.Chat.CreateSession)
				r.Get("/{session_id}/turns", h.Chat.ListTurns)
			})

			r.Route("/pronunciation", func(r chi.Router) {
				r.Post("/analyze", h.Pronunciation.Analyze)
				r.Get("/attempts", h.Pronunciation.ListAttempts)
			})
		})
	})

	r.Get("/health", h.Health.Check)

	return r
}
