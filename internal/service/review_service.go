package service

import (
	"context"
	"errors"

	"ai_linguo/internal/cache"
	"ai_linguo/internal/config"
	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/repository"
	"ai_linguo/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
type ReviewService interface {
	SubmitReview(ctx context.Context, userID uuid.UUID, req *model.SubmitReviewRequest) (*model.SubmitReviewResponse, error)
	GetDueCards(ctx context.Context, userID uuid.UUID, level model.Level, limit int) ([]*model.CardResponse, error)
	ListCards(ctx context.Context, level model.Level) ([]*model.CardResponse, error)
}

type reviewService struct {
	db         *gorm.DB
	cardRepo   repository.CardRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	cache      cache.ContentCache
	scheduler  *srs.Scheduler
	cfg        *config.Config
}

// NewReviewService builds the review service. With a nil userRepo the learner
// is trusted as given.
func NewReviewService(db *gorm.DB, cardRepo repository.CardRepository, reviewRepo repository.ReviewRepository, userRepo repository.UserRepository, contentCache cache.ContentCache, scheduler *srs.Scheduler, cfg *config.Config) ReviewService {
	if contentCache == nil {
		contentCache = cache.NewNoopContentCache()
	}
	if scheduler == nil {
		scheduler = srs.NewScheduler()
	}
	return &reviewService{
		db:         db,
		cardRepo:   cardRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		cache:      contentCache,
		scheduler:  scheduler,
		cfg:        cfg,
	}
}

// SubmitReview grades one card for the learner and stores the new schedule.
// The learner and card checks and the upsert run in one transaction.
func (s *reviewService) SubmitReview(ctx context.Context, userID uuid.UUID, req *model.SubmitReviewRequest) (*model.SubmitReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "card_id", req.CardID)

	if req.LearnerID != nil && *req.LearnerID != userID {
		logger.Warn("Review submitted for another learner", "learner_id", *req.LearnerID)
		return nil, model.NewAppError("LEARNER_MISMATCH", "learner_id does not match the authenticated learner.", "learner_id", model.ErrForbidden)
	}
	if !req.Grade.IsValid() {
		logger.Warn("Unknown grade treated as again", "grade", string(req.Grade))
	}

	var next srs.State
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.userRepo != nil {
			if _, err := s.userRepo.FindByID(ctx, tx, userID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return notFound("LEARNER_NOT_FOUND", "The learner does not exist.", "learner_id")
				}
				return storageError(err, "Failed to load the learner.")
			}
		}
		if _, err := s.cardRepo.FindByID(ctx, tx, req.CardID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFound("CARD_NOT_FOUND", "The card does not exist.", "card_id")
			}
			return storageError(err, "Failed to load the card.")
		}

		prev, err := s.reviewRepo.FindByUserAndCard(ctx, tx, userID, req.CardID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return storageError(err, "Failed to load the review state.")
		}

		next = s.scheduler.GradeReview(prev.Schedule(), req.Grade)
		if err := s.reviewRepo.Upsert(ctx, tx, model.NewReviewState(userID, req.CardID, next)); err != nil {
			return storageError(err, "Failed to save the review.")
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to submit review", "error", err)
		return nil, txError(err, "Failed to save the review.")
	}

	logger.Info("Review recorded",
		"grade", string(next.LastResult),
		"interval_days", next.IntervalDays,
		"next_due", next.DueAt,
	)
	return &model.SubmitReviewResponse{Success: true, NextDue: next.DueAt}, nil
}

// GetDueCards returns the learner's due cards. limit <= 0 means the configured
// default; larger values are capped at the configured maximum.
func (s *reviewService) GetDueCards(ctx context.Context, userID uuid.UUID, level model.Level, limit int) ([]*model.CardResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	limit = s.effectiveLimit(limit)
	cards, err := s.cardRepo.FindDue(ctx, s.db, userID, s.scheduler.Now(), level, limit)
	if err != nil {
		logger.Error("Failed to find due cards", "error", err)
		return nil, storageError(err, "Failed to load due cards.")
	}

	responses := make([]*model.CardResponse, 0, len(cards))
	for _, c := range cards {
		responses = append(responses, model.NewCardResponse(c))
	}
	logger.Debug("Due cards retrieved", "count", len(responses), "limit", limit, "level", string(level))
	return responses, nil
}

// ListCards returns the card catalogue for a level (all levels when empty).
func (s *reviewService) ListCards(ctx context.Context, level model.Level) ([]*model.CardResponse, error) {
	logger := middleware.GetLogger(ctx)

	cards, ok := s.cache.Cards(ctx, level)
	if !ok {
		var err error
		cards, err = s.cardRepo.ListByLevel(ctx, s.db, level)
		if err != nil {
			logger.Error("Failed to list cards", "error", err)
			return nil, storageError(err, "Failed to load cards.")
		}
		s.cache.SetCards(ctx, level, cards)
	}

	responses := make([]*model.CardResponse, 0, len(cards))
	for _, c := range cards {
		responses = append(responses, model.NewCardResponse(c))
	}
	return responses, nil
}

func (s *reviewService) effectiveLimit(limit int) int {
	def := config.DefaultAppReviewLimit
	max := config.DefaultMaxReviewLimit
	if s.cfg != nil {
		def = s.cfg.App.ReviewLimit
		max = s.cfg.App.MaxReviewLimit
	}
	if limit <= 0 {
		limit = def
	}
	if max > 0 && limit > max {
		limit = max
	}
	return limit
}
