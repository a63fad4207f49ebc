//go:generate mockery --name PronunciationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PronunciationRepository interface {
	Create(ctx context.Context, db *gorm.DB, attempt *model.PronunciationAttempt) error
	ListRecent(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.PronunciationAttempt, error)
}

type gormPronunciationRepository struct{}

func NewGormPronunciationRepository() PronunciationRepository {
	return &gormPronunciationRepository{}
}

func (r *gormPronunciationRepository) Create(ctx context.Context, db *gorm.DB, attempt *model.PronunciationAttempt) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(attempt).Error; err != nil {
		logger.Error("Error creating pronunciation attempt in DB",
			"error", err,
			"user_id", attempt.UserID.String(),
		)
		return fmt.Errorf("gormPronunciationRepository.Create: %w", err)
	}
	return nil
}

// ListRecent returns the learner's latest attempts, newest first.
func (r *gormPronunciationRepository) ListRecent(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.PronunciationAttempt, error) {
	logger := middleware.GetLogger(ctx)
	attempts := []*model.PronunciationAttempt{}
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts)
	if result.Error != nil {
		logger.Error("Error listing pronunciation attempts in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormPronunciationRepository.ListRecent: %w", result.Error)
	}
	return attempts, nil
}
