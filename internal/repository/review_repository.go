//go:generate mockery --name ReviewRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	FindByUserAndCard(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID) (*model.ReviewState, error)
	Upsert(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) FindByUserAndCard(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID) (*model.ReviewState, error) {
	logger := middleware.GetLogger(ctx)
	var state model.ReviewState
	result := db.WithContext(ctx).Where("user_id = ? AND card_id = ?", userID, cardID).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding review state in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormReviewRepository.FindByUserAndCard: %w", result.Error)
	}
	return &state, nil
}

// Upsert writes the schedule for (user, card) in one statement. An existing
// row keeps its ID and creation time; every schedule column is replaced.
func (r *gormReviewRepository) Upsert(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error {
	logger := middleware.GetLogger(ctx)
	if state.ReviewID == uuid.Nil {
		state.ReviewID = uuid.New()
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "card_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"due_at", "interval_days", "ease", "last_result", "reviewed_at", "updated_at",
		}),
	}).Create(state)
	if result.Error != nil {
		logger.Error("Error upserting review state in DB",
			"error", result.Error,
			"user_id", state.UserID.String(),
			"card_id", state.CardID.String(),
		)
		return fmt.Errorf("gormReviewRepository.Upsert: %w", result.Error)
	}
	return nil
}
