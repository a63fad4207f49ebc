//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	UpdateStudyProgress(ctx context.Context, tx *gorm.DB, user *model.User) error
	ListAfter(ctx context.Context, db *gorm.DB, afterID uuid.UUID, limit int) ([]*model.User, error)
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create user",
				"error", result.Error,
				"email", user.Email,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB",
			"error", result.Error,
			"email", user.Email,
		)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("User not found by email", "email", email)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by email in DB",
			"error", result.Error,
			"email", email,
		)
		return nil, fmt.Errorf("gormUserRepository.FindByEmail: %w", result.Error)
	}
	return &user, nil
}

// UpdateStudyProgress writes the study counters of user.
func (r *gormUserRepository) UpdateStudyProgress(ctx context.Context, tx *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]interface{}{
			"total_minutes":   user.TotalMinutes,
			"streak_days":     user.StreakDays,
			"last_study_date": user.LastStudyDate,
		})
	if result.Error != nil {
		logger.Error("Error updating user progress in DB",
			"error", result.Error,
			"user_id", user.UserID.String(),
		)
		return fmt.Errorf("gormUserRepository.UpdateStudyProgress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ListAfter pages through users ordered by ID, starting after afterID.
func (r *gormUserRepository) ListAfter(ctx context.Context, db *gorm.DB, afterID uuid.UUID, limit int) ([]*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var users []*model.User
	query := db.WithContext(ctx).Model(&model.User{})
	if afterID != uuid.Nil {
		query = query.Where("user_id > ?", afterID)
	}
	result := query.Order("user_id ASC").Limit(limit).Find(&users)
	if result.Error != nil {
		logger.Error("Error listing users in DB", "error", result.Error)
		return nil, fmt.Errorf("gormUserRepository.ListAfter: %w", result.Error)
	}
	return users, nil
}
