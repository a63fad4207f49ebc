package service

import (
	"context"
	"errors"
	"time"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
	RecordProgress(ctx context.Context, userID uuid.UUID, req *model.RecordProgressRequest) (*model.UserResponse, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID)
			return nil, notFound("USER_NOT_FOUND", "The learner does not exist.", "")
		}
		logger.Error("Error finding user by ID", "error", err, "user_id", userID)
		return nil, storageError(err, "Failed to load the profile.")
	}
	return model.NewUserResponse(user), nil
}

// RecordProgress adds studied minutes and advances the day streak.
func (s *userService) RecordProgress(ctx context.Context, userID uuid.UUID, req *model.RecordProgressRequest) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	today := studyDay(s.now())

	var updated *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFound("USER_NOT_FOUND", "The learner does not exist.", "")
			}
			return storageError(err, "Failed to load the profile.")
		}

		user.StreakDays = nextStreak(user.LastStudyDate, user.StreakDays, today)
		user.TotalMinutes += req.MinutesStudied
		user.LastStudyDate = &today

		if err := s.userRepo.UpdateStudyProgress(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFound("USER_NOT_FOUND", "The learner does not exist.", "")
			}
			return storageError(err, "Failed to save study progress.")
		}
		updated = user
		return nil
	})
	if err != nil {
		logger.Error("Failed to record study progress", "error", err)
		return nil, txError(err, "Failed to save study progress.")
	}

	logger.Info("Study progress recorded",
		"minutes", req.MinutesStudied,
		"total_minutes", updated.TotalMinutes,
		"streak_days", updated.StreakDays,
	)
	return model.NewUserResponse(updated), nil
}

// studyDay truncates t to midnight UTC.
func studyDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// nextStreak: same day keeps the streak, the following day extends it,
// anything else starts over at 1.
func nextStreak(last *time.Time, streak int, today time.Time) int {
	if last == nil {
		return 1
	}
	day := studyDay(*last)
	switch {
	case day.Equal(today):
		if streak < 1 {
			return 1
		}
		return streak
	case day.Equal(today.AddDate(0, 0, -1)):
		return streak + 1
	default:
		return 1
	}
}
