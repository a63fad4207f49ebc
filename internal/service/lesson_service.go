package service

import (
	"context"
	"errors"
	"time"

	"ai_linguo/internal/cache"
	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name LessonService --output ./mocks --outpkg mocks --case=underscore
type LessonService interface {
	ListLessons(ctx context.Context, userID uuid.UUID, level model.Level) ([]*model.LessonResponse, error)
	CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID, completed bool) error
}

type lessonService struct {
	db         *gorm.DB
	lessonRepo repository.LessonRepository
	userRepo   repository.UserRepository
	cache      cache.ContentCache
	now        func() time.Time
}

func NewLessonService(db *gorm.DB, lessonRepo repository.LessonRepository, userRepo repository.UserRepository, contentCache cache.ContentCache) LessonService {
	if contentCache == nil {
		contentCache = cache.NewNoopContentCache()
	}
	return &lessonService{
		db:         db,
		lessonRepo: lessonRepo,
		userRepo:   userRepo,
		cache:      contentCache,
		now:        time.Now,
	}
}

// ListLessons lists the lessons of a level with the learner's completion
// flags. Without a level the learner's own level is used, or A1 for an
// unknown learner.
func (s *lessonService) ListLessons(ctx context.Context, userID uuid.UUID, level model.Level) ([]*model.LessonResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if level == "" {
		level = model.LevelA1
		user, err := s.userRepo.FindByID(ctx, s.db, userID)
		switch {
		case err == nil:
			if user.CEFRLevel.IsValid() {
				level = user.CEFRLevel
			}
		case errors.Is(err, model.ErrNotFound):
			logger.Debug("Unknown learner, listing A1 lessons")
		default:
			logger.Error("Failed to load learner level", "error", err)
			return nil, storageError(err, "Failed to load the profile.")
		}
	}

	lessons, ok := s.cache.Lessons(ctx, level)
	if !ok {
		var err error
		lessons, err = s.lessonRepo.ListByLevel(ctx, s.db, level)
		if err != nil {
			logger.Error("Failed to list lessons", "error", err, "level", string(level))
			return nil, storageError(err, "Failed to load lessons.")
		}
		s.cache.SetLessons(ctx, level, lessons)
	}

	completed, err := s.lessonRepo.CompletedLessonIDs(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load lesson progress", "error", err)
		return nil, storageError(err, "Failed to load lesson progress.")
	}

	responses := make([]*model.LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		responses = append(responses, model.NewLessonResponse(l, completed[l.LessonID]))
	}
	return responses, nil
}

// CompleteLesson stores the completion state of one lesson for the learner.
func (s *lessonService) CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID, completed bool) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "lesson_id", lessonID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.lessonRepo.FindByID(ctx, tx, lessonID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFound("LESSON_NOT_FOUND", "The lesson does not exist.", "lesson_id")
			}
			return storageError(err, "Failed to load the lesson.")
		}
		progress := &model.LessonProgress{
			UserID:      userID,
			LessonID:    lessonID,
			Completed:   completed,
			CompletedAt: s.now().UTC(),
		}
		if err := s.lessonRepo.SaveProgress(ctx, tx, progress); err != nil {
			return storageError(err, "Failed to save lesson progress.")
		}
		return nil
	})
	if err != nil {
		logger.Warn("Failed to complete lesson", "error", err)
		return txError(err, "Failed to save lesson progress.")
	}

	logger.Info("Lesson progress saved", "completed", completed)
	return nil
}
