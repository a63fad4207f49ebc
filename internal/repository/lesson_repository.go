//go:generate mockery --name LessonRepository --output ./mocks --outpkg mocks --case=underscore
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

type LessonRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)
	ListByLevel(ctx context.Context, db *gorm.DB, level model.Level) ([]*model.Lesson, error)
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) (bool, error)
	SaveProgress(ctx context.Context, tx *gorm.DB, progress *model.LessonProgress) error
	CompletedLessonIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID) (map[uuid.UUID]bool, error)
}

type gormLessonRepository struct{}

func NewGormLessonRepository() LessonRepository {
	return &gormLessonRepository{}
}

func (r *gormLessonRepository) FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lesson model.Lesson
	result := db.WithContext(ctx).Where("lesson_id = ?", lessonID).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lesson by ID in DB",
			"error", result.Error,
			"lesson_id", lessonID.String(),
		)
		return nil, fmt.Errorf("gormLessonRepository.FindByID: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) ListByLevel(ctx context.Context, db *gorm.DB, level model.Level) ([]*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lessons []*model.Lesson
	result := db.WithContext(ctx).Where("cefr_level = ?", level).Order("seq ASC").Find(&lessons)
	if result.Error != nil {
		logger.Error("Error listing lessons in DB",
			"error", result.Error,
			"level", string(level),
		)
		return nil, fmt.Errorf("gormLessonRepository.ListByLevel: %w", result.Error)
	}
	return lessons, nil
}

// CreateIfAbsent inserts lesson unless one with the same title exists.
func (r *gormLessonRepository) CreateIfAbsent(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) (bool, error) {
	var existing int64
	if err := tx.WithContext(ctx).Model(&model.Lesson{}).Where("title = ?", lesson.Title).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("gormLessonRepository.CreateIfAbsent: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	var maxSeq int64
	if err := tx.WithContext(ctx).Model(&model.Lesson{}).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
		return false, fmt.Errorf("gormLessonRepository.CreateIfAbsent: %w", err)
	}
	if lesson.LessonID == uuid.Nil {
		lesson.LessonID = uuid.New()
	}
	lesson.Seq = maxSeq + 1

	if err := tx.WithContext(ctx).Create(lesson).Error; err != nil {
		if IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("gormLessonRepository.CreateIfAbsent: %w", err)
	}
	return true, nil
}

// SaveProgress records the latest completion state of a lesson for a learner.
func (r *gormLessonRepository) SaveProgress(ctx context.Context, tx *gorm.DB, progress *model.LessonProgress) error {
	logger := middleware.GetLogger(ctx)
	if progress.ProgressID == uuid.Nil {
		progress.ProgressID = uuid.New()
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at"}),
	}).Create(progress)
	if result.Error != nil {
		logger.Error("Error saving lesson progress in DB",
			"error", result.Error,
			"user_id", progress.UserID.String(),
			"lesson_id", progress.LessonID.String(),
		)
		return fmt.Errorf("gormLessonRepository.SaveProgress: %w", result.Error)
	}
	return nil
}

func (r *gormLessonRepository) CompletedLessonIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	logger := middleware.GetLogger(ctx)
	var ids []uuid.UUID
	result := db.WithContext(ctx).Model(&model.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Pluck("lesson_id", &ids)
	if result.Error != nil {
		logger.Error("Error listing completed lessons in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormLessonRepository.CompletedLessonIDs: %w", result.Error)
	}
	completed := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		completed[id] = true
	}
	return completed, nil
}
