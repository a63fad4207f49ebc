package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is seeded grammar or vocabulary content for one CEFR level.
type Lesson struct {
	LessonID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	Seq              int64     `gorm:"not null;uniqueIndex" json:"-"`
	CEFRLevel        Level     `gorm:"type:varchar(2);not null;index" json:"cefr_level"`
	Title            string    `gorm:"not null;uniqueIndex" json:"title"`
	ContentMarkdown  string    `gorm:"type:text;not null" json:"content_markdown"`
	EstimatedMinutes int       `gorm:"not null" json:"estimated_minutes"`
	CreatedAt        time.Time `json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// LessonProgress records that a learner finished (or reopened) a lesson.
// There is at most one row per learner and lesson.
type LessonProgress struct {
	ProgressID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lesson_progress_user_lesson" json:"user_id"`
	LessonID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lesson_progress_user_lesson" json:"lesson_id"`
	Completed   bool      `gorm:"not null" json:"completed"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// CompleteLessonRequest is the body of POST /lessons/{lesson_id}/complete.
// A missing body or field means completed.
type CompleteLessonRequest struct {
	Completed *bool `json:"completed,omitempty"`
}

// LessonResponse is a lesson as listed for one learner.
type LessonResponse struct {
	LessonID         uuid.UUID `json:"lesson_id"`
	CEFRLevel        Level     `json:"cefr_level"`
	Title            string    `json:"title"`
	ContentMarkdown  string    `json:"content_markdown"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	Completed        bool      `json:"completed"`
}

func NewLessonResponse(l *Lesson, completed bool) *LessonResponse {
	return &LessonResponse{
		LessonID:         l.LessonID,
		CEFRLevel:        l.CEFRLevel,
		Title:            l.Title,
		ContentMarkdown:  l.ContentMarkdown,
		EstimatedMinutes: l.EstimatedMinutes,
		Completed:        completed,
	}
}
