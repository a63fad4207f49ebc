// internal/model/review_state.go
package model

import (
	"time"

	"ai_linguo/internal/srs"

	"github.com/google/uuid"
)

// ReviewState is the schedule of one card for one learner. A missing row
// means the card is new and immediately due.
type ReviewState struct {
	ReviewID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_card"`
	CardID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_card"`
	DueAt        time.Time `gorm:"not null;index"`
	IntervalDays int       `gorm:"not null"`
	Ease         float64   `gorm:"not null"`
	LastResult   srs.Grade `gorm:"type:varchar(10);not null"`
	ReviewedAt   time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ReviewState) TableName() string {
	return "srs_reviews"
}

// Schedule returns the scheduler view of the row.
func (r *ReviewState) Schedule() *srs.State {
	if r == nil {
		return nil
	}
	return &srs.State{
		DueAt:        r.DueAt,
		IntervalDays: r.IntervalDays,
		Ease:         r.Ease,
		LastResult:   r.LastResult,
		ReviewedAt:   r.ReviewedAt,
	}
}

// NewReviewState builds the row persisted after a graded review.
func NewReviewState(userID, cardID uuid.UUID, s srs.State) *ReviewState {
	return &ReviewState{
		ReviewID:     uuid.New(),
		UserID:       userID,
		CardID:       cardID,
		DueAt:        s.DueAt,
		IntervalDays: s.IntervalDays,
		Ease:         s.Ease,
		LastResult:   s.LastResult,
		ReviewedAt:   s.ReviewedAt,
	}
}

// SubmitReviewRequest is the body of POST /vocabulary/review. LearnerID is
// optional; when present it must match the authenticated learner.
type SubmitReviewRequest struct {
	LearnerID *uuid.UUID `json:"learner_id,omitempty"`
	CardID    uuid.UUID  `json:"card_id" validate:"required"`
	Grade     srs.Grade  `json:"grade"`
}

// SubmitReviewResponse reports when the card is due next.
type SubmitReviewResponse struct {
	Success bool      `json:"success"`
	NextDue time.Time `json:"next_due"`
}
