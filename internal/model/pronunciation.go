package model

import (
	"time"

	"github.com/google/uuid"
)

// PronunciationAttempt is a stored analysis of one spoken phrase.
type PronunciationAttempt struct {
	AttemptID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Phrase     string    `gorm:"not null" json:"phrase"`
	Transcript string    `gorm:"not null" json:"transcript"`
	Score      float64   `gorm:"not null" json:"score"`
	Tips       []string  `gorm:"type:text;serializer:json" json:"tips"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PronunciationAttempt) TableName() string {
	return "pronunciation_attempts"
}

// AnalyzePronunciationRequest is the body of POST /pronunciation/analyze.
type AnalyzePronunciationRequest struct {
	Phrase      string `json:"phrase" validate:"required,max=500"`
	AudioBase64 string `json:"audio_base64" validate:"omitempty,base64"`
}
