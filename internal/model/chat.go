// internal/model/chat.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const DefaultChatTopic = "general"

// ChatSession groups the turns of one tutor conversation.
type ChatSession struct {
	SessionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"session_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Level     Level     `gorm:"type:varchar(2);not null" json:"level"`
	Topic     string    `gorm:"not null" json:"topic"`
	Summary   string    `gorm:"not null;default:''" json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleTutor ChatRole = "tutor"
)

// ChatTurn is one message in a session. Tutor turns keep the structured
// feedback as JSON text.
type ChatTurn struct {
	TurnID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"turn_id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Role      ChatRole  `gorm:"type:varchar(10);not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Feedback  string    `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}

// CreateChatSessionRequest is the body of POST /chat/sessions.
type CreateChatSessionRequest struct {
	Level Level  `json:"level" validate:"required,oneof=A1 A2 B1 B2 C1"`
	Topic string `json:"topic" validate:"omitempty,max=100"`
}

// TutorRequest is the body of POST /tutor.
type TutorRequest struct {
	UserText  string     `json:"user_text" validate:"required,max=4000"`
	UserLevel Level      `json:"user_level" validate:"omitempty,oneof=A1 A2 B1 B2 C1"`
	Mode      string     `json:"mode" validate:"omitempty,oneof=conversation correction"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
}
