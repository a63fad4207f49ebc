// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDailyGoalMinutes is the study goal given to new learners.
const DefaultDailyGoalMinutes = 15

// User is a learner account.
type User struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Name             string     `gorm:"not null" json:"name"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	CEFRLevel        Level      `gorm:"type:varchar(2);not null;default:'A2'" json:"cefr_level"`
	DailyGoalMinutes int        `gorm:"not null;default:15" json:"daily_goal_minutes"`
	StreakDays       int        `gorm:"not null;default:0" json:"streak_days"`
	TotalMinutes     int        `gorm:"not null;default:0" json:"total_minutes"`
	LastStudyDate    *time.Time `json:"last_study_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// UserResponse is the public view of a User.
type UserResponse struct {
	UserID           uuid.UUID  `json:"user_id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	CEFRLevel        Level      `json:"cefr_level"`
	DailyGoalMinutes int        `json:"daily_goal_minutes"`
	StreakDays       int        `json:"streak_days"`
	TotalMinutes     int        `json:"total_minutes"`
	LastStudyDate    *time.Time `json:"last_study_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:           u.UserID,
		Email:            u.Email,
		Name:             u.Name,
		CEFRLevel:        u.CEFRLevel,
		DailyGoalMinutes: u.DailyGoalMinutes,
		StreakDays:       u.StreakDays,
		TotalMinutes:     u.TotalMinutes,
		LastStudyDate:    u.LastStudyDate,
		CreatedAt:        u.CreatedAt,
	}
}

// RecordProgressRequest adds study minutes to the learner's totals.
type RecordProgressRequest struct {
	MinutesStudied int `json:"minutes_studied" validate:"required,min=1,max=1440"`
}

// SuccessResponse is returned by endpoints that only acknowledge a write.
type SuccessResponse struct {
	Success bool `json:"success"`
}
