//go:generate mockery --name ChatRepository --output ./mocks --outpkg mocks --case=underscore
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

type ChatRepository interface {
	CreateSession(ctx context.Context, db *gorm.DB, session *model.ChatSession) error
	FindSession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.ChatSession, error)
	AppendTurns(ctx context.Context, tx *gorm.DB, turns ...*model.ChatTurn) error
	ListTurns(ctx context.Context, db *gorm.DB, sessionID uuid.UUID, limit int) ([]*model.ChatTurn, error)
}

type gormChatRepository struct{}

func NewGormChatRepository() ChatRepository {
	return &gormChatRepository{}
}

func (r *gormChatRepository) CreateSession(ctx context.Context, db *gorm.DB, session *model.ChatSession) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(session).Error; err != nil {
		logger.Error("Error creating chat session in DB",
			"error", err,
			"user_id", session.UserID.String(),
		)
		return fmt.Errorf("gormChatRepository.CreateSession: %w", err)
	}
	return nil
}

func (r *gormChatRepository) FindSession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.ChatSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.ChatSession
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding chat session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormChatRepository.FindSession: %w", result.Error)
	}
	return &session, nil
}

func (r *gormChatRepository) AppendTurns(ctx context.Context, tx *gorm.DB, turns ...*model.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(&turns).Error; err != nil {
		logger.Error("Error appending chat turns in DB",
			"error", err,
			"session_id", turns[0].SessionID.String(),
		)
		return fmt.Errorf("gormChatRepository.AppendTurns: %w", err)
	}
	return nil
}

// ListTurns returns the oldest limit turns of a session in chronological order.
func (r *gormChatRepository) ListTurns(ctx context.Context, db *gorm.DB, sessionID uuid.UUID, limit int) ([]*model.ChatTurn, error) {
	logger := middleware.GetLogger(ctx)
	turns := []*model.ChatTurn{}
	result := db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Order("turn_id ASC").
		Limit(limit).
		Find(&turns)
	if result.Error != nil {
		logger.Error("Error listing chat turns in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormChatRepository.ListTurns: %w", result.Error)
	}
	return turns, nil
}
