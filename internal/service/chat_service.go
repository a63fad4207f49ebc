package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ai_linguo/internal/config"
	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/repository"
	"ai_linguo/internal/tutor"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name ChatService --output ./mocks --outpkg mocks --case=underscore
type ChatService interface {
	CreateSession(ctx context.Context, userID uuid.UUID, req *model.CreateChatSessionRequest) (*model.ChatSession, error)
	ListTurns(ctx context.Context, userID, sessionID uuid.UUID, limit int) ([]*model.ChatTurn, error)
	Tutor(ctx context.Context, userID uuid.UUID, req *model.TutorRequest) (*tutor.Feedback, error)
}

type chatService struct {
	db        *gorm.DB
	chatRepo  repository.ChatRepository
	generator tutor.FeedbackGenerator
	cfg       *config.Config
	now       func() time.Time
}

func NewChatService(db *gorm.DB, chatRepo repository.ChatRepository, generator tutor.FeedbackGenerator, cfg *config.Config) ChatService {
	if generator == nil {
		generator = tutor.NewMockTutor()
	}
	return &chatService{
		db:        db,
		chatRepo:  chatRepo,
		generator: generator,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userID uuid.UUID, req *model.CreateChatSessionRequest) (*model.ChatSession, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		topic = model.DefaultChatTopic
	}
	session := &model.ChatSession{
		SessionID: uuid.New(),
		UserID:    userID,
		Level:     req.Level,
		Topic:     topic,
		CreatedAt: s.now().UTC(),
	}
	if err := s.chatRepo.CreateSession(ctx, s.db, session); err != nil {
		logger.Error("Failed to create chat session", "error", err)
		return nil, storageError(err, "Failed to create the chat session.")
	}

	logger.Info("Chat session created", "session_id", session.SessionID, "level", string(session.Level), "topic", topic)
	return session, nil
}

// ListTurns returns the session's turns oldest first. Only the session owner
// may read them.
func (s *chatService) ListTurns(ctx context.Context, userID, sessionID uuid.UUID, limit int) ([]*model.ChatTurn, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", sessionID)

	if _, err := s.ownedSession(ctx, s.db, userID, sessionID); err != nil {
		logger.Warn("Cannot list chat turns", "error", err)
		return nil, err
	}

	if limit <= 0 {
		limit = config.DefaultHistoryLimit
		if s.cfg != nil && s.cfg.App.HistoryLimit > 0 {
			limit = s.cfg.App.HistoryLimit
		}
	}
	turns, err := s.chatRepo.ListTurns(ctx, s.db, sessionID, limit)
	if err != nil {
		logger.Error("Failed to list chat turns", "error", err)
		return nil, storageError(err, "Failed to load the conversation.")
	}
	return turns, nil
}

// Tutor asks the feedback generator about the learner's text. With a session
// the exchange is stored as a user turn followed by a tutor turn.
func (s *chatService) Tutor(ctx context.Context, userID uuid.UUID, req *model.TutorRequest) (*tutor.Feedback, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	level := req.UserLevel
	if !level.IsValid() {
		level = model.LevelB1
	}
	mode := req.Mode
	if mode == "" {
		mode = tutor.ModeConversation
	}

	if req.SessionID != nil {
		if _, err := s.ownedSession(ctx, s.db, userID, *req.SessionID); err != nil {
			logger.Warn("Tutor request for unusable session", "error", err, "session_id", *req.SessionID)
			return nil, err
		}
	}

	feedback, err := s.generator.GenerateFeedback(ctx, req.UserText, level, mode)
	if err != nil {
		logger.Error("Tutor feedback failed", "error", err)
		return nil, model.NewAppError("TUTOR_UNAVAILABLE", "The tutor could not answer. Please try again.", "", err)
	}

	if req.SessionID == nil {
		return feedback, nil
	}

	feedbackJSON, err := json.Marshal(feedback)
	if err != nil {
		logger.Error("Failed to encode tutor feedback", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to store the conversation.", "", err)
	}

	userAt := s.now().UTC()
	tutorAt := s.now().UTC()
	if !tutorAt.After(userAt) {
		tutorAt = userAt.Add(time.Microsecond)
	}
	turns := []*model.ChatTurn{
		{
			TurnID:    uuid.New(),
			SessionID: *req.SessionID,
			Role:      model.ChatRoleUser,
			Content:   req.UserText,
			CreatedAt: userAt,
		},
		{
			TurnID:    uuid.New(),
			SessionID: *req.SessionID,
			Role:      model.ChatRoleTutor,
			Content:   feedback.Reply,
			Feedback:  string(feedbackJSON),
			CreatedAt: tutorAt,
		},
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.chatRepo.AppendTurns(ctx, tx, turns...)
	})
	if err != nil {
		logger.Error("Failed to store chat turns", "error", err, "session_id", *req.SessionID)
		return nil, txError(err, "Failed to store the conversation.")
	}

	logger.Info("Tutor turn stored", "session_id", *req.SessionID, "corrections", len(feedback.Corrections))
	return feedback, nil
}

func (s *chatService) ownedSession(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.ChatSession, error) {
	session, err := s.chatRepo.FindSession(ctx, db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFound("SESSION_NOT_FOUND", "The chat session does not exist.", "session_id")
		}
		return nil, storageError(err, "Failed to load the chat session.")
	}
	if session.UserID != userID {
		return nil, model.NewAppError("SESSION_FORBIDDEN", "The chat session belongs to another learner.", "session_id", model.ErrForbidden)
	}
	return session, nil
}
