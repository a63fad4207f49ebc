package service

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/pronunciation"
	"ai_linguo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultAttemptLimit = 20

//go:generate mockery --name PronunciationService --output ./mocks --outpkg mocks --case=underscore
type PronunciationService interface {
	Analyze(ctx context.Context, userID uuid.UUID, req *model.AnalyzePronunciationRequest) (*model.PronunciationAttempt, error)
	ListAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.PronunciationAttempt, error)
}

type pronunciationService struct {
	db       *gorm.DB
	repo     repository.PronunciationRepository
	analyzer pronunciation.Analyzer
	now      func() time.Time
}

func NewPronunciationService(db *gorm.DB, repo repository.PronunciationRepository, analyzer pronunciation.Analyzer) PronunciationService {
	if analyzer == nil {
		analyzer = pronunciation.NewMockAnalyzer()
	}
	return &pronunciationService{
		db:       db,
		repo:     repo,
		analyzer: analyzer,
		now:      time.Now,
	}
}

// Analyze scores the learner's recording and keeps the result.
func (s *pronunciationService) Analyze(ctx context.Context, userID uuid.UUID, req *model.AnalyzePronunciationRequest) (*model.PronunciationAttempt, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	var audio []byte
	if req.AudioBase64 != "" {
		var err error
		audio, err = base64.StdEncoding.DecodeString(req.AudioBase64)
		if err != nil {
			logger.Warn("Invalid audio payload", "error", err)
			return nil, model.NewAppError("INVALID_AUDIO", "audio_base64 is not valid base64.", "audio_base64", model.ErrInvalidInput)
		}
	}

	phrase := strings.TrimSpace(req.Phrase)
	result, err := s.analyzer.Analyze(ctx, phrase, audio)
	if err != nil {
		logger.Error("Pronunciation analysis failed", "error", err)
		return nil, model.NewAppError("ANALYSIS_FAILED", "The recording could not be analyzed.", "", err)
	}

	attempt := &model.PronunciationAttempt{
		AttemptID:  uuid.New(),
		UserID:     userID,
		Phrase:     phrase,
		Transcript: result.Transcript,
		Score:      result.Score,
		Tips:       result.Tips,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, s.db, attempt); err != nil {
		logger.Error("Failed to store pronunciation attempt", "error", err)
		return nil, storageError(err, "Failed to store the analysis.")
	}

	logger.Info("Pronunciation analyzed", "attempt_id", attempt.AttemptID, "score", attempt.Score, "audio_bytes", len(audio))
	return attempt, nil
}

func (s *pronunciationService) ListAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.PronunciationAttempt, error) {
	if limit <= 0 {
		limit = defaultAttemptLimit
	}
	attempts, err := s.repo.ListRecent(ctx, s.db, userID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list pronunciation attempts", "error", err, "user_id", userID)
		return nil, storageError(err, "Failed to load pronunciation attempts.")
	}
	return attempts, nil
}
