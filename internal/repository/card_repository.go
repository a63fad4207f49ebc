//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.VocabCard, error)
	ListByLevel(ctx context.Context, db *gorm.DB, level model.Level) ([]*model.VocabCard, error)
	FindDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time, level model.Level, limit int) ([]*model.VocabCard, error)
	CountDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) (int64, error)
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, card *model.VocabCard) (bool, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.VocabCard, error) {
	logger := middleware.GetLogger(ctx)
	var card model.VocabCard
	result := db.WithContext(ctx).Where("card_id = ?", cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card by ID in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

// ListByLevel returns cards in seed order. An empty level returns every card.
func (r *gormCardRepository) ListByLevel(ctx context.Context, db *gorm.DB, level model.Level) ([]*model.VocabCard, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.VocabCard
	query := db.WithContext(ctx).Model(&model.VocabCard{})
	if level != "" {
		query = query.Where("cefr_level = ?", level)
	}
	result := query.Order("seq ASC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error listing cards in DB",
			"error", result.Error,
			"level", string(level),
		)
		return nil, fmt.Errorf("gormCardRepository.ListByLevel: %w", result.Error)
	}
	return cards, nil
}

// dueScope joins each card to the learner's review row. Cards without a row
// have never been reviewed and count as due.
func dueScope(db *gorm.DB, userID uuid.UUID, now time.Time) *gorm.DB {
	return db.Model(&model.VocabCard{}).
		Joins("LEFT JOIN srs_reviews r ON r.card_id = vocab_cards.card_id AND r.user_id = ?", userID).
		Where("(r.due_at IS NULL OR r.due_at <= ?)", now)
}

// FindDue returns up to limit cards due for the learner at now: never-reviewed
// cards first in seed order, then reviewed cards by ascending due date.
func (r *gormCardRepository) FindDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time, level model.Level, limit int) ([]*model.VocabCard, error) {
	logger := middleware.GetLogger(ctx)
	cards := []*model.VocabCard{}
	if limit <= 0 {
		return cards, nil
	}

	query := dueScope(db.WithContext(ctx), userID, now.UTC()).Select("vocab_cards.*")
	if level != "" {
		query = query.Where("vocab_cards.cefr_level = ?", level)
	}
	result := query.
		Order("CASE WHEN r.due_at IS NULL THEN 0 ELSE 1 END").
		Order("r.due_at ASC").
		Order("vocab_cards.seq ASC").
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding due cards in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"level", string(level),
		)
		return nil, fmt.Errorf("gormCardRepository.FindDue: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) CountDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := dueScope(db.WithContext(ctx), userID, now.UTC()).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting due cards in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormCardRepository.CountDue: %w", result.Error)
	}
	return count, nil
}

// CreateIfAbsent inserts card unless a card with the same term exists. The
// card gets the next seed sequence number. It reports whether a row was added.
func (r *gormCardRepository) CreateIfAbsent(ctx context.Context, tx *gorm.DB, card *model.VocabCard) (bool, error) {
	logger := middleware.GetLogger(ctx)

	var existing int64
	if err := tx.WithContext(ctx).Model(&model.VocabCard{}).Where("term = ?", card.Term).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("gormCardRepository.CreateIfAbsent: %w", err)
	}
	if existing > 0 {
		logger.Debug("Card already seeded", "term", card.Term)
		return false, nil
	}

	var maxSeq int64
	if err := tx.WithContext(ctx).Model(&model.VocabCard{}).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
		return false, fmt.Errorf("gormCardRepository.CreateIfAbsent: %w", err)
	}
	if card.CardID == uuid.Nil {
		card.CardID = uuid.New()
	}
	card.Seq = maxSeq + 1

	if err := tx.WithContext(ctx).Create(card).Error; err != nil {
		if IsUniqueViolation(err) {
			return false, nil
		}
		logger.Error("Error creating card in DB",
			"error", err,
			"term", card.Term,
		)
		return false, fmt.Errorf("gormCardRepository.CreateIfAbsent: %w", err)
	}
	return true, nil
}
