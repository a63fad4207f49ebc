// Package seed loads lessons and vocabulary cards into the content store.
// Seeding is idempotent: lessons are keyed by title and cards by term.
package seed

import (
	"context"
	"log/slog"

	"ai_linguo/internal/cache"
	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/repository"

	"gorm.io/gorm"
)

// Result counts what one seeding run changed.
type Result struct {
	LessonsCreated int
	LessonsSkipped int
	CardsCreated   int
	CardsSkipped   int
	Problems       []string
}

type Seeder struct {
	db         *gorm.DB
	cardRepo   repository.CardRepository
	lessonRepo repository.LessonRepository
	cache      cache.ContentCache
}

func New(db *gorm.DB, cardRepo repository.CardRepository, lessonRepo repository.LessonRepository, contentCache cache.ContentCache) *Seeder {
	if contentCache == nil {
		contentCache = cache.NewNoopContentCache()
	}
	return &Seeder{
		db:         db,
		cardRepo:   cardRepo,
		lessonRepo: lessonRepo,
		cache:      contentCache,
	}
}

// SeedBuiltin inserts the built-in lessons and cards that are not there yet.
func (s *Seeder) SeedBuiltin(ctx context.Context) (*Result, error) {
	return s.seed(ctx, Lessons(), Cards())
}

// ImportCards adds the cards of an .xlsx or .csv file after the existing ones.
func (s *Seeder) ImportCards(ctx context.Context, path string) (*Result, error) {
	cards, problems, err := ReadCardFile(path)
	if err != nil {
		return nil, err
	}
	res, err := s.seed(ctx, nil, cards)
	if err != nil {
		return nil, err
	}
	res.Problems = append(problems, res.Problems...)
	return res, nil
}

func (s *Seeder) seed(ctx context.Context, lessons []*model.Lesson, cards []*model.VocabCard) (*Result, error) {
	logger := middleware.GetLogger(ctx)
	res := &Result{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, l := range lessons {
			created, err := s.lessonRepo.CreateIfAbsent(ctx, tx, l)
			if err != nil {
				return err
			}
			if created {
				res.LessonsCreated++
			} else {
				res.LessonsSkipped++
			}
		}
		for _, c := range cards {
			created, err := s.cardRepo.CreateIfAbsent(ctx, tx, c)
			if err != nil {
				return err
			}
			if created {
				res.CardsCreated++
			} else {
				res.CardsSkipped++
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Seeding failed", "error", err)
		return nil, err
	}

	if res.LessonsCreated+res.CardsCreated > 0 {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Warn("Failed to invalidate content cache", "error", err)
		}
	}

	logger.Info("Seeding finished",
		slog.Int("lessons_created", res.LessonsCreated),
		slog.Int("lessons_skipped", res.LessonsSkipped),
		slog.Int("cards_created", res.CardsCreated),
		slog.Int("cards_skipped", res.CardsSkipped),
	)
	return res, nil
}
