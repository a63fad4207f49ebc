package service

import (
	"context"
	"fmt"
	"time"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const reminderPageSize = 100

// ReminderService mails each learner a digest of their due cards.
type ReminderService interface {
	SendDueReminders(ctx context.Context) (int, error)
}

type reminderService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cardRepo repository.CardRepository
	mailer   Mailer
	now      func() time.Time
}

func NewReminderService(db *gorm.DB, userRepo repository.UserRepository, cardRepo repository.CardRepository, mailer Mailer) ReminderService {
	return &reminderService{
		db:       db,
		userRepo: userRepo,
		cardRepo: cardRepo,
		mailer:   mailer,
		now:      time.Now,
	}
}

// SendDueReminders walks all learners and mails those with at least one due
// card. A failed mail is logged and skipped. It returns the number of mails sent.
func (s *reminderService) SendDueReminders(ctx context.Context) (int, error) {
	logger := middleware.GetLogger(ctx)
	now := s.now().UTC()

	sent := 0
	after := uuid.Nil
	for {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		users, err := s.userRepo.ListAfter(ctx, s.db, after, reminderPageSize)
		if err != nil {
			logger.Error("Failed to list users for reminders", "error", err)
			return sent, err
		}

		for _, u := range users {
			due, err := s.cardRepo.CountDue(ctx, s.db, u.UserID, now)
			if err != nil {
				logger.Error("Failed to count due cards", "error", err, "user_id", u.UserID)
				return sent, err
			}
			if due == 0 {
				continue
			}

			subject, body := reminderMessage(u.Name, due)
			if err := s.mailer.Send(ctx, u.Email, subject, body); err != nil {
				logger.Warn("Failed to send reminder", "error", err, "user_id", u.UserID)
				continue
			}
			sent++
		}

		if len(users) < reminderPageSize {
			break
		}
		after = users[len(users)-1].UserID
	}

	logger.Info("Due reminders sent", "count", sent)
	return sent, nil
}

func reminderMessage(name string, due int64) (string, string) {
	noun := "cards"
	if due == 1 {
		noun = "card"
	}
	subject := fmt.Sprintf("[AI Linguo] %d vocabulary %s waiting for review", due, noun)
	body := fmt.Sprintf("Hi %s,\n\nYou have %d vocabulary %s due for review today.\nA few minutes now keeps your streak going.\n", name, due, noun)
	return subject, body
}
