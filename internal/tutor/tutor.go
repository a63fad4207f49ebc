// Package tutor produces conversational feedback on a learner's English.
package tutor

import (
	"context"
	"log/slog"

	"ai_linguo/internal/config"
	"ai_linguo/internal/model"
)

const (
	ModeConversation = "conversation"
	ModeCorrection   = "correction"
)

// MaxCorrections bounds the corrections returned for one message.
const MaxCorrections = 3

type Correction struct {
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
	Rule        string `json:"rule"`
}

type MiniExercise struct {
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Feedback is the tutor's answer to one learner message.
type Feedback struct {
	Reply        string        `json:"reply"`
	Corrections  []Correction  `json:"corrections"`
	MiniExercise *MiniExercise `json:"mini_exercise"`
}

type FeedbackGenerator interface {
	GenerateFeedback(ctx context.Context, text string, level model.Level, mode string) (*Feedback, error)
}

// New returns the generator selected by cfg.Mode. The OpenAI generator falls
// back to canned feedback when the API fails.
func New(cfg config.TutorConfig, logger *slog.Logger) FeedbackGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	mock := NewMockTutor()
	if cfg.Mode != "openai" || cfg.APIKey == "" {
		logger.Info("Tutor running in mock mode")
		return mock
	}
	logger.Info("Tutor using OpenAI", slog.String("model", cfg.Model))
	return NewOpenAITutor(cfg, mock, logger)
}

func (f *Feedback) normalize() {
	if f.Corrections == nil {
		f.Corrections = []Correction{}
	}
	if len(f.Corrections) > MaxCorrections {
		f.Corrections = f.Corrections[:MaxCorrections]
	}
}
