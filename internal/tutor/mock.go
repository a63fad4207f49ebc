package tutor

import (
	"context"

	"ai_linguo/internal/model"
)

var mockReplies = map[model.Level]string{
	model.LevelA1: "That's a great start! Let me help you improve this sentence.",
	model.LevelA2: "Good effort! I can see you're making progress with your English.",
	model.LevelB1: "Nice work! Your English is developing well. Let me give you some feedback.",
	model.LevelB2: "Excellent! You're expressing yourself clearly. Here are a few suggestions.",
	model.LevelC1: "Very well articulated! Your English is quite advanced. Let me offer some refinements.",
}

// MockTutor returns canned feedback chosen by level. Unknown levels get the
// B1 reply.
type MockTutor struct{}

func NewMockTutor() *MockTutor {
	return &MockTutor{}
}

func (m *MockTutor) GenerateFeedback(_ context.Context, _ string, level model.Level, _ string) (*Feedback, error) {
	reply, ok := mockReplies[level]
	if !ok {
		reply = mockReplies[model.LevelB1]
	}
	return &Feedback{
		Reply: reply,
		Corrections: []Correction{
			{
				Original:    "I go to school yesterday",
				Corrected:   "I went to school yesterday",
				Explanation: "Use past tense 'went' for actions that happened in the past",
				Rule:        "Past Simple Tense",
			},
		},
		MiniExercise: &MiniExercise{
			Type:        "multiple_choice",
			Question:    "Choose the correct past tense:",
			Options:     []string{"I go", "I went", "I going", "I goes"},
			Correct:     1,
			Explanation: "Past tense of 'go' is 'went'",
		},
	}, nil
}
