// Package pronunciation scores a learner's recording of a phrase.
package pronunciation

import (
	"context"
	"strings"
)

// Result is the outcome of one analysis.
type Result struct {
	Transcript string
	Score      float64
	Tips       []string
}

type Analyzer interface {
	Analyze(ctx context.Context, phrase string, audio []byte) (*Result, error)
}

const mockScore = 0.85

var mockTips = []string{
	`Focus on the "th" sound in "the"`,
	`Stress the first syllable in "beautiful"`,
}

// MockAnalyzer does not listen to the audio. The transcript is the phrase in
// lower case and the score is fixed.
type MockAnalyzer struct{}

func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

func (MockAnalyzer) Analyze(_ context.Context, phrase string, _ []byte) (*Result, error) {
	tips := make([]string, len(mockTips))
	copy(tips, mockTips)
	return &Result{
		Transcript: strings.ToLower(phrase),
		Score:      mockScore,
		Tips:       tips,
	}, nil
}
