// Package srs schedules vocabulary flashcard reviews.
//
// The schedule is a flat lookup: every graded review resets the card to the
// interval and ease of its grade, regardless of the card's history.
package srs

import "time"

// Day is the unit of review intervals.
const Day = 24 * time.Hour

// MinEase is the ease assigned to lapses and hard recalls.
const MinEase = 1.3

var intervalDays = map[Grade]int{
	Again: 1,
	Hard:  1,
	Good:  4,
	Easy:  7,
}

var easeByGrade = map[Grade]float64{
	Again: MinEase,
	Hard:  MinEase,
	Good:  2.0,
	Easy:  2.5,
}

// State is the scheduling state of one (learner, card) pair.
type State struct {
	DueAt        time.Time
	IntervalDays int
	Ease         float64
	LastResult   Grade
	ReviewedAt   time.Time
}

// IsDue reports whether the card should be shown at now. A nil state is a
// card that was never reviewed and is always due.
func (s *State) IsDue(now time.Time) bool {
	if s == nil {
		return true
	}
	return !s.DueAt.After(now)
}

// IntervalFor returns the review interval in days for g.
func IntervalFor(g Grade) int {
	return intervalDays[g.Normalize()]
}

// EaseFor returns the ease factor for g.
func EaseFor(g Grade) float64 {
	return easeByGrade[g.Normalize()]
}

// Scheduler computes review states. The zero value uses the wall clock.
type Scheduler struct {
	now func() time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the scheduler's current time in UTC.
func (s *Scheduler) Now() time.Time {
	if s == nil || s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// GradeReview returns the state that follows a review graded g. prev may be
// nil for a card that has never been reviewed; it does not influence the
// result because intervals do not compound.
func (s *Scheduler) GradeReview(prev *State, g Grade) State {
	g = g.Normalize()
	now := s.Now()
	interval := intervalDays[g]
	return State{
		DueAt:        now.Add(time.Duration(interval) * Day),
		IntervalDays: interval,
		Ease:         easeByGrade[g],
		LastResult:   g,
		ReviewedAt:   now,
	}
}
