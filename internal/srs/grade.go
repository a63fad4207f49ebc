package srs

import (
	"bytes"
	"encoding"
	"encoding/json"
	"strings"
)

// Grade is the learner's self-reported recall quality for one flashcard review.
type Grade string

const (
	Again Grade = "again" // Forgot the card.
	Hard  Grade = "hard"  // Recalled with significant difficulty.
	Good  Grade = "good"  // Recalled with some effort.
	Easy  Grade = "easy"  // Recalled effortlessly.
)

var (
	_ encoding.TextMarshaler   = Grade("")
	_ encoding.TextUnmarshaler = (*Grade)(nil)
	_ json.Unmarshaler         = (*Grade)(nil)
)

// Grades lists the recognized grades from worst to best recall.
func Grades() []Grade {
	return []Grade{Again, Hard, Good, Easy}
}

// IsValid reports whether g is one of the recognized grades.
func (g Grade) IsValid() bool {
	switch g {
	case Again, Hard, Good, Easy:
		return true
	}
	return false
}

// Normalize returns g when it is recognized and Again otherwise.
// Unknown grades never fail a review; they are scheduled like a lapse.
func (g Grade) Normalize() Grade {
	if g.IsValid() {
		return g
	}
	return Again
}

func (g Grade) String() string {
	return string(g)
}

// ParseGrade reads a grade case-insensitively. The boolean is false when the
// input was not recognized, in which case the returned grade is Again.
func ParseGrade(s string) (Grade, bool) {
	g := Grade(strings.ToLower(strings.TrimSpace(s)))
	if !g.IsValid() {
		return Again, false
	}
	return g, true
}

func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g), nil
}

// UnmarshalText keeps whatever the client sent after case folding, so that
// the scheduler can apply its fallback instead of the decoder rejecting it.
func (g *Grade) UnmarshalText(text []byte) error {
	*g = Grade(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

// UnmarshalJSON accepts any JSON value. Strings are folded like UnmarshalText;
// numbers, booleans and objects are kept verbatim as an unrecognized grade, and
// null leaves the grade empty. Either way Normalize turns them into Again.
func (g *Grade) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return g.UnmarshalText([]byte(s))
	}
	*g = Grade(data)
	return nil
}
