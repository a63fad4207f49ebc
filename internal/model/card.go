// internal/model/card.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VocabCard is a term to memorize. Cards are written by content seeding only.
type VocabCard struct {
	CardID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Seq       int64     `gorm:"not null;uniqueIndex" json:"-"` // content-seed insertion order
	Term      string    `gorm:"not null;uniqueIndex" json:"term"`
	Meaning   string    `gorm:"not null" json:"meaning"`
	Example   string    `gorm:"not null;default:''" json:"example"`
	CEFRLevel Level     `gorm:"type:varchar(2);not null;index" json:"level"`
	CreatedAt time.Time `json:"-"`
}

func (VocabCard) TableName() string {
	return "vocab_cards"
}

// CardResponse is the summary returned by the due-card query.
type CardResponse struct {
	ID      uuid.UUID `json:"id"`
	Term    string    `json:"term"`
	Meaning string    `json:"meaning"`
	Example string    `json:"example"`
	Level   Level     `json:"level"`
}

func NewCardResponse(c *VocabCard) *CardResponse {
	return &CardResponse{
		ID:      c.CardID,
		Term:    c.Term,
		Meaning: c.Meaning,
		Example: c.Example,
		Level:   c.CEFRLevel,
	}
}
