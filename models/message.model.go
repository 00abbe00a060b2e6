package models

import "time"

// Message is a direct user-to-user text. A conversation is reconstructed at
// read time by merging the two directional lookups on (from, to).
type Message struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	FromID uint `gorm:"index:idx_from_to" json:"from_id"`
	ToID   uint `gorm:"index:idx_from_to" json:"to_id"`

	Content  string `gorm:"type:text;not null" json:"content"`
	Language string `gorm:"size:5;default:'en'" json:"language"` // en, hi, mr

	CreatedAt time.Time `json:"created_at"`
}
