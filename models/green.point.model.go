package models

import "time"

// GreenPoint is one reward ledger row. Balances are never stored; totals are
// computed by summing a user's rows at read time.
type GreenPoint struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index" json:"user_id"`
	Points     int    `json:"points"`
	EarnedFrom string `gorm:"size:50" json:"earned_from"` // "waste_exchange", "successful_pickup", ...
	ListingID  *uint  `json:"listing_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
