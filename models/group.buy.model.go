package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	GroupBuyStatusOpen      = "open"
	GroupBuyStatusClosed    = "closed"
	GroupBuyStatusCompleted = "completed"
)

// GroupBuy pools vendor demand for a product toward a shared target
// quantity at a fixed price. It closes when the target is reached.
type GroupBuy struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProductID uint `gorm:"index" json:"product_id"`

	TargetQuantity  float64 `json:"target_quantity"`
	CurrentQuantity float64 `json:"current_quantity"`
	PricePerUnit    float64 `json:"price_per_unit"`

	// User ids of everyone who committed quantity, stored as a JSON array.
	// A user appears at most once.
	Participants datatypes.JSONSlice[uint] `json:"participants"`

	Status    string `gorm:"size:20;default:'open'" json:"status"` // open, closed, completed
	CreatedBy uint   `gorm:"index" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasParticipant reports whether userID already joined this group buy.
func (g *GroupBuy) HasParticipant(userID uint) bool {
	for _, id := range g.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
