package models

import "time"

const (
	ListingStatusAvailable = "available"
	ListingStatusReserved  = "reserved"
	ListingStatusCompleted = "completed"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// WasteListing is a zero-waste swap board entry. Urgency is derived once at
// creation from time-to-expiry and never recomputed.
type WasteListing struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	VendorID uint    `gorm:"index" json:"vendor_id"`
	ItemName string  `gorm:"size:255;not null" json:"item_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `gorm:"size:10" json:"unit"`

	ExpiryDate *time.Time `json:"expiry_date,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   *string  `gorm:"size:255" json:"address,omitempty"`

	DesiredSwap string  `gorm:"size:255" json:"desired_swap"` // "barter", "cash" or a specific item
	Status      string  `gorm:"size:20;index;default:'available'" json:"status"`
	Urgency     string  `gorm:"size:10;index" json:"urgency"`
	Category    *string `gorm:"size:50" json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UrgencyForExpiry maps hours-to-expiry to an urgency tag: 6 hours or less is
// high, 24 or less is medium, anything else (including no expiry) is low.
func UrgencyForExpiry(expiry *time.Time, now time.Time) string {
	if expiry == nil {
		return UrgencyLow
	}
	hours := expiry.Sub(now).Hours()
	switch {
	case hours <= 6:
		return UrgencyHigh
	case hours <= 24:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
