package models

import "time"

const (
	NotificationNewListing     = "new_listing"
	NotificationInterest       = "interest"
	NotificationPickupReminder = "pickup_reminder"
)

// WasteNotification is a fan-out record addressed to a single recipient.
type WasteNotification struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RecipientID uint   `gorm:"index" json:"recipient_id"`
	SenderID    uint   `json:"sender_id"`
	ListingID   uint   `json:"listing_id"`
	Type        string `gorm:"size:20" json:"type"`
	Message     string `gorm:"type:text" json:"message"`
	Read        bool   `gorm:"index;default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
