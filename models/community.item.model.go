package models

import "time"

const (
	CommunityItemExchange = "exchange"
	CommunityItemRequest  = "request"
)

// CommunityItem is a vendor's barter offer or request on the community board.
type CommunityItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	VendorID uint    `gorm:"index" json:"vendor_id"`
	ItemName string  `gorm:"size:255;not null" json:"item_name"`
	Quantity float64 `json:"quantity"`
	Type     string  `gorm:"size:10" json:"type"` // exchange, request

	CreatedAt time.Time `json:"created_at"`
}
