package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order records a vendor's purchase of a product, solo or via a group buy.
type Order struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	VendorID   uint    `gorm:"index" json:"vendor_id"`
	ProductID  uint    `gorm:"index" json:"product_id"`
	Quantity   float64 `json:"quantity"`
	IsGroupBuy bool    `json:"is_group_buy"`
	Status     string  `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
