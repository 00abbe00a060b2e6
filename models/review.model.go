package models

import "time"

// Review is a vendor's rating of a supplier.
type Review struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	VendorID   uint    `gorm:"index" json:"vendor_id"`
	SupplierID uint    `gorm:"index" json:"supplier_id"`
	Rating     int     `json:"rating"` // 1-5
	Comment    *string `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
