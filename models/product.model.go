package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UnitKg     = "kg"
	UnitPieces = "pieces"
	UnitLiters = "liters"
	UnitGrams  = "grams"
)

// ValidUnit reports whether u is a sellable measurement unit.
func ValidUnit(u string) bool {
	switch u {
	case UnitKg, UnitPieces, UnitLiters, UnitGrams:
		return true
	}
	return false
}

// Product is a wholesaler's bulk sell listing.
type Product struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	OwnerID uint   `gorm:"index" json:"owner_id"`

	BulkPrice float64  `gorm:"not null" json:"bulk_price"`
	Discount  *float64 `json:"discount,omitempty"` // percent, optional
	Stock     float64  `json:"stock"`
	Unit      string   `gorm:"size:10" json:"unit"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
