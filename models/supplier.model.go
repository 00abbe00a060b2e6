package models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier is a wholesaler-owned warehouse/depot shown on the map.
type Supplier struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DeliveryRadius float64 `json:"delivery_radius"` // km

	OwnerID uint `gorm:"index" json:"owner_id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
