package models

import (
	"time"

	"gorm.io/gorm"
)

// Marketplace roles. A user has no role until they complete their profile.
const (
	RoleAdmin      = "admin"
	RoleVendor     = "vendor"
	RoleWholesaler = "wholesaler"
	RoleInvestor   = "investor"
)

// ValidRole reports whether r is one of the known marketplace roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleWholesaler, RoleInvestor:
		return true
	}
	return false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100" json:"name"`
	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Empty until the user picks vendor/wholesaler/investor on first login.
	Role string `gorm:"size:20;index" json:"role"`

	// Reputation shown to investors. Defaults to 100 on profile completion.
	TrustScore *float64 `json:"trust_score,omitempty"`

	// Optional geolocation for the map view.
	Latitude  *float64 `gorm:"index:idx_user_location" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"index:idx_user_location" json:"longitude,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
