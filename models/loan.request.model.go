package models

import "time"

const (
	RepaymentStatusPending   = "pending"
	RepaymentStatusPaid      = "paid"
	RepaymentStatusDefaulted = "defaulted"
)

// LoanRequest is a vendor's funding request. InvestorID stays nil until the
// first investor funds it; "paid" and "defaulted" are declared but no
// endpoint sets them yet.
type LoanRequest struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	VendorID uint    `gorm:"index" json:"vendor_id"`
	Amount   float64 `json:"amount"`

	RepaymentStatus string `gorm:"size:20;default:'pending'" json:"repayment_status"`
	InvestorID      *uint  `gorm:"index" json:"investor_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
