package models

import (
	"gorm.io/gorm"
)

const (
	StallStatusActive   = "active"
	StallStatusInactive = "inactive"
)

// StallType categorizes stalls (kios, los, pelataran). Type codes are
// minted with the TYPE prefix.
type StallType struct {
	gorm.Model
	TypeCode string `gorm:"uniqueIndex;not null"`
	Name     string `gorm:"not null"`
}

// Stall is a rentable unit (lapak) inside a market. Its code is scoped to
// the market: market code + LAP + sequence.
//
// All amounts are in the smallest currency unit (whole rupiah), no
// decimals anywhere in billing.
type Stall struct {
	gorm.Model
	StallCode  string `gorm:"uniqueIndex;not null"`
	VendorID   uint   `gorm:"index"`
	MarketCode string `gorm:"index;not null"`
	TypeCode   string
	Status     string `gorm:"not null;default:'active'"`

	// DailyDueAmount is the per-day due (iuran) tariff for this stall.
	// Zero means no daily due is configured.
	DailyDueAmount int64 `gorm:"not null;default:0"`

	// HeregistrasiAmount and SIPTUAmount are the annual-invoice nominals;
	// which one applies in a given year is decided by the billing cycle.
	HeregistrasiAmount int64 `gorm:"not null;default:0"`
	SIPTUAmount        int64 `gorm:"not null;default:0"`
}
