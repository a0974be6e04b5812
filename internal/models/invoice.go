package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice is an annual charge generated by the billing scheduler. The
// charge type rotates on the three-year billing cycle; (VendorCode,
// ChargeType, Year) is the idempotency anchor for the annual job.
type Invoice struct {
	gorm.Model
	InvoiceCode string    `gorm:"uniqueIndex;not null"`
	VendorCode  string    `gorm:"index;not null"`
	MarketCode  string    `gorm:"index"`
	ChargeType  string    `gorm:"not null"`
	Year        int       `gorm:"index;not null"`
	Amount      int64     `gorm:"not null"`
	Status      string    `gorm:"not null;default:'pending'"`
	DueDate     time.Time `gorm:"not null"`
	IssuedAt    time.Time `gorm:"not null"`
}
