package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ChargeStatusPending = "pending"
	ChargeStatusPaid    = "paid"
)

// Due is a daily charge (iuran) generated by the billing scheduler, one
// per vendor per day. Its code carries the day it was generated for
// (IU + YYYYMMDD + sequence), and ChargedAt is the idempotency anchor:
// the daily job never creates a second due for the same vendor, amount
// and day.
//
// Status moves past "pending" in the payment-confirmation workflow, which
// lives outside this service. Dues are never deleted here.
type Due struct {
	gorm.Model
	DueCode    string    `gorm:"uniqueIndex;not null"`
	VendorCode string    `gorm:"index;not null"`
	Amount     int64     `gorm:"not null"`
	Status     string    `gorm:"not null;default:'pending'"`
	ChargedAt  time.Time `gorm:"index;not null"`
}
