package models

import (
	"gorm.io/gorm"
)

const (
	MarketStatusActive   = "active"
	MarketStatusInactive = "inactive"
)

// Market is a managed marketplace. Its code is minted with the PSR prefix
// and is the scope for stall codes and market-admin user codes.
type Market struct {
	gorm.Model
	MarketCode string `gorm:"uniqueIndex;not null"`
	Name       string `gorm:"not null"`
	Address    string
	Status     string `gorm:"not null;default:'active'"`

	// StaticQRPayload is the merchant's stored static QRIS string,
	// including its CRC trailer. Empty when the market has not been
	// onboarded for QRIS payments.
	StaticQRPayload string `gorm:"type:text"`

	// InvoiceDueDay is the configured annual-invoice due day as "MM-DD",
	// empty when the market has none.
	InvoiceDueDay string
}

// MarketSnapshot is the read-only view consumed by the payment and billing
// paths. It is what gets cached, not the full row.
type MarketSnapshot struct {
	MarketCode      string `json:"market_code"`
	StaticQRPayload string `json:"static_qr_payload"`
	InvoiceDueDay   string `json:"invoice_due_day"`
}

func (m *Market) Snapshot() *MarketSnapshot {
	return &MarketSnapshot{
		MarketCode:      m.MarketCode,
		StaticQRPayload: m.StaticQRPayload,
		InvoiceDueDay:   m.InvoiceDueDay,
	}
}
