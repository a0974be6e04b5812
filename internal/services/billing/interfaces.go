package billing

import (
	"context"
	"time"

	"simpasar/internal/models"
	"simpasar/internal/services/sequence"
)

// VendorDirectory lists the vendors a billing run considers, with their
// stalls preloaded.
type VendorDirectory interface {
	ListActiveWithStalls(ctx context.Context) ([]models.Vendor, error)
}

// MarketDirectory resolves per-market billing configuration.
type MarketDirectory interface {
	// DueDay returns the market's configured annual due day as "MM-DD",
	// empty when the market has none.
	DueDay(ctx context.Context, marketCode string) (string, error)
}

// DueStore persists daily dues.
type DueStore interface {
	// ExistsInWindow reports whether the vendor already has a due with
	// this amount charged inside [from, to).
	ExistsInWindow(ctx context.Context, vendorCode string, amount int64, from, to time.Time) (bool, error)
	Create(ctx context.Context, due *models.Due) error
}

// InvoiceStore persists annual invoices.
type InvoiceStore interface {
	// ListInvoicedVendors returns the codes of vendors that already hold
	// an invoice of chargeType for year.
	ListInvoicedVendors(ctx context.Context, chargeType string, year int) ([]string, error)
	CreateBatch(ctx context.Context, invoices []*models.Invoice) error
}

// Minter is the slice of the sequencer the billing jobs use.
type Minter interface {
	Next(ctx context.Context, p sequence.Prefix) (string, error)
	Mint(ctx context.Context, p sequence.Prefix, create func(code string) error) (string, error)
}
