package billing

import (
	"time"
)

// Config carries the billing parameters that come from the environment.
type Config struct {
	// EpochYear anchors the three-year invoice cycle.
	EpochYear int
	// Location is the operating region's timezone; day windows and due
	// dates are computed in it.
	Location *time.Location
}

// Service runs the recurring charge jobs. Both jobs are idempotent per
// billing period: re-running one for the same day or year only fills in
// subjects that are still missing a charge.
type Service struct {
	vendors   VendorDirectory
	markets   MarketDirectory
	dues      DueStore
	invoices  InvoiceStore
	sequencer Minter
	cfg       Config
}

// NewService creates a new billing service
func NewService(
	vendors VendorDirectory,
	markets MarketDirectory,
	dues DueStore,
	invoices InvoiceStore,
	sequencer Minter,
	cfg Config,
) *Service {
	if vendors == nil {
		panic("vendor directory is required")
	}
	if markets == nil {
		panic("market directory is required")
	}
	if dues == nil {
		panic("due store is required")
	}
	if invoices == nil {
		panic("invoice store is required")
	}
	if sequencer == nil {
		panic("sequencer is required")
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.EpochYear == 0 {
		cfg.EpochYear = 2025
	}

	return &Service{
		vendors:   vendors,
		markets:   markets,
		dues:      dues,
		invoices:  invoices,
		sequencer: sequencer,
		cfg:       cfg,
	}
}

// dayWindow returns the [00:00, 24:00) window of now's calendar day in
// the configured timezone.
func (s *Service) dayWindow(now time.Time) (time.Time, time.Time) {
	local := now.In(s.cfg.Location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.cfg.Location)
	return start, start.AddDate(0, 0, 1)
}
