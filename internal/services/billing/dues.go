package billing

import (
	"context"
	"fmt"
	"log"
	"time"

	"simpasar/internal/models"
	"simpasar/internal/services/sequence"
)

// GenerateDailyDues creates today's due (iuran) for every active vendor
// that has at least one active stall with a configured daily tariff and
// no due for this day yet. Vendors are independent units of work: one
// vendor's failure is reported and skipped, never aborting the batch.
// Only a failure to list vendors at all aborts the run.
func (s *Service) GenerateDailyDues(ctx context.Context, now time.Time) (*RunReport, error) {
	report := newRunReport("daily-dues", now)
	dayStart, dayEnd := s.dayWindow(now)
	prefix := sequence.ForDailyDue(dayStart)

	vendors, err := s.vendors.ListActiveWithStalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active vendors: %w", err)
	}

	for i := range vendors {
		vendor := &vendors[i]
		stalls := vendor.ActiveStalls()
		if len(stalls) == 0 {
			report.Skipped++
			continue
		}

		amount := dailyDueAmount(stalls)
		if amount <= 0 {
			log.Printf("[BILLING] vendor %s has no configured daily due amount, skipping", vendor.VendorCode)
			report.Skipped++
			continue
		}

		exists, err := s.dues.ExistsInWindow(ctx, vendor.VendorCode, amount, dayStart, dayEnd)
		if err != nil {
			log.Printf("[BILLING] due lookup failed for vendor %s: %v", vendor.VendorCode, err)
			report.fail(vendor.VendorCode, err)
			continue
		}
		if exists {
			report.Skipped++
			continue
		}

		_, err = s.sequencer.Mint(ctx, prefix, func(code string) error {
			return s.dues.Create(ctx, &models.Due{
				DueCode:    code,
				VendorCode: vendor.VendorCode,
				Amount:     amount,
				Status:     models.ChargeStatusPending,
				ChargedAt:  now.In(s.cfg.Location),
			})
		})
		if err != nil {
			log.Printf("[BILLING] due creation failed for vendor %s: %v", vendor.VendorCode, err)
			report.fail(vendor.VendorCode, err)
			continue
		}
		report.Created++
	}

	report.FinishedAt = time.Now()
	return report, nil
}

// dailyDueAmount sums the daily tariff across the vendor's active stalls.
func dailyDueAmount(stalls []models.Stall) int64 {
	var total int64
	for _, st := range stalls {
		total += st.DailyDueAmount
	}
	return total
}
