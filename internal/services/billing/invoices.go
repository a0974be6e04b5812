package billing

import (
	"context"
	"fmt"
	"log"
	"time"

	"simpasar/internal/models"
	"simpasar/internal/services/sequence"
)

// invoiceFallbackDays is the due-date fallback when a market has no
// configured due day or its "MM-DD" string does not parse.
const invoiceFallbackDays = 30

// GenerateAnnualInvoices creates this year's invoice for every active
// vendor that is not yet invoiced with the resolved charge type. The
// invoice nominal is the resolved cycle field summed across the vendor's
// active stalls; a zero sum means the vendor owes nothing this cycle and
// gets no invoice. All invoices of the run are inserted in one batch.
func (s *Service) GenerateAnnualInvoices(ctx context.Context, now time.Time) (*RunReport, error) {
	report := newRunReport("annual-invoices", now)
	local := now.In(s.cfg.Location)
	cycle := ResolveCycle(local.Year(), s.cfg.EpochYear)
	prefix := sequence.ForAnnualInvoice(local)

	invoiced, err := s.invoices.ListInvoicedVendors(ctx, string(cycle.ChargeType), cycle.Year)
	if err != nil {
		return nil, fmt.Errorf("list invoiced vendors: %w", err)
	}
	alreadyInvoiced := make(map[string]struct{}, len(invoiced))
	for _, code := range invoiced {
		alreadyInvoiced[code] = struct{}{}
	}

	vendors, err := s.vendors.ListActiveWithStalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active vendors: %w", err)
	}

	dueDays := make(map[string]time.Time)
	var batch []*models.Invoice
	for i := range vendors {
		vendor := &vendors[i]
		if _, ok := alreadyInvoiced[vendor.VendorCode]; ok {
			report.Skipped++
			continue
		}

		stalls := vendor.ActiveStalls()
		var total int64
		marketCode := ""
		for _, st := range stalls {
			total += cycle.Nominal(st)
			if marketCode == "" {
				marketCode = st.MarketCode
			}
		}
		if total <= 0 {
			report.Skipped++
			continue
		}

		dueDate, ok := dueDays[marketCode]
		if !ok {
			dueDate = s.resolveDueDate(ctx, marketCode, local)
			dueDays[marketCode] = dueDate
		}

		code, err := s.sequencer.Next(ctx, prefix)
		if err != nil {
			log.Printf("[BILLING] invoice code mint failed for vendor %s: %v", vendor.VendorCode, err)
			report.fail(vendor.VendorCode, err)
			continue
		}

		batch = append(batch, &models.Invoice{
			InvoiceCode: code,
			VendorCode:  vendor.VendorCode,
			MarketCode:  marketCode,
			ChargeType:  string(cycle.ChargeType),
			Year:        cycle.Year,
			Amount:      total,
			Status:      models.ChargeStatusPending,
			DueDate:     dueDate,
			IssuedAt:    local,
		})
	}

	if len(batch) > 0 {
		if err := s.invoices.CreateBatch(ctx, batch); err != nil {
			return nil, fmt.Errorf("create invoice batch: %w", err)
		}
		report.Created = len(batch)
	}

	report.FinishedAt = time.Now()
	return report, nil
}

// resolveDueDate combines the market's "MM-DD" due day with the current
// year. Missing market, missing setting or a malformed string all fall
// back to 30 days from generation.
func (s *Service) resolveDueDate(ctx context.Context, marketCode string, now time.Time) time.Time {
	fallback := now.AddDate(0, 0, invoiceFallbackDays)
	if marketCode == "" {
		return fallback
	}

	dueDay, err := s.markets.DueDay(ctx, marketCode)
	if err != nil {
		log.Printf("[BILLING] due day lookup failed for market %s, using fallback: %v", marketCode, err)
		return fallback
	}
	if dueDay == "" {
		return fallback
	}

	parsed, err := time.Parse("01-02", dueDay)
	if err != nil {
		log.Printf("[BILLING] market %s has malformed due day %q, using fallback", marketCode, dueDay)
		return fallback
	}
	return time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.cfg.Location)
}
