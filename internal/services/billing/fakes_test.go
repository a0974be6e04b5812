package billing

import (
	"context"
	"sync"
	"time"

	"simpasar/internal/models"
)

// In-memory collaborators standing in for the repository layer.

type fakeVendorDirectory struct {
	vendors []models.Vendor
	err     error
}

func (f *fakeVendorDirectory) ListActiveWithStalls(context.Context) ([]models.Vendor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vendors, nil
}

type fakeMarketDirectory struct {
	dueDays map[string]string
	err     error
}

func (f *fakeMarketDirectory) DueDay(_ context.Context, marketCode string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.dueDays[marketCode], nil
}

type fakeDueStore struct {
	mu        sync.Mutex
	dues      []*models.Due
	createErr map[string]error
}

func newFakeDueStore() *fakeDueStore {
	return &fakeDueStore{createErr: make(map[string]error)}
}

func (f *fakeDueStore) ExistsInWindow(_ context.Context, vendorCode string, amount int64, from, to time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.dues {
		if d.VendorCode == vendorCode && d.Amount == amount &&
			!d.ChargedAt.Before(from) && d.ChargedAt.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDueStore) Create(_ context.Context, due *models.Due) error {
	if err := f.createErr[due.VendorCode]; err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dues = append(f.dues, due)
	return nil
}

func (f *fakeDueStore) forVendor(vendorCode string) []*models.Due {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Due
	for _, d := range f.dues {
		if d.VendorCode == vendorCode {
			out = append(out, d)
		}
	}
	return out
}

type fakeInvoiceStore struct {
	mu       sync.Mutex
	invoices []*models.Invoice
	batchErr error
}

func (f *fakeInvoiceStore) ListInvoicedVendors(_ context.Context, chargeType string, year int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var codes []string
	for _, inv := range f.invoices {
		if inv.ChargeType == chargeType && inv.Year == year {
			codes = append(codes, inv.VendorCode)
		}
	}
	return codes, nil
}

func (f *fakeInvoiceStore) CreateBatch(_ context.Context, invoices []*models.Invoice) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invoices = append(f.invoices, invoices...)
	return nil
}

// memSequenceStore backs a real sequence.Service in the job tests.
type memSequenceStore struct {
	mu     sync.Mutex
	values map[string]int64
}

func newMemSequenceStore() *memSequenceStore {
	return &memSequenceStore{values: make(map[string]int64)}
}

func (s *memSequenceStore) NextValue(_ context.Context, prefix string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[prefix]++
	return s.values[prefix], nil
}

func activeVendor(code string, stalls ...models.Stall) models.Vendor {
	return models.Vendor{
		VendorCode: code,
		Name:       "Vendor " + code,
		Status:     models.VendorStatusActive,
		Stalls:     stalls,
	}
}

func activeStall(marketCode string, daily, heregistrasi, siptu int64) models.Stall {
	return models.Stall{
		MarketCode:         marketCode,
		Status:             models.StallStatusActive,
		DailyDueAmount:     daily,
		HeregistrasiAmount: heregistrasi,
		SIPTUAmount:        siptu,
	}
}
