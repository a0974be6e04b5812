package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"simpasar/internal/models"
	"simpasar/internal/services/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(vendors *fakeVendorDirectory, markets *fakeMarketDirectory, dues *fakeDueStore, invoices *fakeInvoiceStore) *Service {
	if markets == nil {
		markets = &fakeMarketDirectory{dueDays: map[string]string{}}
	}
	return NewService(
		vendors,
		markets,
		dues,
		invoices,
		sequence.NewService(newMemSequenceStore()),
		Config{EpochYear: 2025, Location: time.UTC},
	)
}

var testNow = time.Date(2025, 8, 29, 10, 30, 0, 0, time.UTC)

func TestGenerateDailyDues(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		activeVendor("CUST00001", activeStall("PSR0001", 5000, 0, 0)),
		activeVendor("CUST00002",
			activeStall("PSR0001", 3000, 0, 0),
			activeStall("PSR0001", 4000, 0, 0),
		),
	}}
	dues := newFakeDueStore()
	svc := newTestService(vendors, nil, dues, &fakeInvoiceStore{})

	report, err := svc.GenerateDailyDues(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 0, report.Failed)

	first := dues.forVendor("CUST00001")
	require.Len(t, first, 1)
	assert.Equal(t, "IU2025082900001", first[0].DueCode)
	assert.Equal(t, int64(5000), first[0].Amount)
	assert.Equal(t, models.ChargeStatusPending, first[0].Status)

	// Multi-stall vendors are charged the sum of their stall tariffs.
	second := dues.forVendor("CUST00002")
	require.Len(t, second, 1)
	assert.Equal(t, "IU2025082900002", second[0].DueCode)
	assert.Equal(t, int64(7000), second[0].Amount)
}

func TestGenerateDailyDuesIdempotent(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		activeVendor("CUST00001", activeStall("PSR0001", 5000, 0, 0)),
	}}
	dues := newFakeDueStore()
	svc := newTestService(vendors, nil, dues, &fakeInvoiceStore{})

	_, err := svc.GenerateDailyDues(context.Background(), testNow)
	require.NoError(t, err)

	// Same day again, later in the afternoon: nothing new.
	report, err := svc.GenerateDailyDues(context.Background(), testNow.Add(6*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Created)
	assert.Equal(t, 1, report.Skipped)
	assert.Len(t, dues.forVendor("CUST00001"), 1)

	// The next day is a new period.
	report, err = svc.GenerateDailyDues(context.Background(), testNow.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Len(t, dues.forVendor("CUST00001"), 2)
}

func TestGenerateDailyDuesSkipsUnbillableVendors(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		// No stalls at all.
		activeVendor("CUST00001"),
		// Stalls without a configured daily tariff.
		activeVendor("CUST00002", activeStall("PSR0001", 0, 100000, 0)),
		// Only an inactive stall carries a tariff.
		activeVendor("CUST00003", models.Stall{
			MarketCode:     "PSR0001",
			Status:         models.StallStatusInactive,
			DailyDueAmount: 5000,
		}),
		// Billable.
		activeVendor("CUST00004", activeStall("PSR0001", 2500, 0, 0)),
	}}
	dues := newFakeDueStore()
	svc := newTestService(vendors, nil, dues, &fakeInvoiceStore{})

	report, err := svc.GenerateDailyDues(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 3, report.Skipped)
	assert.Equal(t, 0, report.Failed, "missing configuration is a skip, not a failure")
	assert.Len(t, dues.forVendor("CUST00004"), 1)
}

func TestGenerateDailyDuesIsolatesVendorFailures(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		activeVendor("CUST00001", activeStall("PSR0001", 5000, 0, 0)),
		activeVendor("CUST00002", activeStall("PSR0001", 3000, 0, 0)),
		activeVendor("CUST00003", activeStall("PSR0001", 4000, 0, 0)),
	}}
	dues := newFakeDueStore()
	dues.createErr["CUST00002"] = errors.New("insert failed")
	svc := newTestService(vendors, nil, dues, &fakeInvoiceStore{})

	report, err := svc.GenerateDailyDues(context.Background(), testNow)
	require.NoError(t, err, "one vendor's failure must not abort the run")

	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "CUST00002", report.Failures[0].VendorCode)

	assert.Len(t, dues.forVendor("CUST00001"), 1)
	assert.Empty(t, dues.forVendor("CUST00002"))
	assert.Len(t, dues.forVendor("CUST00003"), 1)
}

func TestGenerateDailyDuesAbortsWhenListingFails(t *testing.T) {
	vendors := &fakeVendorDirectory{err: errors.New("connection refused")}
	svc := newTestService(vendors, nil, newFakeDueStore(), &fakeInvoiceStore{})

	_, err := svc.GenerateDailyDues(context.Background(), testNow)
	assert.Error(t, err)
}

func TestGenerateDailyDuesCollisionSurfacesAfterRetries(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		activeVendor("CUST00001", activeStall("PSR0001", 5000, 0, 0)),
	}}
	dues := newFakeDueStore()
	dues.createErr["CUST00001"] = sequence.ErrCodeCollision
	svc := newTestService(vendors, nil, dues, &fakeInvoiceStore{})

	report, err := svc.GenerateDailyDues(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0].Reason, "retries exhausted")
}
