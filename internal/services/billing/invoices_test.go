package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"simpasar/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAnnualInvoices(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		activeVendor("CUST00001",
			activeStall("PSR0001", 0, 150000, 250000),
			activeStall("PSR0001", 0, 100000, 50000),
		),
		activeVendor("CUST00002", activeStall("PSR0002", 0, 80000, 0)),
	}}
	markets := &fakeMarketDirectory{dueDays: map[string]string{
		"PSR0001": "09-30",
	}}
	invoices := &fakeInvoiceStore{}
	svc := newTestService(vendors, markets, newFakeDueStore(), invoices)

	// 2025 with epoch 2025 is a heregistrasi year.
	report, err := svc.GenerateAnnualInvoices(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Created)
	require.Len(t, invoices.invoices, 2)

	first := invoices.invoices[0]
	assert.Equal(t, "INV2508290001", first.InvoiceCode)
	assert.Equal(t, "CUST00001", first.VendorCode)
	assert.Equal(t, string(ChargeHeregistrasi), first.ChargeType)
	assert.Equal(t, 2025, first.Year)
	// Nominal is the heregistrasi field summed across both stalls.
	assert.Equal(t, int64(250000), first.Amount)
	assert.Equal(t, models.ChargeStatusPending, first.Status)
	// Configured "09-30" due day combined with the current year.
	assert.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), first.DueDate)

	// PSR0002 has no configured due day: 30 days from generation.
	second := invoices.invoices[1]
	assert.Equal(t, "INV2508290002", second.InvoiceCode)
	assert.Equal(t, testNow.AddDate(0, 0, 30), second.DueDate)
}

func TestGenerateAnnualInvoicesSIPTUYear(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		activeVendor("CUST00001", activeStall("PSR0001", 0, 150000, 250000)),
	}}
	invoices := &fakeInvoiceStore{}
	svc := newTestService(vendors, nil, newFakeDueStore(), invoices)

	// 2027 with epoch 2025 rotates to SIPTU.
	now := time.Date(2027, 8, 29, 10, 0, 0, 0, time.UTC)
	report, err := svc.GenerateAnnualInvoices(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	require.Len(t, invoices.invoices, 1)
	assert.Equal(t, string(ChargeSIPTU), invoices.invoices[0].ChargeType)
	assert.Equal(t, int64(250000), invoices.invoices[0].Amount)
}

func TestGenerateAnnualInvoicesExcludesAlreadyInvoiced(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		activeVendor("CUST00001", activeStall("PSR0001", 0, 150000, 0)),
		activeVendor("CUST00002", activeStall("PSR0001", 0, 80000, 0)),
	}}
	invoices := &fakeInvoiceStore{}
	svc := newTestService(vendors, nil, newFakeDueStore(), invoices)

	report, err := svc.GenerateAnnualInvoices(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)

	// An immediate re-run finds both vendors invoiced and creates nothing.
	report, err = svc.GenerateAnnualInvoices(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Created)
	assert.Equal(t, 2, report.Skipped)
	assert.Len(t, invoices.invoices, 2)

	// A different charge type's invoice does not exclude the vendor:
	// the next heregistrasi year bills both again.
	nextCycle := time.Date(2028, 8, 29, 10, 0, 0, 0, time.UTC)
	report, err = svc.GenerateAnnualInvoices(context.Background(), nextCycle)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
}

func TestGenerateAnnualInvoicesSkipsZeroNominal(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		// Heregistrasi year, but this vendor only carries SIPTU nominals.
		activeVendor("CUST00001", activeStall("PSR0001", 0, 0, 250000)),
		activeVendor("CUST00002", activeStall("PSR0001", 0, 80000, 0)),
	}}
	invoices := &fakeInvoiceStore{}
	svc := newTestService(vendors, nil, newFakeDueStore(), invoices)

	report, err := svc.GenerateAnnualInvoices(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, invoices.invoices, 1)
	assert.Equal(t, "CUST00002", invoices.invoices[0].VendorCode)
}

func TestGenerateAnnualInvoicesMalformedDueDayFallsBack(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		activeVendor("CUST00001", activeStall("PSR0001", 0, 150000, 0)),
	}}
	markets := &fakeMarketDirectory{dueDays: map[string]string{
		"PSR0001": "Sept 30",
	}}
	invoices := &fakeInvoiceStore{}
	svc := newTestService(vendors, markets, newFakeDueStore(), invoices)

	_, err := svc.GenerateAnnualInvoices(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, invoices.invoices, 1)
	assert.Equal(t, testNow.AddDate(0, 0, 30), invoices.invoices[0].DueDate)
}

func TestGenerateAnnualInvoicesBatchFailureAbortsRun(t *testing.T) {
	vendors := &fakeVendorDirectory{vendors: []models.Vendor{
		activeVendor("CUST00001", activeStall("PSR0001", 0, 150000, 0)),
	}}
	invoices := &fakeInvoiceStore{batchErr: errors.New("deadlock detected")}
	svc := newTestService(vendors, nil, newFakeDueStore(), invoices)

	_, err := svc.GenerateAnnualInvoices(context.Background(), testNow)
	assert.Error(t, err)
	assert.Empty(t, invoices.invoices)
}
