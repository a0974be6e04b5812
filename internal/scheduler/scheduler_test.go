package scheduler

import (
	"context"
	"testing"
	"time"

	"simpasar/internal/models"
	"simpasar/internal/services/billing"
	"simpasar/internal/services/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopVendors struct{}

func (noopVendors) ListActiveWithStalls(context.Context) ([]models.Vendor, error) { return nil, nil }

type noopMarkets struct{}

func (noopMarkets) DueDay(context.Context, string) (string, error) { return "", nil }

type noopDues struct{}

func (noopDues) ExistsInWindow(context.Context, string, int64, time.Time, time.Time) (bool, error) {
	return false, nil
}
func (noopDues) Create(context.Context, *models.Due) error { return nil }

type noopInvoices struct{}

func (noopInvoices) ListInvoicedVendors(context.Context, string, int) ([]string, error) {
	return nil, nil
}
func (noopInvoices) CreateBatch(context.Context, []*models.Invoice) error { return nil }

type noopSequenceStore struct{}

func (noopSequenceStore) NextValue(context.Context, string) (int64, error) { return 1, nil }

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	svc := billing.NewService(
		noopVendors{},
		noopMarkets{},
		noopDues{},
		noopInvoices{},
		sequence.NewService(noopSequenceStore{}),
		billing.Config{EpochYear: 2025, Location: time.UTC},
	)
	return New(svc, time.UTC)
}

func TestStartRejectsInvalidSpecs(t *testing.T) {
	s := newTestScheduler(t)
	assert.Error(t, s.Start("not a cron spec", "0 2 1 1 *"))

	s = newTestScheduler(t)
	assert.Error(t, s.Start("0 1 * * *", "also broken"))
}

func TestStartAndStop(t *testing.T) {
	s := newTestScheduler(t)
	require.NoError(t, s.Start("0 1 * * *", "0 2 1 1 *"))
	s.Stop()
}
