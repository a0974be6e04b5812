package repositories

import (
	"context"
	"errors"
	"fmt"

	"simpasar/internal/models"
	"simpasar/internal/services/sequence"

	"gorm.io/gorm"
)

// InvoiceRepository persists annual invoices.
type InvoiceRepository interface {
	ListInvoicedVendors(ctx context.Context, chargeType string, year int) ([]string, error)
	CreateBatch(ctx context.Context, invoices []*models.Invoice) error
	ListByVendor(ctx context.Context, vendorCode string, limit int) ([]models.Invoice, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) ListInvoicedVendors(ctx context.Context, chargeType string, year int) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Distinct("vendor_code").
		Where("charge_type = ? AND year = ?", chargeType, year).
		Pluck("vendor_code", &codes).Error
	return codes, err
}

// CreateBatch inserts a whole run's invoices in one statement. A unique
// violation surfaces as the sequencer's collision error; with the counter
// table in place that only happens against legacy records.
func (r *invoiceRepository) CreateBatch(ctx context.Context, invoices []*models.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&invoices).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: invoice batch insert", sequence.ErrCodeCollision)
		}
		return err
	}
	return nil
}

func (r *invoiceRepository) ListByVendor(ctx context.Context, vendorCode string, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where("vendor_code = ?", vendorCode).
		Order("issued_at DESC").
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}
