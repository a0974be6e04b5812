package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"simpasar/internal/models"
	"simpasar/internal/services/sequence"

	"gorm.io/gorm"
)

// DueRepository persists daily dues.
type DueRepository interface {
	ExistsInWindow(ctx context.Context, vendorCode string, amount int64, from, to time.Time) (bool, error)
	Create(ctx context.Context, due *models.Due) error
	ListByVendor(ctx context.Context, vendorCode string, limit int) ([]models.Due, error)
}

type dueRepository struct {
	db *gorm.DB
}

func NewDueRepository(db *gorm.DB) DueRepository {
	return &dueRepository{db: db}
}

func (r *dueRepository) ExistsInWindow(ctx context.Context, vendorCode string, amount int64, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Due{}).
		Where("vendor_code = ? AND amount = ? AND charged_at >= ? AND charged_at < ?",
			vendorCode, amount, from, to).
		Count(&count).Error
	return count > 0, err
}

// Create maps a unique violation on the due code to the sequencer's
// collision error so the minter retries with a fresh read.
func (r *dueRepository) Create(ctx context.Context, due *models.Due) error {
	if err := r.db.WithContext(ctx).Create(due).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", sequence.ErrCodeCollision, due.DueCode)
		}
		return err
	}
	return nil
}

func (r *dueRepository) ListByVendor(ctx context.Context, vendorCode string, limit int) ([]models.Due, error) {
	var dues []models.Due
	err := r.db.WithContext(ctx).
		Where("vendor_code = ?", vendorCode).
		Order("charged_at DESC").
		Limit(limit).
		Find(&dues).Error
	return dues, err
}
