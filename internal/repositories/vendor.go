package repositories

import (
	"context"
	"errors"

	"simpasar/internal/models"

	"gorm.io/gorm"
)

var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository serves vendor rows for billing and administration.
type VendorRepository interface {
	GetByCode(ctx context.Context, vendorCode string) (*models.Vendor, error)
	ListActiveWithStalls(ctx context.Context) ([]models.Vendor, error)
	Create(ctx context.Context, vendor *models.Vendor) error
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) GetByCode(ctx context.Context, vendorCode string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).
		Preload("Stalls").
		Where("vendor_code = ?", vendorCode).
		First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// ListActiveWithStalls is the billing jobs' vendor snapshot: every active
// vendor with its active stalls preloaded, in a fixed order so a run is
// reproducible.
func (r *vendorRepository) ListActiveWithStalls(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Preload("Stalls", "status = ?", models.StallStatusActive).
		Where("status = ?", models.VendorStatusActive).
		Order("vendor_code").
		Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}
